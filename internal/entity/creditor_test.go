package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tundex/billtracker/internal/entity"
)

func TestCreditor_Validate(t *testing.T) {
	t.Parallel()

	c := entity.Creditor{Name: "First Bank", Phone: "+2348012345678"}
	require.NoError(t, c.Validate())

	c.AccountNumber = "0123456789"
	require.ErrorIs(t, c.Validate(), entity.ErrInvalidArgument)

	c.BankName = "First Bank"
	require.NoError(t, c.Validate())

	require.ErrorIs(t, entity.Creditor{Phone: "+234"}.Validate(), entity.ErrInvalidArgument)
	require.ErrorIs(t, entity.Creditor{Name: "No Phone"}.Validate(), entity.ErrInvalidArgument)
}

func TestCreditor_Normalize(t *testing.T) {
	t.Parallel()

	c := entity.Creditor{
		Name:     "first bank of LAGOS",
		City:     "ikeja",
		State:    "lagos",
		Country:  "nigeria",
		BankName: "gt bank",
	}

	got := c.Normalize()
	require.Equal(t, "First Bank Of Lagos", got.Name)
	require.Equal(t, "Ikeja", got.City)
	require.Equal(t, "Lagos", got.State)
	require.Equal(t, "Nigeria", got.Country)
	require.Equal(t, "Gt Bank", got.BankName)

	// Empty fields stay empty.
	require.Empty(t, entity.Creditor{}.Normalize().Country)
}
