package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/tundex/billtracker/internal/entity"
	"github.com/tundex/billtracker/internal/repository"
)

func TestRepository_CreateCreditor(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	user := repository.SeedUser(t, db)
	now := time.Now().Truncate(time.Millisecond)

	c := entity.Creditor{
		ID:            uuid.Must(uuid.NewV4()),
		Name:          "Creditor " + uuid.Must(uuid.NewV4()).String(),
		Description:   "neighborhood lender",
		City:          "Ikeja",
		State:         "Lagos",
		Country:       "Nigeria",
		Phone:         uuid.Must(uuid.NewV4()).String(),
		Email:         uuid.Must(uuid.NewV4()).String() + "@example.com",
		BankName:      "First Bank",
		AccountNumber: uuid.Must(uuid.NewV4()).String(),
		CreatedBy:     user.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	c, err := repo.CreateCreditor(context.Background(), c)
	require.NoError(t, err)

	got, err := repo.Creditor(context.Background(), c.ID)
	require.NoError(t, err)
	require.Equal(t, c, got)

	byPhone, err := repo.CreditorByPhone(context.Background(), c.Phone)
	require.NoError(t, err)
	require.Equal(t, c.ID, byPhone.ID)

	byName, err := repo.CreditorByName(context.Background(), c.Name)
	require.NoError(t, err)
	require.Equal(t, c.ID, byName.ID)

	byEmail, err := repo.CreditorByEmail(context.Background(), c.Email)
	require.NoError(t, err)
	require.Equal(t, c.ID, byEmail.ID)
}

func TestRepository_CreateCreditor_DuplicateName(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	user := repository.SeedUser(t, db)
	c := repository.SeedCreditor(t, db, user.ID)

	dup := c
	dup.ID = uuid.Must(uuid.NewV4())
	dup.Phone = uuid.Must(uuid.NewV4()).String()

	_, err := repo.CreateCreditor(context.Background(), dup)
	require.ErrorIs(t, err, entity.ErrDuplicateCreditor)
}

func TestRepository_UpdateCreditor(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	user := repository.SeedUser(t, db)
	c := repository.SeedCreditor(t, db, user.ID)

	name := "Renamed " + uuid.Must(uuid.NewV4()).String()
	bank := "Zenith Bank"
	account := uuid.Must(uuid.NewV4()).String()

	patch := entity.CreditorPatch{
		Name:          &name,
		BankName:      &bank,
		AccountNumber: &account,
	}

	updated, err := repo.UpdateCreditor(context.Background(), c.ID, patch, time.Now().Truncate(time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, name, updated.Name)
	require.Equal(t, bank, updated.BankName)
	require.Equal(t, account, updated.AccountNumber)

	// Untouched fields survive the patch.
	require.Equal(t, c.Phone, updated.Phone)
	require.Equal(t, c.City, updated.City)

	_, err = repo.UpdateCreditor(context.Background(), uuid.Must(uuid.NewV4()), patch, time.Now())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_Creditors(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	user := repository.SeedUser(t, db)

	for i := 0; i < 3; i++ {
		repository.SeedCreditor(t, db, user.ID)
	}

	creditors, err := repo.Creditors(context.Background(), 100, 0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(creditors), 3)
}
