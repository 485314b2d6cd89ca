package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tundex/billtracker/internal/entity"
	"github.com/tundex/billtracker/internal/mocks"
	"github.com/tundex/billtracker/internal/service"
)

func TestService_CreateCreditor_Normalizes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	caller := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(caller)

	repo.EXPECT().CreateCreditor(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c entity.Creditor) (entity.Creditor, error) {
			require.Equal(t, "Acme Water Works", c.Name)
			require.Equal(t, "First National Bank", c.BankName)
			require.Equal(t, caller.ID, c.CreatedBy)
			require.False(t, c.ID.IsNil())

			return c, nil
		})

	s := service.New(repo, producer, time.Hour)

	c, err := s.CreateCreditor(ctx, entity.Creditor{
		Name:          "acme WATER works",
		Phone:         "+15550001111",
		BankName:      "first national bank",
		AccountNumber: "0099887766",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Water Works", c.Name)
}

func TestService_CreateCreditor_AccountRequiresBank(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser})

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreateCreditor(ctx, entity.Creditor{
		Name:          "Acme",
		Phone:         "+15550001111",
		AccountNumber: "0099887766",
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_FindCreditor_Precedence(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := context.Background()
	want := entity.Creditor{ID: uuid.Must(uuid.NewV4()), Name: "Acme"}

	// Phone wins over name and email when several are given.
	repo.EXPECT().CreditorByPhone(ctx, "+15550001111").Return(want, nil)

	s := service.New(repo, producer, time.Hour)

	got, err := s.FindCreditor(ctx, "+15550001111", "Acme", "acme@example.com")
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)

	_, err = s.FindCreditor(ctx, "", "", "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_UpdateCreditor_AccountRequiresBank(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	account := "123456"

	s := service.New(repo, producer, time.Hour)

	_, err := s.UpdateCreditor(context.Background(), uuid.Must(uuid.NewV4()),
		entity.CreditorPatch{AccountNumber: &account})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
