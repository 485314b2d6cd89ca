package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tundex/billtracker/internal/entity"
	"github.com/tundex/billtracker/internal/mocks"
	"github.com/tundex/billtracker/internal/service"
)

func TestService_CreateBill(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(owner)

	creditorID := uuid.Must(uuid.NewV4())
	credit := decimal.RequireFromString("250.00")

	repo.EXPECT().CreateBill(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, b entity.Bill) (entity.Bill, error) {
			require.False(t, b.ID.IsNil())
			require.Equal(t, owner.ID, b.UserID)
			require.Equal(t, creditorID, b.CreditorID)
			require.True(t, credit.Equal(b.TotalCreditAmount))
			require.True(t, b.TotalPaidAmount.IsZero())

			b.CurrentBalance = b.TotalPaidAmount.Sub(b.TotalCreditAmount)

			return b, nil
		})

	s := service.New(repo, producer, time.Hour)

	bill, err := s.CreateBill(ctx, owner.ID, creditorID, credit, decimal.Zero, "electricity")
	require.NoError(t, err)
	require.Equal(t, "-250.00", bill.CurrentBalance.String())
	require.False(t, bill.Paid)
}

func TestService_CreateBill_ForbiddenForOtherUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	caller := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(caller)

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreateBill(ctx, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()),
		decimal.RequireFromString("100.00"), decimal.Zero, "")
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CreateBill_InvalidCredit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(owner)

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreateBill(ctx, owner.ID, uuid.Must(uuid.NewV4()), decimal.Zero, decimal.Zero, "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_Bills_NormalizesFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(owner)

	want := entity.BillFilter{
		Page:    1,
		Limit:   100,
		SortBy:  entity.SortByCreatedAt,
		OrderBy: entity.DESC,
	}

	repo.EXPECT().BillsByUser(ctx, owner.ID, want).Return(nil, 0, nil)

	s := service.New(repo, producer, time.Hour)

	bills, total, err := s.Bills(ctx, owner.ID, entity.BillFilter{})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, bills)
}

func TestService_DeleteBill(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(owner)

	billID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Bill(ctx, billID).
		Return(entity.Bill{ID: billID, UserID: owner.ID, Paid: true}, nil)
	repo.EXPECT().DeletePaidBill(ctx, billID).Return(nil)

	s := service.New(repo, producer, time.Hour)

	err := s.DeleteBill(ctx, billID)
	require.NoError(t, err)
}

func TestService_DeleteBill_OutstandingDebt(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	admin := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleAdmin}
	ctx := ctxWithUser(admin)

	billID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Bill(ctx, billID).Return(entity.Bill{
		ID:             billID,
		UserID:         uuid.Must(uuid.NewV4()),
		CurrentBalance: decimal.RequireFromString("-40.00"),
		Paid:           false,
	}, nil)

	s := service.New(repo, producer, time.Hour)

	err := s.DeleteBill(ctx, billID)
	require.ErrorIs(t, err, entity.ErrOutstandingDebt)
}

func TestService_Bill_NotAParty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	caller := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(caller)

	billID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Bill(ctx, billID).
		Return(entity.Bill{ID: billID, UserID: uuid.Must(uuid.NewV4())}, nil)

	s := service.New(repo, producer, time.Hour)

	_, err := s.Bill(ctx, billID)
	require.ErrorIs(t, err, entity.ErrForbidden)
}
