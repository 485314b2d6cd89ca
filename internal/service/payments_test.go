package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tundex/billtracker/internal/entity"
	"github.com/tundex/billtracker/internal/mocks"
	"github.com/tundex/billtracker/internal/service"
)

func ctxWithUser(u entity.User) context.Context {
	return entity.CtxWithUser(context.Background(), u)
}

func TestService_CreatePayment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(owner)

	billID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("40.00")

	bill := entity.Bill{
		ID:                billID,
		UserID:            owner.ID,
		TotalCreditAmount: decimal.RequireFromString("100.00"),
		CurrentBalance:    decimal.RequireFromString("-100.00"),
	}
	updated := bill
	updated.TotalPaidAmount = amount
	updated.CurrentBalance = decimal.RequireFromString("-60.00")

	repo.EXPECT().Bill(ctx, billID).Return(bill, nil)
	repo.EXPECT().ApplyPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.Payment) (entity.Payment, entity.Bill, error) {
			require.Equal(t, billID, p.BillID)
			require.Equal(t, entity.IssuerUser, p.Issuer)
			require.True(t, amount.Equal(p.Amount))
			require.False(t, p.ID.IsNil())

			return p, updated, nil
		})
	producer.EXPECT().SendPaymentRecorded(ctx, gomock.Any(), billID, owner.ID,
		"user", amount, updated.CurrentBalance, false)

	s := service.New(repo, producer, time.Hour)

	p, err := s.CreatePayment(ctx, billID, entity.IssuerUser, amount, "rent")
	require.NoError(t, err)
	require.Equal(t, billID, p.BillID)
	require.Equal(t, "rent", p.Note)
}

func TestService_CreatePayment_InvalidIssuer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser})

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreatePayment(ctx, uuid.Must(uuid.NewV4()), "bank", decimal.RequireFromString("10.00"), "")
	require.ErrorIs(t, err, entity.ErrInvalidIssuer)
}

func TestService_CreatePayment_InvalidAmount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := ctxWithUser(entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser})

	s := service.New(repo, producer, time.Hour)

	for _, amount := range []string{"0", "-5.00", "1.999"} {
		_, err := s.CreatePayment(ctx, uuid.Must(uuid.NewV4()), entity.IssuerUser,
			decimal.RequireFromString(amount), "")
		require.ErrorIs(t, err, entity.ErrInvalidArgument, amount)
	}
}

func TestService_CreatePayment_NotAParty(t *testing.T) {
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

	_, err := s.CreatePayment(ctx, billID, entity.IssuerUser, decimal.RequireFromString("10.00"), "")
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_CreatePayment_StaffMayPayAnyBill(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	staff := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleStaff}
	ctx := ctxWithUser(staff)

	billID := uuid.Must(uuid.NewV4())
	ownerID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("25.00")

	bill := entity.Bill{ID: billID, UserID: ownerID}

	repo.EXPECT().Bill(ctx, billID).Return(bill, nil)
	repo.EXPECT().ApplyPayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.Payment) (entity.Payment, entity.Bill, error) {
			return p, bill, nil
		})
	producer.EXPECT().SendPaymentRecorded(ctx, gomock.Any(), billID, ownerID,
		"creditor", amount, gomock.Any(), gomock.Any())

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreatePayment(ctx, billID, entity.IssuerCreditor, amount, "")
	require.NoError(t, err)
}

func TestService_CreatePayment_RetriesTransient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(owner)

	billID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("10.00")
	bill := entity.Bill{ID: billID, UserID: owner.ID}

	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}

	repo.EXPECT().Bill(ctx, billID).Return(bill, nil)

	gomock.InOrder(
		repo.EXPECT().ApplyPayment(ctx, gomock.Any()).
			Return(entity.Payment{}, entity.Bill{}, deadlock),
		repo.EXPECT().ApplyPayment(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p entity.Payment) (entity.Payment, entity.Bill, error) {
				return p, bill, nil
			}),
	)
	producer.EXPECT().SendPaymentRecorded(ctx, gomock.Any(), billID, owner.ID,
		"user", amount, gomock.Any(), gomock.Any())

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreatePayment(ctx, billID, entity.IssuerUser, amount, "")
	require.NoError(t, err)
}

func TestService_CreatePayment_IntegrityErrorNotRetried(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	owner := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(owner)

	billID := uuid.Must(uuid.NewV4())
	bill := entity.Bill{ID: billID, UserID: owner.ID}

	repo.EXPECT().Bill(ctx, billID).Return(bill, nil)
	repo.EXPECT().ApplyPayment(ctx, gomock.Any()).
		Return(entity.Payment{}, entity.Bill{}, entity.ErrNotFound).
		Times(1)

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreatePayment(ctx, billID, entity.IssuerUser, decimal.RequireFromString("10.00"), "")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_CreatePayment_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.New(repo, producer, time.Hour)

	_, err := s.CreatePayment(context.Background(), uuid.Must(uuid.NewV4()),
		entity.IssuerUser, decimal.RequireFromString("10.00"), "")
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestService_Payments_ForbiddenForOtherUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	caller := entity.User{ID: uuid.Must(uuid.NewV4()), Role: entity.RoleUser}
	ctx := ctxWithUser(caller)

	s := service.New(repo, producer, time.Hour)

	_, err := s.Payments(ctx, uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_RemindOutstandingDebts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	bills := []entity.Bill{
		{
			ID:             uuid.Must(uuid.NewV4()),
			UserID:         uuid.Must(uuid.NewV4()),
			CurrentBalance: decimal.RequireFromString("-50.00"),
		},
		{
			ID:             uuid.Must(uuid.NewV4()),
			UserID:         uuid.Must(uuid.NewV4()),
			CurrentBalance: decimal.RequireFromString("-10.00"),
		},
	}

	minAge := 7 * 24 * time.Hour

	repo.EXPECT().OutstandingBills(context.Background(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createdBefore time.Time) ([]entity.Bill, error) {
			require.WithinDuration(t, time.Now().Add(-minAge), createdBefore, time.Minute)
			return bills, nil
		})

	for _, b := range bills {
		producer.EXPECT().SendDebtReminder(context.Background(), b.ID, b.UserID, b.CurrentBalance)
	}

	s := service.New(repo, producer, minAge)

	err := s.RemindOutstandingDebts(context.Background())
	require.NoError(t, err)
}

func TestService_RemindOutstandingDebts_RepoError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	bang := errors.New("connection refused")

	repo.EXPECT().OutstandingBills(context.Background(), gomock.Any()).Return(nil, bang)

	s := service.New(repo, producer, time.Hour)

	err := s.RemindOutstandingDebts(context.Background())
	require.ErrorIs(t, err, bang)
}
