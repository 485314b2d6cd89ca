package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tundex/billtracker/internal/entity"
	"github.com/tundex/billtracker/internal/repository"
)

func newBill(t *testing.T, db *pgxpool.Pool, credit string) entity.Bill {
	t.Helper()

	repo := repository.New(db)

	user := repository.SeedUser(t, db)
	creditor := repository.SeedCreditor(t, db, user.ID)
	now := time.Now().Truncate(time.Millisecond)

	bill, err := repo.CreateBill(context.Background(), entity.Bill{
		ID:                uuid.Must(uuid.NewV4()),
		UserID:            user.ID,
		CreditorID:        creditor.ID,
		TotalCreditAmount: decimal.RequireFromString(credit),
		TotalPaidAmount:   decimal.Zero,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	require.NoError(t, err)

	return bill
}

func TestRepository_ApplyPayment(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	bill := newBill(t, db, "100.00")

	p1 := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		BillID:    bill.ID,
		Issuer:    entity.IssuerUser,
		Amount:    decimal.RequireFromString("40.00"),
		Note:      "first installment",
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	_, updated, err := repo.ApplyPayment(context.Background(), p1)
	require.NoError(t, err)
	require.True(t, updated.TotalPaidAmount.Equal(decimal.RequireFromString("40.00")))
	require.True(t, updated.CurrentBalance.Equal(decimal.RequireFromString("-60.00")))
	require.False(t, updated.Paid)

	p2 := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		BillID:    bill.ID,
		Issuer:    entity.IssuerUser,
		Amount:    decimal.RequireFromString("60.00"),
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	_, updated, err = repo.ApplyPayment(context.Background(), p2)
	require.NoError(t, err)
	require.True(t, updated.TotalPaidAmount.Equal(decimal.RequireFromString("100.00")))
	require.True(t, updated.CurrentBalance.Equal(decimal.Zero))
	require.True(t, updated.Paid)

	payments, err := repo.PaymentsByBill(context.Background(), bill.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
}

func TestRepository_ApplyPayment_CreditorIssuer(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	bill := newBill(t, db, "100.00")

	p := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		BillID:    bill.ID,
		Issuer:    entity.IssuerCreditor,
		Amount:    decimal.RequireFromString("20.00"),
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	// A creditor payment increases the amount owed, not the amount paid.
	_, updated, err := repo.ApplyPayment(context.Background(), p)
	require.NoError(t, err)
	require.True(t, updated.TotalCreditAmount.Equal(decimal.RequireFromString("120.00")))
	require.True(t, updated.TotalPaidAmount.Equal(decimal.Zero))
	require.True(t, updated.CurrentBalance.Equal(decimal.RequireFromString("-120.00")))
}

func TestRepository_ApplyPayment_BillMissing(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	p := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		BillID:    uuid.Must(uuid.NewV4()),
		Issuer:    entity.IssuerUser,
		Amount:    decimal.RequireFromString("10.00"),
		CreatedAt: time.Now(),
	}

	_, _, err := repo.ApplyPayment(context.Background(), p)
	require.ErrorIs(t, err, entity.ErrNotFound)

	// The payment was never created.
	_, err = repo.Payment(context.Background(), p.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

// A failure after the bill increment but before the payment insert must
// roll the whole unit back. Pre-inserting a payment with the same ID
// makes the insert step fail on the primary key after the increment has
// already executed inside the transaction.
func TestRepository_ApplyPayment_Atomicity(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	bill := newBill(t, db, "100.00")

	p := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		BillID:    bill.ID,
		Issuer:    entity.IssuerUser,
		Amount:    decimal.RequireFromString("30.00"),
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	_, _, err := repo.ApplyPayment(context.Background(), p)
	require.NoError(t, err)

	// Same payment ID again: increment succeeds, insert fails, both roll back.
	p.Amount = decimal.RequireFromString("25.00")
	_, _, err = repo.ApplyPayment(context.Background(), p)
	require.Error(t, err)

	got, err := repo.Bill(context.Background(), bill.ID)
	require.NoError(t, err)
	require.True(t, got.TotalPaidAmount.Equal(decimal.RequireFromString("30.00")))

	payments, err := repo.PaymentsByBill(context.Background(), bill.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
}

// N concurrent payments of 1.00 against one bill must all land: the
// increment runs as a single UPDATE expression in the engine, so no
// contribution can be lost to a read-modify-write race.
func TestRepository_ApplyPayment_ConcurrentNoLostUpdates(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	bill := newBill(t, db, "1000.00")

	const n = 20

	var wg sync.WaitGroup

	errs := make([]error, n)

	for i := 0; i < n; i++ {
		i := i

		wg.Add(1)

		go func() {
			defer wg.Done()

			p := entity.Payment{
				ID:        uuid.Must(uuid.NewV4()),
				BillID:    bill.ID,
				Issuer:    entity.IssuerUser,
				Amount:    decimal.RequireFromString("1.00"),
				CreatedAt: time.Now(),
			}

			_, _, errs[i] = repo.ApplyPayment(context.Background(), p)
		}()
	}

	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.Bill(context.Background(), bill.ID)
	require.NoError(t, err)
	require.True(t, got.TotalPaidAmount.Equal(decimal.New(n, 0)),
		"want %d.00, got %s", n, got.TotalPaidAmount)

	payments, err := repo.PaymentsByBill(context.Background(), bill.ID)
	require.NoError(t, err)
	require.Len(t, payments, n)
}

func TestRepository_PaymentsByUser(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	bill := newBill(t, db, "100.00")

	p := entity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		BillID:    bill.ID,
		Issuer:    entity.IssuerUser,
		Amount:    decimal.RequireFromString("15.00"),
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}

	_, _, err := repo.ApplyPayment(context.Background(), p)
	require.NoError(t, err)

	payments, err := repo.PaymentsByUser(context.Background(), bill.UserID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	require.Equal(t, p.ID, payments[0].ID)

	// No bills, no payments, no error.
	payments, err = repo.PaymentsByUser(context.Background(), uuid.Must(uuid.NewV4()))
	require.NoError(t, err)
	require.Empty(t, payments)
}
