package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tundex/billtracker/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateBill(ctx context.Context, bill entity.Bill) (entity.Bill, error)
	Bill(ctx context.Context, id uuid.UUID) (entity.Bill, error)
	BillsByUser(ctx context.Context, userID uuid.UUID, f entity.BillFilter) ([]entity.Bill, int, error)
	OutstandingBills(ctx context.Context, createdBefore time.Time) ([]entity.Bill, error)
	DeletePaidBill(ctx context.Context, id uuid.UUID) error
	ApplyPayment(ctx context.Context, p entity.Payment) (entity.Payment, entity.Bill, error)
	PaymentsByBill(ctx context.Context, billID uuid.UUID) ([]entity.Payment, error)
	PaymentsByUser(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error)
	CreateCreditor(ctx context.Context, c entity.Creditor) (entity.Creditor, error)
	Creditor(ctx context.Context, id uuid.UUID) (entity.Creditor, error)
	CreditorByPhone(ctx context.Context, phone string) (entity.Creditor, error)
	CreditorByName(ctx context.Context, name string) (entity.Creditor, error)
	CreditorByEmail(ctx context.Context, email string) (entity.Creditor, error)
	Creditors(ctx context.Context, limit, offset uint64) ([]entity.Creditor, error)
	UpdateCreditor(ctx context.Context, id uuid.UUID, patch entity.CreditorPatch, updatedAt time.Time) (entity.Creditor, error)
	UpsertUser(ctx context.Context, u entity.User, now time.Time) error
	DeactivateUser(ctx context.Context, id uuid.UUID, now time.Time) error
}

type Producer interface {
	SendPaymentRecorded(ctx context.Context, paymentID, billID, userID uuid.UUID, issuer string, amount, balance decimal.Decimal, paid bool)
	SendDebtReminder(ctx context.Context, billID, userID uuid.UUID, balance decimal.Decimal)
}

type Service struct {
	repo               Repository
	producer           Producer
	debtReminderMinAge time.Duration
}

func New(repo Repository, producer Producer, debtReminderMinAge time.Duration) *Service {
	return &Service{
		repo:               repo,
		producer:           producer,
		debtReminderMinAge: debtReminderMinAge,
	}
}
