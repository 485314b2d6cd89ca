package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	notificationsTopic string
}

func NewProducer(brokers []string, topic string) *Producer {
	l := slog.Default().WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		notificationsTopic: topic,
	}
}

type PaymentRecordedEvent struct {
	Type      string          `json:"type"`
	PaymentID uuid.UUID       `json:"payment_id"`
	BillID    uuid.UUID       `json:"bill_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Issuer    string          `json:"issuer"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	Paid      bool            `json:"paid"`
}

// SendPaymentRecorded notifies downstream consumers that a payment was
// applied to a bill. Delivery is best effort, the ledger write has
// already committed.
func (p *Producer) SendPaymentRecorded(ctx context.Context, paymentID, billID, userID uuid.UUID, issuer string, amount, balance decimal.Decimal, paid bool) {
	event := PaymentRecordedEvent{
		Type:      "payment.recorded",
		PaymentID: paymentID,
		BillID:    billID,
		UserID:    userID,
		Issuer:    issuer,
		Amount:    amount,
		Balance:   balance,
		Paid:      paid,
	}

	p.send(ctx, billID.String(), event)
}

type DebtReminderEvent struct {
	Type    string          `json:"type"`
	BillID  uuid.UUID       `json:"bill_id"`
	UserID  uuid.UUID       `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

// SendDebtReminder asks the notification service to remind a user of
// an outstanding bill.
func (p *Producer) SendDebtReminder(ctx context.Context, billID, userID uuid.UUID, balance decimal.Decimal) {
	event := DebtReminderEvent{
		Type:    "debt.reminder",
		BillID:  billID,
		UserID:  userID,
		Balance: balance,
	}

	p.send(ctx, billID.String(), event)
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.notificationsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
