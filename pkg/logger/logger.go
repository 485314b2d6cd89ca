package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lmittmann/tint"
)

type ctxKey int8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
)

// Handler augments every record with request-scoped attributes from ctx.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		record.Add("request_id", v)
	}

	if v, ok := ctx.Value(ctxKeyUserID).(string); ok {
		record.Add("user_id", v)
	}

	return h.Handler.Handle(ctx, record)
}

// New builds the process logger and installs it as the slog default.
// Format "text" renders colored tint output for local development,
// anything else falls back to JSON.
func New(level, format string) (*slog.Logger, error) {
	var sLevel slog.Level

	err := sLevel.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}

	var inner slog.Handler

	if format == "text" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      sLevel,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: sLevel,
		})
	}

	l := slog.New(&Handler{inner})

	slog.SetDefault(l)

	return l, nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID.String())
}

func RequestIDFromCtx(ctx context.Context) string {
	requestID, ok := ctx.Value(ctxKeyRequestID).(string)
	if !ok {
		return ""
	}

	return requestID
}
