package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/tundex/billtracker/internal/entity"
)

type Service interface {
	SyncUser(ctx context.Context, u entity.User) error
	DeactivateUser(ctx context.Context, id uuid.UUID) error
}

// EventHandler keeps the local users reference table in sync with the
// auth service's account events.
type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type UserEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
}

const (
	eventUserRegistered  = "user.registered"
	eventUserUpdated     = "user.updated"
	eventUserDeactivated = "user.deactivated"
)

func (h *EventHandler) OnUserEvent(ctx context.Context, msg kafka.Message) error {
	var event UserEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	switch event.Type {
	case eventUserRegistered, eventUserUpdated:
		err = h.s.SyncUser(ctx, entity.User{
			ID:        event.UserID,
			FirstName: event.FirstName,
			LastName:  event.LastName,
			Phone:     event.Phone,
			Email:     event.Email,
			Role:      event.Role,
			Active:    true,
		})
		if err != nil {
			return fmt.Errorf("sync user %s: %w", event.UserID, err)
		}
	case eventUserDeactivated:
		err = h.s.DeactivateUser(ctx, event.UserID)
		if err != nil {
			return fmt.Errorf("deactivate user %s: %w", event.UserID, err)
		}
	}

	return nil
}
