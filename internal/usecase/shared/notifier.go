package shared

import (
	"context"
	"time"

	"studio-booking/internal/domain/message"

	"github.com/google/uuid"
)

// StatusDateChange is not a stored status; it selects the "date moved" variant of the status email.
const StatusDateChange = "date_change"

type ReservationCreatedEvent struct {
	ReservationID uuid.UUID
	Code          string
	Password      string
	ClientName    string
	ClientEmail   string
	OfferTitle    string
	Date          time.Time
	TotalPrice    string
}

type StatusChangedEvent struct {
	ReservationID uuid.UUID
	Code          string
	ClientName    string
	ClientEmail   string
	OfferTitle    string
	Date          time.Time
	Status        string
}

type MessageSentEvent struct {
	ReservationID uuid.UUID
	Code          string
	ClientName    string
	ClientEmail   string
	Sender        message.Sender
	Content       string
}

type PasswordChangedEvent struct {
	Recipient string
}

// Notifier delivers side-channel notifications. Callers log returned errors and carry on;
// a failed notification never undoes the mutation that triggered it.
type Notifier interface {
	ReservationCreated(ctx context.Context, ev ReservationCreatedEvent) error
	StatusChanged(ctx context.Context, ev StatusChangedEvent) error
	MessageSent(ctx context.Context, ev MessageSentEvent) error
	AdminPasswordChanged(ctx context.Context, ev PasswordChangedEvent) error
}
