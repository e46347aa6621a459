package message

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent  = errors.New("message content is empty")
	ErrInvalidSender = errors.New("invalid message sender")
)

// Message is append-only; there is no edit or delete.
type Message struct {
	id            uuid.UUID
	reservationID uuid.UUID
	sender        Sender
	content       string
	createdAt     time.Time
}

func NewMessage(reservationID uuid.UUID, sender Sender, content string) (*Message, error) {
	if !sender.IsValid() {
		return nil, ErrInvalidSender
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Message{
		reservationID: reservationID,
		sender:        sender,
		content:       content,
	}, nil
}

func ReconstructMessage(id, reservationID uuid.UUID, sender Sender, content string, createdAt time.Time) *Message {
	return &Message{
		id:            id,
		reservationID: reservationID,
		sender:        sender,
		content:       content,
		createdAt:     createdAt,
	}
}

func (m *Message) ID() uuid.UUID            { return m.id }
func (m *Message) ReservationID() uuid.UUID { return m.reservationID }
func (m *Message) Sender() Sender           { return m.sender }
func (m *Message) Content() string          { return m.content }
func (m *Message) CreatedAt() time.Time     { return m.createdAt }
