package queries

import (
	"context"
	"time"

	"studio-booking/internal/domain/message"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ChatQueries interface {
	// Fetch always returns the whole history; clients poll it.
	Fetch(ctx context.Context, reservationID uuid.UUID, viewer message.Sender) (*ChatView, error)
}

type chatQueriesImpl struct {
	reservations ReservationReadStore
	messages     MessageReadStore
	clock        clock.Clock
	freshness    time.Duration
}

func NewChatQueries(reservations ReservationReadStore, messages MessageReadStore, clk clock.Clock, cfg config.Config) ChatQueries {
	return &chatQueriesImpl{
		reservations: reservations,
		messages:     messages,
		clock:        clk,
		freshness:    cfg.Chat.TypingFreshness,
	}
}

func (q *chatQueriesImpl) Fetch(ctx context.Context, reservationID uuid.UUID, viewer message.Sender) (*ChatView, error) {
	if !viewer.IsValid() {
		return nil, errs.ErrInvalidSender
	}

	res, err := q.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrReservationNotFound)
	}

	msgs, err := q.messages.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &ChatView{
		Messages: msgs,
		Typing:   typingView(res.Typing, viewer, q.clock.Now(), q.freshness),
	}, nil
}
