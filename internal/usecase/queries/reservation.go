package queries

import (
	"context"
	"time"

	"studio-booking/internal/domain/chat"
	"studio-booking/internal/domain/message"
	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	// LookupByCode returns the full view without checking the password.
	LookupByCode(ctx context.Context, code string) (*ReservationDetailView, error)
	// Unlock is LookupByCode gated by the reservation password.
	Unlock(ctx context.Context, code, password string) (*ReservationDetailView, error)
	// Authorize resolves a code to its reservation id when the password matches.
	Authorize(ctx context.Context, code, password string) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationDetailView, error)
	List(ctx context.Context) ([]*ReservationListItem, error)
}

type ReservationReadStore interface {
	FindByCode(ctx context.Context, code string) (*ReservationDetailView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationDetailView, error)
	FindAccessByCode(ctx context.Context, code string) (uuid.UUID, string, error)
	List(ctx context.Context) ([]*ReservationListItem, error)
	ListForCalendar(ctx context.Context, since time.Time) ([]*CalendarEntry, error)
}

type MessageReadStore interface {
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*MessageView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	messages     MessageReadStore
	clock        clock.Clock
	freshness    time.Duration
}

func NewReservationQueries(reservations ReservationReadStore, messages MessageReadStore, clk clock.Clock, cfg config.Config) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		messages:     messages,
		clock:        clk,
		freshness:    cfg.Chat.TypingFreshness,
	}
}

// LookupByCode is the unguarded lookup primitive; HTTP callers go through Unlock or Authorize.
func (q *reservationQueriesImpl) LookupByCode(ctx context.Context, code string) (*ReservationDetailView, error) {
	view, _, err := q.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return q.withMessages(ctx, view, message.SenderClient)
}

func (q *reservationQueriesImpl) Unlock(ctx context.Context, code, password string) (*ReservationDetailView, error) {
	view, stored, err := q.findByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !reservation.ReconstructPassword(stored).Matches(password) {
		return nil, errs.ErrAccessDenied
	}
	return q.withMessages(ctx, view, message.SenderClient)
}

func (q *reservationQueriesImpl) Authorize(ctx context.Context, code, password string) (uuid.UUID, error) {
	parsed, err := reservation.ParseCode(code)
	if err != nil {
		return uuid.Nil, errs.ErrReservationNotFound
	}
	id, stored, err := q.reservations.FindAccessByCode(ctx, parsed.Value())
	if err != nil {
		return uuid.Nil, mapNotFound(err, errs.ErrReservationNotFound)
	}
	if !reservation.ReconstructPassword(stored).Matches(password) {
		return uuid.Nil, errs.ErrAccessDenied
	}
	return id, nil
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationDetailView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrReservationNotFound)
	}
	return q.withMessages(ctx, view, message.SenderAdmin)
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationListItem, error) {
	items, err := q.reservations.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *reservationQueriesImpl) findByCode(ctx context.Context, code string) (*ReservationDetailView, string, error) {
	parsed, err := reservation.ParseCode(code)
	if err != nil {
		return nil, "", errs.ErrReservationNotFound
	}
	view, stored, err := q.reservations.FindByCode(ctx, parsed.Value())
	if err != nil {
		return nil, "", mapNotFound(err, errs.ErrReservationNotFound)
	}
	return view, stored, nil
}

func (q *reservationQueriesImpl) withMessages(ctx context.Context, view *ReservationDetailView, viewer message.Sender) (*ReservationDetailView, error) {
	msgs, err := q.messages.ListByReservation(ctx, view.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	view.Messages = msgs
	view.Typing = typingView(view.Typing, viewer, q.clock.Now(), q.freshness)
	return view, nil
}

func typingView(t TypingView, viewer message.Sender, now time.Time, freshness time.Duration) TypingView {
	state := chat.TypingState{
		LastAdminTypingAt:  t.LastAdminTypingAt,
		LastClientTypingAt: t.LastClientTypingAt,
	}
	t.CounterpartTyping = state.CounterpartTyping(viewer, now, freshness)
	return t
}

func mapNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
