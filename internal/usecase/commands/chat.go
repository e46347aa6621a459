package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studio-booking/internal/domain/chat"
	"studio-booking/internal/domain/message"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type SentMessage struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Sender        message.Sender
	Content       string
	CreatedAt     time.Time
}

type ChatCommands interface {
	Send(ctx context.Context, reservationID uuid.UUID, sender message.Sender, content string) (*SentMessage, error)
	// Typing reports whether the marker was written or skipped by the debounce window.
	Typing(ctx context.Context, reservationID uuid.UUID, sender message.Sender) (bool, error)
}

type chatCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	debounce time.Duration
}

func NewChatCommands(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, cfg config.Config) ChatCommands {
	return &chatCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		debounce: cfg.Chat.TypingDebounce,
	}
}

func (c *chatCommandsImpl) Send(ctx context.Context, reservationID uuid.UUID, sender message.Sender, content string) (*SentMessage, error) {
	msg, err := message.NewMessage(reservationID, sender, content)
	if err != nil {
		switch {
		case errors.Is(err, message.ErrEmptyContent):
			return nil, errs.Mark(err, errs.ErrEmptyMessage)
		case errors.Is(err, message.ErrInvalidSender):
			return nil, errs.Mark(err, errs.ErrInvalidSender)
		default:
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	snap, err := c.uow.CommandReads().ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, mapReservationErr(err)
	}

	var stored *message.Message
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, aerr := tx.Messages().Append(ctx, tx.DB(), msg)
		if aerr != nil {
			return aerr
		}
		stored = m
		return nil
	})
	if err != nil {
		// the reservation may have been deleted between the read and the insert
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	res := snap.Reservation
	if nerr := c.notifier.MessageSent(ctx, shared.MessageSentEvent{
		ReservationID: res.ID(),
		Code:          res.Code().Value(),
		ClientName:    res.Contact().Name(),
		ClientEmail:   res.Contact().Email(),
		Sender:        stored.Sender(),
		Content:       stored.Content(),
	}); nerr != nil {
		slog.Error("message stored but notification failed",
			"reservation_id", reservationID,
			"sender", sender.String(),
			"error", nerr.Error())
	}

	return &SentMessage{
		ID:            stored.ID(),
		ReservationID: stored.ReservationID(),
		Sender:        stored.Sender(),
		Content:       stored.Content(),
		CreatedAt:     stored.CreatedAt(),
	}, nil
}

func (c *chatCommandsImpl) Typing(ctx context.Context, reservationID uuid.UUID, sender message.Sender) (bool, error) {
	if !sender.IsValid() {
		return false, errs.ErrInvalidSender
	}

	now := c.clock.Now()
	cutoff := chat.DebounceCutoff(now, c.debounce)

	var recorded bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, terr := tx.Reservations().TouchTyping(ctx, tx.DB(), reservationID, sender, now, cutoff)
		if terr != nil {
			return terr
		}
		if !ok {
			// zero rows also means an unknown id
			if _, rerr := tx.Reads().ReservationByID(ctx, reservationID); rerr != nil {
				return rerr
			}
		}
		recorded = ok
		return nil
	})
	if err != nil {
		return false, mapReservationErr(err)
	}
	return recorded, nil
}
