package commands

import (
	"context"
	"log/slog"
	"time"

	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// codeAttempts bounds regeneration when a freshly drawn code hits the unique index.
const codeAttempts = 3

type CreateReservationInput struct {
	OfferID        uuid.UUID
	Date           time.Time
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	Answers        reservation.Answers
	DiscountCodeID *uuid.UUID
	FinalPrice     *string
}

type CreateReservationResult struct {
	ID   uuid.UUID
	Code string
}

type UpdateDetailsInput struct {
	Date         *time.Time
	TotalPrice   *string
	ClientName   *string
	ClientEmail  *string
	ClientPhone  *string
	NotifyClient bool
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateDetails(ctx context.Context, id uuid.UUID, in UpdateDetailsInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	catalog  shared.CatalogReader
	notifier shared.Notifier
}

func NewReservationCommands(uow shared.UnitOfWork, catalog shared.CatalogReader, notifier shared.Notifier) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		catalog:  catalog,
		notifier: notifier,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	contact, err := reservation.NewContact(in.ClientName, in.ClientEmail, in.ClientPhone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	offer, err := r.catalog.OfferByID(ctx, in.OfferID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOfferNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var (
		created   *reservation.Reservation
		createdID uuid.UUID
	)
	for attempt := 1; attempt <= codeAttempts; attempt++ {
		res, derr := reservation.NewReservation(in.OfferID, in.Date, contact, in.Answers, in.FinalPrice, in.DiscountCodeID)
		if derr != nil {
			return nil, errs.Mark(derr, errs.ErrDomainValidation)
		}

		var id uuid.UUID
		err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var cerr error
			id, cerr = tx.Reservations().Create(ctx, tx.DB(), res)
			return cerr
		})
		if err == nil {
			created, createdID = res, id
			break
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Warn("reservation code collision, regenerating", "attempt", attempt)
			continue
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrDiscountCodeNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if created == nil {
		return nil, errs.Mark(err, errs.ErrCodeCollision)
	}

	totalPrice := "0 PLN"
	if p := created.TotalPrice(); p != nil {
		totalPrice = *p
	}
	if nerr := r.notifier.ReservationCreated(ctx, shared.ReservationCreatedEvent{
		ReservationID: createdID,
		Code:          created.Code().Value(),
		Password:      created.Password().Value(),
		ClientName:    created.Contact().Name(),
		ClientEmail:   created.Contact().Email(),
		OfferTitle:    offer.Title,
		Date:          created.Date(),
		TotalPrice:    totalPrice,
	}); nerr != nil {
		slog.Error("reservation created but notification failed",
			"reservation_id", createdID,
			"error", nerr.Error())
	}

	return &CreateReservationResult{
		ID:   createdID,
		Code: created.Code().Value(),
	}, nil
}

func (r *reservationCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	st, err := reservation.NewStatus(status)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidStatus)
	}

	var snap *shared.ReservationSnapshot
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if uerr := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, st); uerr != nil {
			return uerr
		}
		s, rerr := tx.Reads().ReservationByID(ctx, id)
		if rerr != nil {
			return rerr
		}
		snap = s
		return nil
	})
	if err != nil {
		return mapReservationErr(err)
	}

	res := snap.Reservation
	if nerr := r.notifier.StatusChanged(ctx, shared.StatusChangedEvent{
		ReservationID: res.ID(),
		Code:          res.Code().Value(),
		ClientName:    res.Contact().Name(),
		ClientEmail:   res.Contact().Email(),
		OfferTitle:    snap.OfferTitle,
		Date:          res.Date(),
		Status:        st.String(),
	}); nerr != nil {
		slog.Error("status updated but notification failed",
			"reservation_id", id,
			"status", st.String(),
			"error", nerr.Error())
	}
	return nil
}

func (r *reservationCommandsImpl) UpdateDetails(ctx context.Context, id uuid.UUID, in UpdateDetailsInput) error {
	details := reservation.Details{
		Date:        in.Date,
		TotalPrice:  in.TotalPrice,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
	}
	if details.IsEmpty() {
		return errs.ErrNothingToUpdate
	}

	var (
		snap        *shared.ReservationSnapshot
		dateChanged bool
	)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, rerr := tx.Reads().ReservationByID(ctx, id)
		if rerr != nil {
			return rerr
		}
		changed, derr := s.Reservation.ApplyDetails(details)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		if uerr := tx.Reservations().UpdateDetails(ctx, tx.DB(), s.Reservation); uerr != nil {
			return uerr
		}
		snap = s
		dateChanged = changed
		return nil
	})
	if err != nil {
		return mapReservationErr(err)
	}

	if !dateChanged || !in.NotifyClient {
		return nil
	}

	res := snap.Reservation
	if nerr := r.notifier.StatusChanged(ctx, shared.StatusChangedEvent{
		ReservationID: res.ID(),
		Code:          res.Code().Value(),
		ClientName:    res.Contact().Name(),
		ClientEmail:   res.Contact().Email(),
		OfferTitle:    snap.OfferTitle,
		Date:          res.Date(),
		Status:        shared.StatusDateChange,
	}); nerr != nil {
		slog.Error("details updated but notification failed",
			"reservation_id", id,
			"error", nerr.Error())
	}
	return nil
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return mapReservationErr(err)
	}
	return nil
}

func mapReservationErr(err error) error {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
