package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/message"
	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	UpdateReservationDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationDetailsParams) (int64, error)
	DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	TouchAdminTyping(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchAdminTypingParams) (int64, error)
	TouchClientTyping(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchClientTypingParams) (int64, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params, err := converter.ReservationToCreateParams(res)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert reservation", err)
	}

	id, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status) error {
	n, err := r.queries.UpdateReservationStatus(ctx, tx, sqlc.UpdateReservationStatusParams{
		ID:     id,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	n, err := r.queries.UpdateReservationDetails(ctx, tx, converter.ReservationToDetailsParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation details", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// Delete removes the reservation; its messages go with it via ON DELETE CASCADE.
func (r *ReservationRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteReservation(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) TouchTyping(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, sender message.Sender, at, cutoff time.Time) (bool, error) {
	var (
		n   int64
		err error
	)
	switch sender {
	case message.SenderAdmin:
		n, err = r.queries.TouchAdminTyping(ctx, tx, sqlc.TouchAdminTypingParams{
			TypedAt: pgconv.TimeToPgtype(at),
			ID:      id,
			Cutoff:  pgconv.TimeToPgtype(cutoff),
		})
	case message.SenderClient:
		n, err = r.queries.TouchClientTyping(ctx, tx, sqlc.TouchClientTypingParams{
			TypedAt: pgconv.TimeToPgtype(at),
			ID:      id,
			Cutoff:  pgconv.TimeToPgtype(cutoff),
		})
	default:
		return false, infra.WrapRepoErr("unknown typing sender", nil)
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to record typing", err)
	}
	return n > 0, nil
}
