package readstore

import (
	"context"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageViewQueries interface {
	ListMessagesByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationMessage, error)
}

type MessageReadStore struct {
	queries MessageViewQueries
	db      sqlc.DBTX
}

func NewMessageReadStore(queries MessageViewQueries, db sqlc.DBTX) *MessageReadStore {
	return &MessageReadStore{
		queries: queries,
		db:      db,
	}
}

// ListByReservation returns messages oldest first; ties on created_at are broken by id.
func (r *MessageReadStore) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListMessagesByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}

	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MessageView{
			ID:        row.ID,
			Sender:    row.Sender,
			Content:   row.Content,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
