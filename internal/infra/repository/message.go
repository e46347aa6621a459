package repository

import (
	"context"

	"studio-booking/internal/domain/message"
	"studio-booking/internal/infra"
	"studio-booking/internal/infra/repository/converter"
	sqlc "studio-booking/internal/infra/sqlc/generated"
)

type MessageWriteQueries interface {
	CreateMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMessageParams) (sqlc.ReservationMessage, error)
}

type MessageRepository struct {
	queries MessageWriteQueries
}

func NewMessageRepository(queries MessageWriteQueries) *MessageRepository {
	return &MessageRepository{
		queries: queries,
	}
}

// Append returns the stored row so callers see the database-assigned id and timestamp.
func (r *MessageRepository) Append(ctx context.Context, tx sqlc.DBTX, msg *message.Message) (*message.Message, error) {
	row, err := r.queries.CreateMessage(ctx, tx, sqlc.CreateMessageParams{
		ReservationID: msg.ReservationID(),
		Sender:        msg.Sender().String(),
		Content:       msg.Content(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to append message", err)
	}
	return converter.MessageFromRow(row), nil
}
