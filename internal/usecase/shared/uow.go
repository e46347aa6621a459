package shared

import (
	"context"
	"time"

	"studio-booking/internal/domain/message"
	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/domain/user"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Messages() MessageRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status reservation.Status) error
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// TouchTyping reports false when the stored marker is newer than cutoff.
	TouchTyping(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, sender message.Sender, at, cutoff time.Time) (bool, error)
}

type MessageRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, msg *message.Message) (*message.Message, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpdateAccount(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}
