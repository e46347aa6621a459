package repository

import (
	"context"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserWriteQueries interface {
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateUserAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserAccountParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	err := r.queries.UpdateLastLogin(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateAccount(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserAccount(ctx, tx, sqlc.UpdateUserAccountParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user account", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
