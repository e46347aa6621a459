package readstore

import (
	"context"

	"github.com/google/uuid"

	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}, nil
}

// FindRowByEmail returns the full row, password hash included, for login.
func (r *UserReadStore) FindRowByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.User{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.User{}, infra.WrapRepoErr("failed to find user by email", err)
	}
	return row, nil
}

func (r *UserReadStore) FindRowByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	row, err := r.queries.FindUserByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.FindUserByIDRow{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return sqlc.FindUserByIDRow{}, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return row, nil
}
