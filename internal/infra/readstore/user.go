package readstore

import (
	"context"

	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: pool}
}

const getUserByIDSQL = `
SELECT u.id, u.email, u.role, d.id, u.is_active
FROM users u
LEFT JOIN drivers d ON d.user_id = u.id
WHERE u.id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, getUserByIDSQL, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.DriverID, &view.IsActive,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

const getUserByEmailSQL = `
SELECT u.id, u.email, u.role, d.id, u.is_active, u.password_hash
FROM users u
LEFT JOIN drivers d ON d.user_id = u.id
WHERE u.email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, getUserByEmailSQL, email).Scan(
		&view.ID, &view.Email, &view.Role, &view.DriverID, &view.IsActive, &hash,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}
