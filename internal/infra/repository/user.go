package repository

import (
	"context"

	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: pool}
}

const updateLastLoginSQL = `
UPDATE users SET last_login_at = now() WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, updateLastLoginSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
