package repository

import (
	"context"

	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DriverRepository struct {
	db db.DBTX
}

func NewDriverRepository(pool *pgxpool.Pool) *DriverRepository {
	return &DriverRepository{db: pool}
}

const findDriverByIDSQL = `
SELECT id, name, user_id, is_active FROM drivers WHERE id = $1`

func (r *DriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.DriverSnapshot, error) {
	var snap commands.DriverSnapshot
	err := r.db.QueryRow(ctx, findDriverByIDSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.UserID, &snap.IsActive,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("driver not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find driver by ID", err)
	}
	return &snap, nil
}
