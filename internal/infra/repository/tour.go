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

type TourRepository struct {
	db db.DBTX
}

func NewTourRepository(pool *pgxpool.Pool) *TourRepository {
	return &TourRepository{db: pool}
}

const findTourByIDSQL = `
SELECT t.id, t.name, t.duration_days, t.is_active,
	array_agg(p.price_per_person_cents ORDER BY p.min_size) AS rates
FROM tours t
JOIN tour_prices p ON p.tour_id = t.id
WHERE t.id = $1
GROUP BY t.id, t.name, t.duration_days, t.is_active`

func (r *TourRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.TourSnapshot, error) {
	var snap commands.TourSnapshot
	err := r.db.QueryRow(ctx, findTourByIDSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.DurationDays, &snap.IsActive, &snap.Rates,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("tour not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tour by ID", err)
	}
	return &snap, nil
}
