package readstore

import (
	"context"

	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TourReadStore struct {
	db db.DBTX
}

func NewTourReadStore(pool *pgxpool.Pool) *TourReadStore {
	return &TourReadStore{db: pool}
}

const findActiveToursSQL = `
SELECT t.id, t.name, t.duration_days, t.is_active,
	p.min_size, p.max_size, p.price_per_person_cents
FROM tours t
JOIN tour_prices p ON p.tour_id = t.id
WHERE t.is_active
ORDER BY t.name, p.min_size`

func (r *TourReadStore) FindActive(ctx context.Context) ([]*queries.TourView, error) {
	rows, err := r.db.Query(ctx, findActiveToursSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active tours", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*queries.TourView)
	result := make([]*queries.TourView, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			name         string
			durationDays int
			isActive     bool
			bracket      queries.PriceBracketView
		)
		err := rows.Scan(&id, &name, &durationDays, &isActive,
			&bracket.MinSize, &bracket.MaxSize, &bracket.PricePerPersonCents)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan tour price row", err)
		}

		view, ok := byID[id]
		if !ok {
			view = &queries.TourView{
				ID:           id,
				Name:         name,
				DurationDays: durationDays,
				IsActive:     isActive,
			}
			byID[id] = view
			result = append(result, view)
		}
		view.Prices = append(view.Prices, bracket)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tours", err)
	}

	return result, nil
}
