package readstore

import (
	"context"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(pool *pgxpool.Pool) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: pool}
}

const findAvailableDriversSQL = `
SELECT d.id, d.name
FROM drivers d
WHERE d.is_active
  AND NOT EXISTS (
	SELECT 1 FROM driver_unavailability u
	WHERE u.driver_id = d.id AND u.date = $1
  )
  AND NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.driver_id = d.id AND b.date = $1
	  AND b.status IN ('pending', 'confirmed')
  )
ORDER BY d.name`

// FindAvailableDrivers is advisory: the result can go stale the moment it is
// returned, and the commit-time guard in the booking path is what actually
// prevents double booking.
func (r *AvailabilityReadStore) FindAvailableDrivers(ctx context.Context, date booking.TourDate) ([]*queries.AvailableDriverView, error) {
	rows, err := r.db.Query(ctx, findAvailableDriversSQL, date.Time())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find available drivers", err)
	}
	defer rows.Close()

	result := make([]*queries.AvailableDriverView, 0)
	for rows.Next() {
		var view queries.AvailableDriverView
		if err := rows.Scan(&view.ID, &view.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available driver", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available drivers", err)
	}

	return result, nil
}
