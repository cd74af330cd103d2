package readstore

import (
	"context"
	"time"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UnavailabilityReadStore struct {
	db db.DBTX
}

func NewUnavailabilityReadStore(pool *pgxpool.Pool) *UnavailabilityReadStore {
	return &UnavailabilityReadStore{db: pool}
}

const listBlocksByDriverSQL = `
SELECT id, driver_id, date, reason, created_at
FROM driver_unavailability
WHERE driver_id = $1 AND ($2::date IS NULL OR date >= $2)
ORDER BY date ASC`

func (r *UnavailabilityReadStore) FindByDriverID(ctx context.Context, driverID uuid.UUID, from *booking.TourDate) ([]*queries.BlockView, error) {
	var fromTime *time.Time
	if from != nil {
		t := from.Time()
		fromTime = &t
	}

	rows, err := r.db.Query(ctx, listBlocksByDriverSQL, driverID, fromTime)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list unavailability blocks", err)
	}
	defer rows.Close()

	result := make([]*queries.BlockView, 0)
	for rows.Next() {
		var (
			view queries.BlockView
			date time.Time
		)
		if err := rows.Scan(&view.ID, &view.DriverID, &date, &view.Reason, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan unavailability block", err)
		}
		view.Date = date.Format(booking.DateLayout)
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate unavailability blocks", err)
	}

	return result, nil
}

const blockExistsQuerySQL = `
SELECT EXISTS (
	SELECT 1 FROM driver_unavailability WHERE driver_id = $1 AND date = $2
)`

func (r *UnavailabilityReadStore) Exists(ctx context.Context, driverID uuid.UUID, date booking.TourDate) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, blockExistsQuerySQL, driverID, date.Time()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check unavailability block", err)
	}
	return exists, nil
}
