package repository

import (
	"context"
	"time"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/domain/unavailability"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnavailabilityRepository struct{}

func NewUnavailabilityRepository() *UnavailabilityRepository {
	return &UnavailabilityRepository{}
}

const insertBlockSQL = `
INSERT INTO driver_unavailability (id, driver_id, date, reason)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

// Insert hits the unique (driver_id, date) constraint on a repeat block; the
// caller maps KindDuplicateKey to its conflict error.
func (r *UnavailabilityRepository) Insert(ctx context.Context, tx db.DBTX, block *unavailability.Block) (*queries.BlockView, error) {
	var createdAt time.Time
	err := tx.QueryRow(ctx, insertBlockSQL,
		block.ID(), block.DriverID(), block.Date().Time(), block.Reason(),
	).Scan(&createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert unavailability block", err)
	}

	return &queries.BlockView{
		ID:        block.ID(),
		DriverID:  block.DriverID(),
		Date:      block.Date().String(),
		Reason:    block.Reason(),
		CreatedAt: createdAt,
	}, nil
}

const deleteBlockSQL = `
DELETE FROM driver_unavailability WHERE driver_id = $1 AND date = $2`

func (r *UnavailabilityRepository) Delete(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) error {
	tag, err := tx.Exec(ctx, deleteBlockSQL, driverID, date.Time())
	if err != nil {
		return infra.WrapRepoErr("failed to delete unavailability block", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("unavailability block not found", nil, infra.KindNotFound)
	}
	return nil
}

const blockExistsSQL = `
SELECT EXISTS (
	SELECT 1 FROM driver_unavailability WHERE driver_id = $1 AND date = $2
)`

func (r *UnavailabilityRepository) Exists(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) (bool, error) {
	var exists bool
	if err := tx.QueryRow(ctx, blockExistsSQL, driverID, date.Time()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check unavailability block", err)
	}
	return exists, nil
}
