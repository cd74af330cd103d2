package commands

import (
	"context"
	"time"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/domain/unavailability"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type TourSnapshot struct {
	ID           uuid.UUID
	Name         string
	DurationDays int
	Rates        []int64 // per-person cents, one per bracket
	IsActive     bool
}

type DriverSnapshot struct {
	ID       uuid.UUID
	Name     string
	UserID   *uuid.UUID
	IsActive bool
}

type TourRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TourSnapshot, error)
}

type DriverRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DriverSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error
	// Any booking in a slot-holding status for (driver, date)
	HasSlotHolder(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) (bool, error)
	HasConfirmed(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) (bool, error)
}

type UnavailabilityRepository interface {
	Insert(ctx context.Context, tx db.DBTX, block *unavailability.Block) (*queries.BlockView, error)
	Delete(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) error
	Exists(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
