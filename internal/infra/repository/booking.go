package repository

import (
	"context"
	"time"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (
	id, tour_id, driver_id, user_id, date, group_size,
	customer_name, customer_email, customer_phone,
	price_per_person_cents, total_price_cents, status, special_requests
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// Create relies on the partial unique index over (driver_id, date) for
// slot-holding statuses; a 23505 here surfaces as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, createBookingSQL,
		b.ID(),
		b.TourID(),
		b.DriverID(),
		b.UserID(),
		b.Date().Time(),
		b.GroupSize().Value(),
		b.Customer().Name(),
		b.Customer().Email(),
		b.Customer().Phone(),
		b.PricePerPerson(),
		b.TotalPrice(),
		b.Status().String(),
		b.SpecialRequests(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

const findBookingByIDSQL = `
SELECT id, tour_id, driver_id, user_id, date, group_size,
	customer_name, customer_email, customer_phone,
	price_per_person_cents, total_price_cents, status, special_requests,
	created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE`

// FindByID locks the row so a concurrent status transition on the same
// booking serializes behind this transaction.
func (r *BookingRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx, findBookingByIDSQL, id)

	var (
		bookingID, tourID, driverID         uuid.UUID
		userID                              *uuid.UUID
		date                                time.Time
		groupSize                           int
		customerName, customerEmail, status string
		customerPhone, specialRequests      *string
		pricePerPerson, totalPrice          int64
		createdAt, updatedAt                time.Time
	)
	err := row.Scan(
		&bookingID, &tourID, &driverID, &userID, &date, &groupSize,
		&customerName, &customerEmail, &customerPhone,
		&pricePerPerson, &totalPrice, &status, &specialRequests,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	tourDate, err := booking.ParseTourDate(date.Format(booking.DateLayout))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored booking date", err)
	}
	size, err := booking.NewGroupSize(groupSize)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored group size", err)
	}
	customer, err := booking.NewCustomer(customerName, customerEmail, customerPhone)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored customer", err)
	}

	return booking.ReconstructBooking(
		bookingID, tourID, driverID, userID,
		tourDate, size, customer,
		pricePerPerson, totalPrice,
		booking.Status(status), specialRequests,
		createdAt, updatedAt,
	), nil
}

const updateBookingStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := tx.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

const hasSlotHolderSQL = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE driver_id = $1 AND date = $2 AND status IN ('pending', 'confirmed')
)`

func (r *BookingRepository) HasSlotHolder(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) (bool, error) {
	var held bool
	if err := tx.QueryRow(ctx, hasSlotHolderSQL, driverID, date.Time()).Scan(&held); err != nil {
		return false, infra.WrapRepoErr("failed to check slot holder", err)
	}
	return held, nil
}

const hasConfirmedSQL = `
SELECT EXISTS (
	SELECT 1 FROM bookings
	WHERE driver_id = $1 AND date = $2 AND status = 'confirmed'
)`

func (r *BookingRepository) HasConfirmed(ctx context.Context, tx db.DBTX, driverID uuid.UUID, date booking.TourDate) (bool, error) {
	var confirmed bool
	if err := tx.QueryRow(ctx, hasConfirmedSQL, driverID, date.Time()).Scan(&confirmed); err != nil {
		return false, infra.WrapRepoErr("failed to check confirmed booking", err)
	}
	return confirmed, nil
}
