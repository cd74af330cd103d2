package readstore

import (
	"context"
	"time"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: pool}
}

const getBookingByIDSQL = `
SELECT b.id, b.tour_id, t.name, b.driver_id, d.name, b.user_id,
	b.date, b.group_size,
	b.customer_name, b.customer_email, b.customer_phone,
	b.price_per_person_cents, b.total_price_cents, b.status,
	b.special_requests, b.created_at, b.updated_at
FROM bookings b
JOIN tours t ON t.id = b.tour_id
JOIN drivers d ON d.id = b.driver_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view queries.BookingView
		date time.Time
	)
	err := r.db.QueryRow(ctx, getBookingByIDSQL, id).Scan(
		&view.ID, &view.TourID, &view.TourName, &view.DriverID, &view.DriverName, &view.UserID,
		&date, &view.GroupSize,
		&view.CustomerName, &view.CustomerEmail, &view.CustomerPhone,
		&view.PricePerPersonCents, &view.TotalPriceCents, &view.Status,
		&view.SpecialRequests, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	view.Date = date.Format(booking.DateLayout)

	return &view, nil
}

const listAllBookingsSQL = `
SELECT b.id, t.name, d.name, b.date, b.group_size,
	b.total_price_cents, b.status, b.created_at
FROM bookings b
JOIN tours t ON t.id = b.tour_id
JOIN drivers d ON d.id = b.driver_id
ORDER BY b.date DESC, b.created_at DESC`

const listBookingsByDriverSQL = `
SELECT b.id, t.name, d.name, b.date, b.group_size,
	b.total_price_cents, b.status, b.created_at
FROM bookings b
JOIN tours t ON t.id = b.tour_id
JOIN drivers d ON d.id = b.driver_id
WHERE b.driver_id = $1
ORDER BY b.date DESC, b.created_at DESC`

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listAllBookingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, listBookingsByDriverSQL, driverID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by driver", err)
	}
	return scanBookingListItems(rows)
}

func scanBookingListItems(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	result := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var (
			item queries.BookingListItem
			date time.Time
		)
		err := rows.Scan(
			&item.ID, &item.TourName, &item.DriverName, &date, &item.GroupSize,
			&item.TotalPriceCents, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		item.Date = date.Format(booking.DateLayout)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}

	return result, nil
}
