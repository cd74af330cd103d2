package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                  uuid.UUID  `json:"id"`
	TourID              uuid.UUID  `json:"tour_id"`
	TourName            string     `json:"tour_name"`
	DriverID            uuid.UUID  `json:"driver_id"`
	DriverName          string     `json:"driver_name"`
	UserID              *uuid.UUID `json:"user_id,omitempty"`
	Date                string     `json:"date"`
	GroupSize           int        `json:"group_size"`
	CustomerName        string     `json:"customer_name"`
	CustomerEmail       string     `json:"customer_email"`
	CustomerPhone       *string    `json:"customer_phone,omitempty"`
	PricePerPersonCents int64      `json:"price_per_person_cents"`
	TotalPriceCents     int64      `json:"total_price_cents"`
	Status              string     `json:"status"`
	SpecialRequests     *string    `json:"special_requests,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	TourName        string    `json:"tour_name"`
	DriverName      string    `json:"driver_name"`
	Date            string    `json:"date"`
	GroupSize       int       `json:"group_size"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type AvailableDriverView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PriceBracketView struct {
	MinSize             int   `json:"min_size"`
	MaxSize             int   `json:"max_size"`
	PricePerPersonCents int64 `json:"price_per_person_cents"`
}

type TourView struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	DurationDays int                `json:"duration_days"`
	Prices       []PriceBracketView `json:"prices"`
	IsActive     bool               `json:"is_active"`
}

type BlockView struct {
	ID        uuid.UUID `json:"id"`
	DriverID  uuid.UUID `json:"driver_id"`
	Date      string    `json:"date"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	DriverID *uuid.UUID `json:"driver_id,omitempty"`
	IsActive bool       `json:"is_active"`
}
