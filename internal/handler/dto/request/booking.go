package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TourID    uuid.UUID `json:"tour_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	GroupSize int       `json:"group_size" binding:"required"`
	// Either a single driver or a shortlist of up to two, tried in order
	DriverID        *uuid.UUID  `json:"driver_id,omitempty"`
	DriverIDs       []uuid.UUID `json:"driver_ids,omitempty" binding:"omitempty,max=2"`
	CustomerName    string      `json:"customer_name" binding:"required"`
	CustomerEmail   string      `json:"customer_email" binding:"required"`
	CustomerPhone   *string     `json:"customer_phone,omitempty"`
	SpecialRequests *string     `json:"special_requests,omitempty"`
}

// Shortlist merges the single-driver and shortlist forms, single first.
func (r CreateBookingRequest) Shortlist() []uuid.UUID {
	ids := make([]uuid.UUID, 0, 1+len(r.DriverIDs))
	if r.DriverID != nil {
		ids = append(ids, *r.DriverID)
	}
	ids = append(ids, r.DriverIDs...)
	return ids
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}
