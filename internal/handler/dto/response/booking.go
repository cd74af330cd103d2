package response

import (
	"time"

	"cape-tours-api/internal/usecase/commands"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                  uuid.UUID  `json:"id"`
	TourID              uuid.UUID  `json:"tourId"`
	TourName            string     `json:"tourName"`
	DriverID            uuid.UUID  `json:"driverId"`
	DriverName          string     `json:"driverName"`
	Date                string     `json:"date"`
	GroupSize           int        `json:"groupSize"`
	CustomerName        string     `json:"customerName"`
	CustomerEmail       string     `json:"customerEmail"`
	CustomerPhone       *string    `json:"customerPhone,omitempty"`
	PricePerPersonCents int64      `json:"pricePerPersonCents"`
	TotalPriceCents     int64      `json:"totalPriceCents"`
	Status              string     `json:"status"`
	SpecialRequests     *string    `json:"specialRequests,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type CreateBookingResponse struct {
	Booking           BookingResponse `json:"booking"`
	RejectedDriverIDs []uuid.UUID     `json:"rejectedDriverIds,omitempty"`
	EmailQueued       bool            `json:"emailQueued"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	TourName        string    `json:"tourName"`
	DriverName      string    `json:"driverName"`
	Date            string    `json:"date"`
	GroupSize       int       `json:"groupSize"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:                  view.ID,
		TourID:              view.TourID,
		TourName:            view.TourName,
		DriverID:            view.DriverID,
		DriverName:          view.DriverName,
		Date:                view.Date,
		GroupSize:           view.GroupSize,
		CustomerName:        view.CustomerName,
		CustomerEmail:       view.CustomerEmail,
		CustomerPhone:       view.CustomerPhone,
		PricePerPersonCents: view.PricePerPersonCents,
		TotalPriceCents:     view.TotalPriceCents,
		Status:              view.Status,
		SpecialRequests:     view.SpecialRequests,
		CreatedAt:           view.CreatedAt,
		UpdatedAt:           view.UpdatedAt,
	}
}

func FromCreateBookingResult(result *commands.CreateBookingResult) CreateBookingResponse {
	return CreateBookingResponse{
		Booking:           FromBookingView(result.Booking),
		RejectedDriverIDs: result.RejectedDriverIDs,
		EmailQueued:       result.EmailQueued,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              item.ID,
		TourName:        item.TourName,
		DriverName:      item.DriverName,
		Date:            item.Date,
		GroupSize:       item.GroupSize,
		TotalPriceCents: item.TotalPriceCents,
		Status:          item.Status,
		CreatedAt:       item.CreatedAt,
	}
}
