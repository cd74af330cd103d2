//go:build unit || e2e

package builder

import (
	"time"

	dombooking "cape-tours-api/internal/domain/booking"
	domtour "cape-tours-api/internal/domain/tour"
	reqdto "cape-tours-api/internal/handler/dto/request"
	"cape-tours-api/internal/usecase/commands"
	"cape-tours-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// Per-person rates in cents for the standard group-size brackets, largest
// groups cheapest.
var defaultRates = []int64{
	250000, 180000, 150000, 130000, 120000, 110000, 100000, 95000, 90000,
}

type BookingBuilder struct {
	TourID          uuid.UUID
	TourName        string
	DurationDays    int
	Rates           []int64
	DriverID        uuid.UUID
	DriverName      string
	UserID          *uuid.UUID
	Now             time.Time
	Date            string
	GroupSize       int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	SpecialRequests *string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	phone := "+27821234567"
	return &BookingBuilder{
		TourID:        uuid.New(),
		TourName:      "Peninsula Day Tour",
		DurationDays:  1,
		Rates:         defaultRates,
		DriverID:      uuid.New(),
		DriverName:    "Sipho M.",
		Now:           now,
		Date:          now.AddDate(0, 0, 7).Format(dombooking.DateLayout),
		GroupSize:     4,
		CustomerName:  "Jane Traveller",
		CustomerEmail: "jane@example.com",
		CustomerPhone: &phone,
		Status:        dombooking.StatusPending.String(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	date, err := dombooking.NewTourDate(b.Date, b.Now)
	if err != nil {
		return nil, err
	}
	groupSize, err := dombooking.NewGroupSize(b.GroupSize)
	if err != nil {
		return nil, err
	}
	customer, err := dombooking.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	tourEntity, err := b.BuildTour()
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(tourEntity, b.DriverID, b.UserID, date, groupSize, customer, b.SpecialRequests), nil
}

func (b *BookingBuilder) BuildTour() (*domtour.Tour, error) {
	table, err := domtour.NewPriceTable(b.Rates)
	if err != nil {
		return nil, err
	}
	return domtour.NewTour(b.TourID, b.TourName, b.DurationDays, table, true)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	driverID := b.DriverID
	return reqdto.CreateBookingRequest{
		TourID:          b.TourID,
		Date:            b.Date,
		GroupSize:       b.GroupSize,
		DriverID:        &driverID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	table, _ := domtour.NewPriceTable(b.Rates)
	perPerson := table.PerPersonCents(b.GroupSize)
	return &queries.BookingView{
		ID:                  uuid.New(),
		TourID:              b.TourID,
		TourName:            b.TourName,
		DriverID:            b.DriverID,
		DriverName:          b.DriverName,
		UserID:              b.UserID,
		Date:                b.Date,
		GroupSize:           b.GroupSize,
		CustomerName:        b.CustomerName,
		CustomerEmail:       b.CustomerEmail,
		CustomerPhone:       b.CustomerPhone,
		PricePerPersonCents: perPerson,
		TotalPriceCents:     perPerson * int64(b.GroupSize),
		Status:              b.Status,
		SpecialRequests:     b.SpecialRequests,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateResult() *commands.CreateBookingResult {
	return &commands.CreateBookingResult{
		Booking:     b.BuildView(),
		EmailQueued: true,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	table, _ := domtour.NewPriceTable(b.Rates)
	return &queries.BookingListItem{
		ID:              uuid.New(),
		TourName:        b.TourName,
		DriverName:      b.DriverName,
		Date:            b.Date,
		GroupSize:       b.GroupSize,
		TotalPriceCents: table.TotalCents(b.GroupSize),
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildBlockView() *queries.BlockView {
	return &queries.BlockView{
		ID:        uuid.New(),
		DriverID:  b.DriverID,
		Date:      b.Date,
		CreatedAt: b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithTourID(id uuid.UUID) *BookingBuilder {
	b.TourID = id
	return b
}

func (b *BookingBuilder) WithDriverID(id uuid.UUID) *BookingBuilder {
	b.DriverID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = &id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithNow(now time.Time) *BookingBuilder {
	b.Now = now
	return b
}

func (b *BookingBuilder) WithGroupSize(size int) *BookingBuilder {
	b.GroupSize = size
	return b
}

func (b *BookingBuilder) WithCustomer(name, email string) *BookingBuilder {
	b.CustomerName = name
	b.CustomerEmail = email
	return b
}

func (b *BookingBuilder) WithPhone(phone *string) *BookingBuilder {
	b.CustomerPhone = phone
	return b
}

func (b *BookingBuilder) WithRates(rates []int64) *BookingBuilder {
	b.Rates = rates
	return b
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status.String()
	return b
}
