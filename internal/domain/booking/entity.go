package booking

import (
	"errors"
	"time"

	"cape-tours-api/internal/domain/tour"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Booking holds exactly one committed driver per (driver, date) slot. The
// customer may shortlist up to two drivers in the funnel; the coordinator
// commits the first that passes the availability guard.
type Booking struct {
	id              uuid.UUID
	tourID          uuid.UUID
	driverID        uuid.UUID
	userID          *uuid.UUID
	date            TourDate
	groupSize       GroupSize
	customer        Customer
	pricePerPerson  int64
	totalPrice      int64
	status          Status
	specialRequests *string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking prices the group against the tour's bracket table and starts the
// booking in pending. The (driver, date) uniqueness guard lives in the
// persistence layer, not here.
func NewBooking(
	tourEntity *tour.Tour,
	driverID uuid.UUID,
	userID *uuid.UUID,
	date TourDate,
	groupSize GroupSize,
	customer Customer,
	specialRequests *string,
) *Booking {
	perPerson := tourEntity.PriceTable().PerPersonCents(groupSize.Value())
	return &Booking{
		id:              uuid.New(),
		tourID:          tourEntity.ID(),
		driverID:        driverID,
		userID:          userID,
		date:            date,
		groupSize:       groupSize,
		customer:        customer,
		pricePerPerson:  perPerson,
		totalPrice:      perPerson * int64(groupSize.Value()),
		status:          StatusPending,
		specialRequests: specialRequests,
	}
}

func ReconstructBooking(
	id, tourID, driverID uuid.UUID,
	userID *uuid.UUID,
	date TourDate,
	groupSize GroupSize,
	customer Customer,
	pricePerPerson, totalPrice int64,
	status Status,
	specialRequests *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		tourID:          tourID,
		driverID:        driverID,
		userID:          userID,
		date:            date,
		groupSize:       groupSize,
		customer:        customer,
		pricePerPerson:  pricePerPerson,
		totalPrice:      totalPrice,
		status:          status,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// TransitionTo validates against the state machine and never mutates on
// failure. Cancellation is a status, not a removal.
func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) HoldsSlot() bool {
	return b.status.HoldsSlot()
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) TourID() uuid.UUID        { return b.tourID }
func (b *Booking) DriverID() uuid.UUID      { return b.driverID }
func (b *Booking) UserID() *uuid.UUID       { return b.userID }
func (b *Booking) Date() TourDate           { return b.date }
func (b *Booking) GroupSize() GroupSize     { return b.groupSize }
func (b *Booking) Customer() Customer       { return b.customer }
func (b *Booking) PricePerPerson() int64    { return b.pricePerPerson }
func (b *Booking) TotalPrice() int64        { return b.totalPrice }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) SpecialRequests() *string { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
