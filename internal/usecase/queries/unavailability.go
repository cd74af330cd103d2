package queries

import (
	"context"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/pkg/errs"
	"cape-tours-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidBlockDate = errs.New("invalid block date")
	ErrBlockAccess      = errs.New("unavailability access denied")
)

type UnavailabilityReadStore interface {
	// Ordered by date ascending
	FindByDriverID(ctx context.Context, driverID uuid.UUID, from *booking.TourDate) ([]*BlockView, error)
	Exists(ctx context.Context, driverID uuid.UUID, date booking.TourDate) (bool, error)
}

type UnavailabilityQueries interface {
	ListForDriver(ctx context.Context, actor shared.Actor, driverID uuid.UUID, from *string) ([]*BlockView, error)
	IsBlocked(ctx context.Context, driverID uuid.UUID, date string) (bool, error)
}

type unavailabilityQueriesImpl struct {
	store UnavailabilityReadStore
}

func NewUnavailabilityQueries(store UnavailabilityReadStore) UnavailabilityQueries {
	return &unavailabilityQueriesImpl{store: store}
}

func (q *unavailabilityQueriesImpl) ListForDriver(ctx context.Context, actor shared.Actor, driverID uuid.UUID, from *string) ([]*BlockView, error) {
	if !actor.OwnsDriver(driverID) {
		return nil, ErrBlockAccess
	}

	var fromDate *booking.TourDate
	if from != nil {
		parsed, err := booking.ParseTourDate(*from)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidBlockDate)
		}
		fromDate = &parsed
	}

	return q.store.FindByDriverID(ctx, driverID, fromDate)
}

func (q *unavailabilityQueriesImpl) IsBlocked(ctx context.Context, driverID uuid.UUID, date string) (bool, error) {
	parsed, err := booking.ParseTourDate(date)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidBlockDate)
	}
	return q.store.Exists(ctx, driverID, parsed)
}
