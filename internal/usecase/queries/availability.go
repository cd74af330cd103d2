package queries

import (
	"context"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/pkg/errs"
)

var (
	ErrInvalidAvailabilityDate = errs.New("invalid availability date")
	ErrInvalidGroupSize        = errs.New("invalid group size")
)

// AvailabilityReadStore answers directly from committed data. No caching sits
// in front of it: a stale read here must never outlive the commit-time guard.
type AvailabilityReadStore interface {
	FindAvailableDrivers(ctx context.Context, date booking.TourDate) ([]*AvailableDriverView, error)
}

type AvailabilityQueries interface {
	AvailableDrivers(ctx context.Context, date string, groupSize int) ([]*AvailableDriverView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

// AvailableDrivers returns every active driver with no block and no
// pending/confirmed booking on the date. groupSize is validated but does not
// narrow the result yet; vehicle-capacity filtering will use it.
func (q *availabilityQueriesImpl) AvailableDrivers(ctx context.Context, date string, groupSize int) ([]*AvailableDriverView, error) {
	if _, err := booking.NewGroupSize(groupSize); err != nil {
		return nil, errs.Mark(err, ErrInvalidGroupSize)
	}

	tourDate, err := booking.ParseTourDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailabilityDate)
	}

	return q.store.FindAvailableDrivers(ctx, tourDate)
}
