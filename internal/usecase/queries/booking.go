package queries

import (
	"context"

	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/pkg/errs"
	"cape-tours-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context) ([]*BookingListItem, error)
	FindByDriverID(ctx context.Context, driverID uuid.UUID) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	ListAll(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error)
	ListByDriver(ctx context.Context, actor shared.Actor, driverID uuid.UUID) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !canReadBooking(actor, view) {
		// Indistinguishable from a missing booking to avoid leaking ids
		return nil, ErrBookingNotFound
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*BookingListItem, error) {
	if !actor.IsAdmin() {
		return nil, ErrBookingAccess
	}
	return q.store.FindAll(ctx)
}

func (q *bookingQueriesImpl) ListByDriver(ctx context.Context, actor shared.Actor, driverID uuid.UUID) ([]*BookingListItem, error) {
	if !actor.OwnsDriver(driverID) {
		return nil, ErrBookingAccess
	}
	return q.store.FindByDriverID(ctx, driverID)
}

func canReadBooking(actor shared.Actor, view *BookingView) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.DriverID != nil && *actor.DriverID == view.DriverID {
		return true
	}
	return view.UserID != nil && *view.UserID == actor.UserID
}
