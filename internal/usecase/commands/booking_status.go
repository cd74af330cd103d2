package commands

import (
	"context"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/pkg/errs"
	"cape-tours-api/internal/usecase/queries"
	"cape-tours-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBookingNotFound   = errs.New("booking not found")
	ErrInvalidStatus     = errs.New("invalid status")
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrStatusAccess      = errs.New("status transition access denied")
)

type BookingStatusCommands interface {
	TransitionStatus(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, next string) (*queries.BookingView, error)
}

type bookingStatusCommandsImpl struct {
	bookingRepo  BookingRepository
	bookingStore queries.BookingReadStore
	pool         *pgxpool.Pool
}

func NewBookingStatusCommands(
	bookingRepo BookingRepository,
	bookingStore queries.BookingReadStore,
	pool *pgxpool.Pool,
) BookingStatusCommands {
	return &bookingStatusCommandsImpl{
		bookingRepo:  bookingRepo,
		bookingStore: bookingStore,
		pool:         pool,
	}
}

// TransitionStatus applies the pending→confirmed→completed / →cancelled state
// machine. Confirming does not re-run the creation-time uniqueness guard: at
// most one non-cancelled booking can exist per (driver, date) by construction,
// so confirming it cannot mint a new conflict.
func (b *bookingStatusCommandsImpl) TransitionStatus(
	ctx context.Context,
	actor shared.Actor,
	bookingID uuid.UUID,
	next string,
) (*queries.BookingView, error) {
	nextStatus := booking.Status(next)
	if !nextStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	_, err := shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (struct{}, error) {
		entity, err := b.bookingRepo.FindByID(ctx, tx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrBookingNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !actor.OwnsDriver(entity.DriverID()) {
			return struct{}{}, ErrStatusAccess
		}

		if err := entity.TransitionTo(nextStatus); err != nil {
			return struct{}{}, errs.Mark(err, ErrInvalidTransition)
		}

		if err := b.bookingRepo.UpdateStatus(ctx, tx, bookingID, nextStatus); err != nil {
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	view, err := b.bookingStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
