package commands

import (
	"context"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/domain/unavailability"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/pkg/errs"
	"cape-tours-api/internal/usecase/queries"
	"cape-tours-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBlockConflict        = errs.New("block conflict")
	ErrBlockNotFound        = errs.New("block not found")
	ErrUnavailabilityAccess = errs.New("unavailability access denied")
)

type UnavailabilityCommands interface {
	Block(ctx context.Context, actor shared.Actor, driverID uuid.UUID, date string, reason *string) (*queries.BlockView, error)
	Unblock(ctx context.Context, actor shared.Actor, driverID uuid.UUID, date string) error
}

type unavailabilityCommandsImpl struct {
	unavailRepo UnavailabilityRepository
	bookingRepo BookingRepository
	driverRepo  DriverRepository
	pool        *pgxpool.Pool
}

func NewUnavailabilityCommands(
	unavailRepo UnavailabilityRepository,
	bookingRepo BookingRepository,
	driverRepo DriverRepository,
	pool *pgxpool.Pool,
) UnavailabilityCommands {
	return &unavailabilityCommandsImpl{
		unavailRepo: unavailRepo,
		bookingRepo: bookingRepo,
		driverRepo:  driverRepo,
		pool:        pool,
	}
}

// Block refuses a date that already carries a confirmed booking for the
// driver. The check sees only committed state; a confirmation committing
// concurrently can still land, which matches a legal block-then-confirm
// ordering. Duplicate blocks hit the (driver_id, date) unique constraint
// and also report Conflict.
func (u *unavailabilityCommandsImpl) Block(
	ctx context.Context,
	actor shared.Actor,
	driverID uuid.UUID,
	date string,
	reason *string,
) (*queries.BlockView, error) {
	if !actor.OwnsDriver(driverID) {
		return nil, ErrUnavailabilityAccess
	}

	blockDate, err := booking.ParseTourDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	if err := u.ensureDriverExists(ctx, driverID); err != nil {
		return nil, err
	}

	return shared.RunInTx(ctx, u.pool, func(tx db.DBTX) (*queries.BlockView, error) {
		confirmed, err := u.bookingRepo.HasConfirmed(ctx, tx, driverID, blockDate)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if confirmed {
			return nil, ErrBlockConflict
		}

		view, err := u.unavailRepo.Insert(ctx, tx, unavailability.NewBlock(driverID, blockDate, reason))
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, ErrBlockConflict
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return view, nil
	})
}

func (u *unavailabilityCommandsImpl) Unblock(
	ctx context.Context,
	actor shared.Actor,
	driverID uuid.UUID,
	date string,
) error {
	if !actor.OwnsDriver(driverID) {
		return ErrUnavailabilityAccess
	}

	blockDate, err := booking.ParseTourDate(date)
	if err != nil {
		return errs.Mark(err, ErrInvalidDate)
	}

	_, err = shared.RunInTx(ctx, u.pool, func(tx db.DBTX) (struct{}, error) {
		if err := u.unavailRepo.Delete(ctx, tx, driverID, blockDate); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return struct{}{}, ErrBlockNotFound
			}
			return struct{}{}, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return struct{}{}, nil
	})
	return err
}

func (u *unavailabilityCommandsImpl) ensureDriverExists(ctx context.Context, driverID uuid.UUID) error {
	if _, err := u.driverRepo.FindByID(ctx, driverID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDriverNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
