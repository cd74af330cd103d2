package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/domain/tour"
	reqdto "cape-tours-api/internal/handler/dto/request"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/infra/db"
	"cape-tours-api/internal/pkg/clock"
	"cape-tours-api/internal/pkg/errs"
	"cape-tours-api/internal/usecase/queries"
	"cape-tours-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidDate             = errs.New("invalid date")
	ErrInvalidGroupSize        = errs.New("invalid group size")
	ErrInvalidCustomer         = errs.New("invalid customer")
	ErrTourNotFound            = errs.New("tour not found")
	ErrDriverNotFound          = errs.New("driver not found")
	ErrDriverUnavailable       = errs.New("driver unavailable")
	ErrDriverAlreadyBooked     = errs.New("driver already booked")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Internal markers for a failed commit attempt on one shortlisted driver.
var (
	errSlotTaken = errs.New("slot taken at pre-check")
	errSlotRaced = errs.New("slot taken at commit")
)

type CreateBookingResult struct {
	Booking *queries.BookingView
	// Shortlisted drivers tried before the committed one, in order
	RejectedDriverIDs []uuid.UUID
	// False when the confirmation email could not be queued; never fails the booking
	EmailQueued bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID *uuid.UUID) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	bookingRepo      BookingRepository
	tourRepo         TourRepository
	driverRepo       DriverRepository
	unavailRepo      UnavailabilityRepository
	notificationRepo NotificationRepository
	bookingStore     queries.BookingReadStore
	pool             *pgxpool.Pool
	clock            clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	tourRepo TourRepository,
	driverRepo DriverRepository,
	unavailRepo UnavailabilityRepository,
	notificationRepo NotificationRepository,
	bookingStore queries.BookingReadStore,
	pool *pgxpool.Pool,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:      bookingRepo,
		tourRepo:         tourRepo,
		driverRepo:       driverRepo,
		unavailRepo:      unavailRepo,
		notificationRepo: notificationRepo,
		bookingStore:     bookingStore,
		pool:             pool,
		clock:            clock,
	}
}

// CreateBooking runs the funnel's commit: validate, price, then try each
// shortlisted driver in order under the (driver, date) uniqueness guard.
// The guard is the partial unique index on bookings; a duplicate-key failure
// here means a concurrent request won the slot between pre-check and commit.
func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID *uuid.UUID,
) (*CreateBookingResult, error) {
	date, err := booking.NewTourDate(req.Date, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	groupSize, err := booking.NewGroupSize(req.GroupSize)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidGroupSize)
	}

	customer, err := booking.NewCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCustomer)
	}

	tourEntity, err := b.loadActiveTour(ctx, req.TourID)
	if err != nil {
		return nil, err
	}

	shortlist, err := b.loadShortlist(ctx, req.Shortlist())
	if err != nil {
		return nil, err
	}

	bookingID, rejected, raceSeen, err := b.commitFirstAvailable(
		ctx, tourEntity, shortlist, userID, date, groupSize, customer, req.SpecialRequests,
	)
	if err != nil {
		return nil, err
	}
	if bookingID == uuid.Nil {
		if raceSeen {
			return nil, ErrDriverAlreadyBooked
		}
		return nil, ErrDriverUnavailable
	}

	emailQueued := b.queueConfirmationEmail(ctx, bookingID)

	// Read-after-write: serve the full view from the read store
	view, err := b.bookingStore.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		Booking:           view,
		RejectedDriverIDs: rejected,
		EmailQueued:       emailQueued,
	}, nil
}

func (b *bookingCommandsImpl) loadActiveTour(ctx context.Context, tourID uuid.UUID) (*tour.Tour, error) {
	snap, err := b.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !snap.IsActive {
		return nil, ErrTourNotFound
	}

	table, err := tour.NewPriceTable(snap.Rates)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return tour.ReconstructTour(snap.ID, snap.Name, snap.DurationDays, table, snap.IsActive, b.clock.Now(), b.clock.Now()), nil
}

// loadShortlist validates every shortlisted driver up front so a missing or
// deactivated driver is reported as DriverNotFound, not silently skipped.
func (b *bookingCommandsImpl) loadShortlist(ctx context.Context, ids []uuid.UUID) ([]*DriverSnapshot, error) {
	if len(ids) == 0 {
		return nil, ErrDriverNotFound
	}

	seen := make(map[uuid.UUID]bool, len(ids))
	shortlist := make([]*DriverSnapshot, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		snap, err := b.driverRepo.FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrDriverNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !snap.IsActive {
			return nil, ErrDriverNotFound
		}
		shortlist = append(shortlist, snap)
	}
	return shortlist, nil
}

func (b *bookingCommandsImpl) commitFirstAvailable(
	ctx context.Context,
	tourEntity *tour.Tour,
	shortlist []*DriverSnapshot,
	userID *uuid.UUID,
	date booking.TourDate,
	groupSize booking.GroupSize,
	customer booking.Customer,
	specialRequests *string,
) (uuid.UUID, []uuid.UUID, bool, error) {
	var rejected []uuid.UUID
	raceSeen := false

	for _, candidate := range shortlist {
		id, err := b.tryCommit(ctx, tourEntity, candidate.ID, userID, date, groupSize, customer, specialRequests)
		switch {
		case err == nil:
			return id, rejected, raceSeen, nil
		case errors.Is(err, errSlotTaken):
			rejected = append(rejected, candidate.ID)
		case errors.Is(err, errSlotRaced):
			// The pre-check passed and the insert still collided: a genuine
			// race caught by the unique index. Worth distinguishing in logs.
			slog.Warn("booking race detected at commit",
				"driver_id", candidate.ID,
				"date", date.String())
			rejected = append(rejected, candidate.ID)
			raceSeen = true
		default:
			return uuid.Nil, nil, false, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return uuid.Nil, rejected, raceSeen, nil
}

// tryCommit re-checks blocks and slot holders inside the same transaction as
// the insert, so a block written after the funnel's pre-check still rejects
// the booking, and the partial unique index backstops concurrent inserts.
func (b *bookingCommandsImpl) tryCommit(
	ctx context.Context,
	tourEntity *tour.Tour,
	driverID uuid.UUID,
	userID *uuid.UUID,
	date booking.TourDate,
	groupSize booking.GroupSize,
	customer booking.Customer,
	specialRequests *string,
) (uuid.UUID, error) {
	return shared.RunInTx(ctx, b.pool, func(tx db.DBTX) (uuid.UUID, error) {
		blocked, err := b.unavailRepo.Exists(ctx, tx, driverID, date)
		if err != nil {
			return uuid.Nil, err
		}
		if blocked {
			return uuid.Nil, errSlotTaken
		}

		held, err := b.bookingRepo.HasSlotHolder(ctx, tx, driverID, date)
		if err != nil {
			return uuid.Nil, err
		}
		if held {
			return uuid.Nil, errSlotTaken
		}

		entity := booking.NewBooking(tourEntity, driverID, userID, date, groupSize, customer, specialRequests)
		if err := b.bookingRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return uuid.Nil, errSlotRaced
			}
			return uuid.Nil, err
		}
		return entity.ID(), nil
	})
}

// At-most-once email dispatch: the job row is written after the booking
// commits and a failure never undoes the booking, it only logs a warning.
func (b *bookingCommandsImpl) queueConfirmationEmail(ctx context.Context, bookingID uuid.UUID) bool {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       "booking_created",
	})
	if err != nil {
		slog.Warn("failed to marshal booking notification payload", "booking_id", bookingID, "error", err)
		return false
	}

	if err := b.notificationRepo.CreateJob(ctx, b.pool, "email", "booking_created", payload, b.clock.Now()); err != nil {
		slog.Warn("failed to queue booking confirmation email", "booking_id", bookingID, "error", err)
		return false
	}
	return true
}
