//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/pkg/clock"
	"cape-tours-api/internal/usecase/commands"
	"cape-tours-api/tests/common/builder"
	commandsmock "cape-tours-api/tests/mock/commands"
	queriesmock "cape-tours-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Covers the validation that runs before any transaction is opened. The
// commit path itself, including the duplicate-key race classification, is
// exercised end to end against a real database in tests/e2e.
type CreateBookingTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	bookingRepo      *commandsmock.MockBookingRepository
	tourRepo         *commandsmock.MockTourRepository
	driverRepo       *commandsmock.MockDriverRepository
	unavailRepo      *commandsmock.MockUnavailabilityRepository
	notificationRepo *commandsmock.MockNotificationRepository
	bookingStore     *queriesmock.MockBookingReadStore
	clock            *clock.MockClock
	commands         commands.BookingCommands
}

func (s *CreateBookingTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.tourRepo = commandsmock.NewMockTourRepository(s.mockCtrl)
	s.driverRepo = commandsmock.NewMockDriverRepository(s.mockCtrl)
	s.unavailRepo = commandsmock.NewMockUnavailabilityRepository(s.mockCtrl)
	s.notificationRepo = commandsmock.NewMockNotificationRepository(s.mockCtrl)
	s.bookingStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

	s.commands = commands.NewBookingCommands(
		s.bookingRepo,
		s.tourRepo,
		s.driverRepo,
		s.unavailRepo,
		s.notificationRepo,
		s.bookingStore,
		nil,
		s.clock,
	)
}

func (s *CreateBookingTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCreateBookingSuite(t *testing.T) {
	suite.Run(t, new(CreateBookingTestSuite))
}

func (s *CreateBookingTestSuite) activeTour(b *builder.BookingBuilder) *commands.TourSnapshot {
	return &commands.TourSnapshot{
		ID:           b.TourID,
		Name:         b.TourName,
		DurationDays: b.DurationDays,
		Rates:        b.Rates,
		IsActive:     true,
	}
}

func (s *CreateBookingTestSuite) TestDateValidation() {
	b := builder.NewBookingBuilder()

	s.Run("past date", func() {
		req := b.WithDate("2026-03-14").BuildCreateRequestDTO()
		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrInvalidDate)
	})

	s.Run("malformed date", func() {
		req := b.WithDate("next tuesday").BuildCreateRequestDTO()
		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrInvalidDate)
	})
}

func (s *CreateBookingTestSuite) TestGroupSizeValidation() {
	b := builder.NewBookingBuilder().WithDate("2026-03-20")

	for _, size := range []int{0, -1, 23} {
		req := b.WithGroupSize(size).BuildCreateRequestDTO()
		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrInvalidGroupSize, "size %d", size)
	}
}

func (s *CreateBookingTestSuite) TestCustomerValidation() {
	b := builder.NewBookingBuilder().WithDate("2026-03-20").WithCustomer("X", "bad-email")
	req := b.BuildCreateRequestDTO()

	_, err := s.commands.CreateBooking(context.Background(), req, nil)
	require.ErrorIs(s.T(), err, commands.ErrInvalidCustomer)
}

func (s *CreateBookingTestSuite) TestTourLookup() {
	b := builder.NewBookingBuilder().WithDate("2026-03-20")
	req := b.BuildCreateRequestDTO()

	s.Run("missing tour", func() {
		s.tourRepo.EXPECT().FindByID(gomock.Any(), b.TourID).
			Return(nil, infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrTourNotFound)
	})

	s.Run("inactive tour", func() {
		snap := s.activeTour(b)
		snap.IsActive = false
		s.tourRepo.EXPECT().FindByID(gomock.Any(), b.TourID).
			Return(snap, nil).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrTourNotFound)
	})
}

func (s *CreateBookingTestSuite) TestShortlistValidation() {
	b := builder.NewBookingBuilder().WithDate("2026-03-20")

	s.Run("empty shortlist", func() {
		req := b.BuildCreateRequestDTO()
		req.DriverID = nil
		req.DriverIDs = nil

		s.tourRepo.EXPECT().FindByID(gomock.Any(), b.TourID).
			Return(s.activeTour(b), nil).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrDriverNotFound)
	})

	s.Run("unknown driver", func() {
		req := b.BuildCreateRequestDTO()

		s.tourRepo.EXPECT().FindByID(gomock.Any(), b.TourID).
			Return(s.activeTour(b), nil).Times(1)
		s.driverRepo.EXPECT().FindByID(gomock.Any(), b.DriverID).
			Return(nil, infra.WrapRepoErr("driver not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrDriverNotFound)
	})

	s.Run("deactivated driver", func() {
		req := b.BuildCreateRequestDTO()

		s.tourRepo.EXPECT().FindByID(gomock.Any(), b.TourID).
			Return(s.activeTour(b), nil).Times(1)
		s.driverRepo.EXPECT().FindByID(gomock.Any(), b.DriverID).
			Return(&commands.DriverSnapshot{ID: b.DriverID, Name: b.DriverName, IsActive: false}, nil).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrDriverNotFound)
	})

	s.Run("second shortlisted driver is validated too", func() {
		second := uuid.New()
		req := b.BuildCreateRequestDTO()
		req.DriverIDs = []uuid.UUID{second}

		s.tourRepo.EXPECT().FindByID(gomock.Any(), b.TourID).
			Return(s.activeTour(b), nil).Times(1)
		s.driverRepo.EXPECT().FindByID(gomock.Any(), b.DriverID).
			Return(&commands.DriverSnapshot{ID: b.DriverID, Name: b.DriverName, IsActive: true}, nil).Times(1)
		s.driverRepo.EXPECT().FindByID(gomock.Any(), second).
			Return(nil, infra.WrapRepoErr("driver not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.CreateBooking(context.Background(), req, nil)
		require.ErrorIs(s.T(), err, commands.ErrDriverNotFound)
	})
}
