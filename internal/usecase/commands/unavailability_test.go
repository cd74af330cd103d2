//go:build unit

package commands_test

import (
	"context"
	"testing"

	"cape-tours-api/internal/domain/user"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/usecase/commands"
	"cape-tours-api/internal/usecase/shared"
	commandsmock "cape-tours-api/tests/mock/commands"
	queriesmock "cape-tours-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// Pre-transaction validation only; the confirmed-booking conflict check runs
// inside a transaction and is covered by the e2e suite.
type UnavailabilityCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	unavailRepo *commandsmock.MockUnavailabilityRepository
	bookingRepo *commandsmock.MockBookingRepository
	driverRepo  *commandsmock.MockDriverRepository
	commands    commands.UnavailabilityCommands
	driverID    uuid.UUID
	owner       shared.Actor
}

func (s *UnavailabilityCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.unavailRepo = commandsmock.NewMockUnavailabilityRepository(s.mockCtrl)
	s.bookingRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.driverRepo = commandsmock.NewMockDriverRepository(s.mockCtrl)
	s.commands = commands.NewUnavailabilityCommands(s.unavailRepo, s.bookingRepo, s.driverRepo, nil)

	s.driverID = uuid.New()
	driverID := s.driverID
	s.owner = shared.Actor{UserID: uuid.New(), Role: user.RoleDriver, DriverID: &driverID}
}

func (s *UnavailabilityCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUnavailabilityCommandsSuite(t *testing.T) {
	suite.Run(t, new(UnavailabilityCommandsTestSuite))
}

func (s *UnavailabilityCommandsTestSuite) TestBlockValidation() {
	s.Run("another driver's calendar", func() {
		otherDriver := uuid.New()
		stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleDriver, DriverID: &otherDriver}

		_, err := s.commands.Block(context.Background(), stranger, s.driverID, "2026-09-12", nil)
		require.ErrorIs(s.T(), err, commands.ErrUnavailabilityAccess)
	})

	s.Run("driver accounts without a linked driver are rejected", func() {
		member := shared.Actor{UserID: uuid.New(), Role: user.RoleMember}

		_, err := s.commands.Block(context.Background(), member, s.driverID, "2026-09-12", nil)
		require.ErrorIs(s.T(), err, commands.ErrUnavailabilityAccess)
	})

	s.Run("malformed date", func() {
		_, err := s.commands.Block(context.Background(), s.owner, s.driverID, "12/09/2026", nil)
		require.ErrorIs(s.T(), err, commands.ErrInvalidDate)
	})

	s.Run("unknown driver", func() {
		s.driverRepo.EXPECT().FindByID(gomock.Any(), s.driverID).
			Return(nil, infra.WrapRepoErr("driver not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Block(context.Background(), s.owner, s.driverID, "2026-09-12", nil)
		require.ErrorIs(s.T(), err, commands.ErrDriverNotFound)
	})

	s.Run("admins may block any driver's date", func() {
		admin := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
		s.driverRepo.EXPECT().FindByID(gomock.Any(), s.driverID).
			Return(nil, infra.WrapRepoErr("driver not found", nil, infra.KindNotFound)).Times(1)

		// Past the ownership gate; fails on the lookup instead of access
		_, err := s.commands.Block(context.Background(), admin, s.driverID, "2026-09-12", nil)
		require.ErrorIs(s.T(), err, commands.ErrDriverNotFound)
	})
}

func (s *UnavailabilityCommandsTestSuite) TestUnblockValidation() {
	s.Run("another driver's calendar", func() {
		otherDriver := uuid.New()
		stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleDriver, DriverID: &otherDriver}

		err := s.commands.Unblock(context.Background(), stranger, s.driverID, "2026-09-12")
		require.ErrorIs(s.T(), err, commands.ErrUnavailabilityAccess)
	})

	s.Run("malformed date", func() {
		err := s.commands.Unblock(context.Background(), s.owner, s.driverID, "someday")
		require.ErrorIs(s.T(), err, commands.ErrInvalidDate)
	})
}

func TestTransitionStatusValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statusCommands := commands.NewBookingStatusCommands(
		commandsmock.NewMockBookingRepository(ctrl),
		queriesmock.NewMockBookingReadStore(ctrl),
		nil,
	)

	actor := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}
	_, err := statusCommands.TransitionStatus(context.Background(), actor, uuid.New(), "archived")
	require.ErrorIs(t, err, commands.ErrInvalidStatus)
}
