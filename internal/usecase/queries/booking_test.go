//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cape-tours-api/internal/domain/user"
	"cape-tours-api/internal/infra"
	"cape-tours-api/internal/usecase/queries"
	"cape-tours-api/internal/usecase/shared"
	"cape-tours-api/tests/common/builder"
	queriesmock "cape-tours-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	store    *queriesmock.MockBookingReadStore
	queries  queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.queries = queries.NewBookingQueries(s.store)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func driverActor(driverID uuid.UUID) shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleDriver, DriverID: &driverID}
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("admin reads any booking", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		actual, err := s.queries.GetByID(context.Background(), shared.Actor{Role: user.RoleAdmin}, view.ID)
		require.NoError(s.T(), err)
		s.Equal(view, actual)
	})

	s.Run("assigned driver reads their booking", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err := s.queries.GetByID(context.Background(), driverActor(view.DriverID), view.ID)
		require.NoError(s.T(), err)
	})

	s.Run("booking owner reads their booking", func() {
		userID := uuid.New()
		owned := builder.NewBookingBuilder().WithUserID(userID).BuildView()
		s.store.EXPECT().FindByID(gomock.Any(), owned.ID).Return(owned, nil).Times(1)

		_, err := s.queries.GetByID(context.Background(), shared.Actor{UserID: userID, Role: user.RoleMember}, owned.ID)
		require.NoError(s.T(), err)
	})

	s.Run("unrelated caller gets not found, not forbidden", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		_, err := s.queries.GetByID(context.Background(), shared.Actor{UserID: uuid.New(), Role: user.RoleMember}, view.ID)
		require.ErrorIs(s.T(), err, queries.ErrBookingNotFound)
	})

	s.Run("missing booking", func() {
		s.store.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.queries.GetByID(context.Background(), shared.Actor{Role: user.RoleAdmin}, view.ID)
		require.ErrorIs(s.T(), err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListAll() {
	s.Run("admin only", func() {
		s.store.EXPECT().FindAll(gomock.Any()).Return(nil, nil).Times(1)

		_, err := s.queries.ListAll(context.Background(), shared.Actor{Role: user.RoleAdmin})
		require.NoError(s.T(), err)
	})

	s.Run("drivers and members are refused", func() {
		for _, role := range []user.Role{user.RoleDriver, user.RoleMember} {
			_, err := s.queries.ListAll(context.Background(), shared.Actor{UserID: uuid.New(), Role: role})
			require.ErrorIs(s.T(), err, queries.ErrBookingAccess, role)
		}
	})
}

func (s *BookingQueriesTestSuite) TestListByDriver() {
	driverID := uuid.New()

	s.Run("own calendar", func() {
		s.store.EXPECT().FindByDriverID(gomock.Any(), driverID).Return(nil, nil).Times(1)

		_, err := s.queries.ListByDriver(context.Background(), driverActor(driverID), driverID)
		require.NoError(s.T(), err)
	})

	s.Run("someone else's calendar", func() {
		_, err := s.queries.ListByDriver(context.Background(), driverActor(uuid.New()), driverID)
		require.ErrorIs(s.T(), err, queries.ErrBookingAccess)
	})

	s.Run("admin passes the ownership gate", func() {
		s.store.EXPECT().FindByDriverID(gomock.Any(), driverID).Return(nil, nil).Times(1)

		_, err := s.queries.ListByDriver(context.Background(), shared.Actor{Role: user.RoleAdmin}, driverID)
		require.NoError(s.T(), err)
	})
}
