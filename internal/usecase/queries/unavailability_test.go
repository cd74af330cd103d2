//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cape-tours-api/internal/domain/user"
	"cape-tours-api/internal/usecase/queries"
	"cape-tours-api/internal/usecase/shared"
	queriesmock "cape-tours-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListForDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockUnavailabilityReadStore(ctrl)
	q := queries.NewUnavailabilityQueries(store)

	driverID := uuid.New()
	owner := shared.Actor{UserID: uuid.New(), Role: user.RoleDriver, DriverID: &driverID}

	t.Run("owner lists without a filter", func(t *testing.T) {
		store.EXPECT().FindByDriverID(gomock.Any(), driverID, gomock.Nil()).
			Return(nil, nil).Times(1)

		_, err := q.ListForDriver(context.Background(), owner, driverID, nil)
		require.NoError(t, err)
	})

	t.Run("from filter is parsed before hitting the store", func(t *testing.T) {
		store.EXPECT().FindByDriverID(gomock.Any(), driverID, gomock.Not(gomock.Nil())).
			Return(nil, nil).Times(1)

		from := "2026-09-01"
		_, err := q.ListForDriver(context.Background(), owner, driverID, &from)
		require.NoError(t, err)
	})

	t.Run("malformed from filter", func(t *testing.T) {
		from := "last week"
		_, err := q.ListForDriver(context.Background(), owner, driverID, &from)
		require.ErrorIs(t, err, queries.ErrInvalidBlockDate)
	})

	t.Run("another driver's calendar", func(t *testing.T) {
		otherDriver := uuid.New()
		stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleDriver, DriverID: &otherDriver}

		_, err := q.ListForDriver(context.Background(), stranger, driverID, nil)
		require.ErrorIs(t, err, queries.ErrBlockAccess)
	})
}

func TestIsBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockUnavailabilityReadStore(ctrl)
	q := queries.NewUnavailabilityQueries(store)

	driverID := uuid.New()

	t.Run("delegates to the store", func(t *testing.T) {
		store.EXPECT().Exists(gomock.Any(), driverID, gomock.Any()).
			Return(true, nil).Times(1)

		blocked, err := q.IsBlocked(context.Background(), driverID, "2026-09-12")
		require.NoError(t, err)
		require.True(t, blocked)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := q.IsBlocked(context.Background(), driverID, "tomorrow")
		require.ErrorIs(t, err, queries.ErrInvalidBlockDate)
	})
}
