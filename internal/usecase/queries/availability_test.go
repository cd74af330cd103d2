//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cape-tours-api/internal/domain/booking"
	"cape-tours-api/internal/usecase/queries"
	queriesmock "cape-tours-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailableDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := queriesmock.NewMockAvailabilityReadStore(ctrl)
	q := queries.NewAvailabilityQueries(store)

	t.Run("passes the parsed date to the store", func(t *testing.T) {
		views := []*queries.AvailableDriverView{{ID: uuid.New(), Name: "Sipho M."}}
		store.EXPECT().FindAvailableDrivers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, date booking.TourDate) ([]*queries.AvailableDriverView, error) {
				require.Equal(t, "2026-09-12", date.String())
				return views, nil
			}).Times(1)

		actual, err := q.AvailableDrivers(context.Background(), "2026-09-12", 4)
		require.NoError(t, err)
		require.Equal(t, views, actual)
	})

	t.Run("past dates are queryable", func(t *testing.T) {
		store.EXPECT().FindAvailableDrivers(gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		_, err := q.AvailableDrivers(context.Background(), "2020-01-01", 1)
		require.NoError(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := q.AvailableDrivers(context.Background(), "12 Sep 2026", 4)
		require.ErrorIs(t, err, queries.ErrInvalidAvailabilityDate)
	})

	t.Run("group size out of range", func(t *testing.T) {
		for _, size := range []int{0, 23} {
			_, err := q.AvailableDrivers(context.Background(), "2026-09-12", size)
			require.ErrorIs(t, err, queries.ErrInvalidGroupSize, "size %d", size)
		}
	})
}
