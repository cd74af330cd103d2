//go:build unit

package tour_test

import (
	"testing"

	"cape-tours-api/internal/domain/tour"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validRates = []int64{
	250000, 180000, 150000, 130000, 120000, 110000, 100000, 95000, 90000,
}

func TestPriceTable(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		table, err := tour.NewPriceTable(validRates)
		require.NoError(t, err)

		assert.Equal(t, validRates, table.Rates())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			rates []int64
			errIs error
		}{
			{name: "empty table", rates: nil, errIs: tour.ErrEmptyPriceTable},
			{name: "too few brackets", rates: validRates[:8], errIs: tour.ErrBracketMismatch},
			{name: "too many brackets", rates: append(append([]int64{}, validRates...), 85000), errIs: tour.ErrBracketMismatch},
			{
				name:  "increasing rate",
				rates: []int64{250000, 180000, 190000, 130000, 120000, 110000, 100000, 95000, 90000},
				errIs: tour.ErrPriceNotTiered,
			},
			{
				name:  "negative rate",
				rates: []int64{250000, 180000, 150000, 130000, 120000, 110000, 100000, 95000, -1},
				errIs: tour.ErrNegativePrice,
			},
			{
				// a group of 7 would pay 700000 while a group of 6 pays 720000
				name:  "rate drop that lowers the total",
				rates: []int64{250000, 180000, 150000, 130000, 120000, 100000, 100000, 95000, 90000},
				errIs: tour.ErrTotalNotMonotonic,
			},
			{
				name:  "flat table is allowed",
				rates: []int64{100000, 100000, 100000, 100000, 100000, 100000, 100000, 100000, 100000},
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := tour.NewPriceTable(c.rates)
				if c.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})

	t.Run("bracket lookup", func(t *testing.T) {
		table, err := tour.NewPriceTable(validRates)
		require.NoError(t, err)

		cases := []struct {
			groupSize int
			perPerson int64
		}{
			{1, 250000},
			{2, 180000},
			{3, 150000},
			{4, 130000},
			{5, 120000},
			{6, 120000},
			{7, 110000},
			{10, 110000},
			{11, 100000},
			{14, 100000},
			{15, 95000},
			{18, 95000},
			{19, 90000},
			{22, 90000},
		}
		for _, c := range cases {
			assert.Equal(t, c.perPerson, table.PerPersonCents(c.groupSize), "group of %d", c.groupSize)
		}
	})

	t.Run("sizes above the top bracket fall back to the top rate", func(t *testing.T) {
		table, err := tour.NewPriceTable(validRates)
		require.NoError(t, err)

		assert.Equal(t, int64(90000), table.PerPersonCents(23))
	})

	t.Run("total is per person times group size", func(t *testing.T) {
		table, err := tour.NewPriceTable(validRates)
		require.NoError(t, err)

		assert.Equal(t, int64(520000), table.TotalCents(4))
		assert.Equal(t, int64(1980000), table.TotalCents(22))
	})

	t.Run("total never decreases as the group grows", func(t *testing.T) {
		tables := [][]int64{
			validRates,
			{100000, 100000, 100000, 100000, 100000, 100000, 100000, 100000, 100000},
			{250000, 180000, 150000, 130000, 120000, 110000, 100000, 95000, 95000},
		}
		for _, rates := range tables {
			table, err := tour.NewPriceTable(rates)
			require.NoError(t, err)

			prev := int64(0)
			for size := 1; size <= tour.MaxGroupSize; size++ {
				total := table.TotalCents(size)
				assert.GreaterOrEqual(t, total, prev, "total dropped at group size %d", size)
				prev = total
			}
		}
	})

	t.Run("rates are copied, not aliased", func(t *testing.T) {
		rates := append([]int64{}, validRates...)
		table, err := tour.NewPriceTable(rates)
		require.NoError(t, err)

		rates[0] = 1
		assert.Equal(t, int64(250000), table.PerPersonCents(1))
	})
}

func TestTour(t *testing.T) {
	table, err := tour.NewPriceTable(validRates)
	require.NoError(t, err)

	t.Run("valid tour", func(t *testing.T) {
		actual, err := tour.NewTour(uuid.Nil, "Winelands Tour", 1, table, true)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Winelands Tour", actual.Name())
		assert.True(t, actual.IsActive())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := tour.NewTour(uuid.Nil, "", 1, table, true)
		require.ErrorIs(t, err, tour.ErrEmptyName)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := tour.NewTour(uuid.Nil, "Garden Route", 0, table, true)
		require.ErrorIs(t, err, tour.ErrInvalidDuration)
	})
}
