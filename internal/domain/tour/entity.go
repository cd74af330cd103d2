package tour

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("tour name cannot be empty")
	ErrInvalidDuration   = errors.New("tour duration must be at least one day")
	ErrEmptyPriceTable   = errors.New("price table cannot be empty")
	ErrPriceNotTiered    = errors.New("price per person must not increase with group size")
	ErrTotalNotMonotonic = errors.New("total price must not decrease with group size")
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrBracketMismatch   = errors.New("price table does not match the standard brackets")
)

// Standard group-size brackets. Rates are per person, in cents (ZAR).
var bracketBounds = [][2]int{
	{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 6}, {7, 10}, {11, 14}, {15, 18}, {19, 22},
}

const MaxGroupSize = 22

type PriceTable struct {
	rates []int64 // one rate per bracket, cents per person
}

// NewPriceTable expects exactly one per-person rate for each standard bracket.
// Rates must be non-increasing as group size grows, and adjacent rates must not
// drop so steeply that a larger group pays less in total than a smaller one.
func NewPriceTable(rates []int64) (PriceTable, error) {
	if len(rates) == 0 {
		return PriceTable{}, ErrEmptyPriceTable
	}
	if len(rates) != len(bracketBounds) {
		return PriceTable{}, ErrBracketMismatch
	}
	for i, r := range rates {
		if r < 0 {
			return PriceTable{}, ErrNegativePrice
		}
		if i > 0 && r > rates[i-1] {
			return PriceTable{}, ErrPriceNotTiered
		}
	}
	// Total at the bottom of each bracket must cover the total at the top of the
	// previous one; within a bracket the rate is flat, so totals grow with size.
	for i := 1; i < len(rates); i++ {
		prevTop := int64(bracketBounds[i-1][1])
		nextBottom := int64(bracketBounds[i][0])
		if rates[i]*nextBottom < rates[i-1]*prevTop {
			return PriceTable{}, ErrTotalNotMonotonic
		}
	}
	table := PriceTable{rates: make([]int64, len(rates))}
	copy(table.rates, rates)
	return table, nil
}

// PerPersonCents returns the bracket rate for the group size. Sizes above the
// top bracket fall back to the top rate; callers reject them before pricing.
func (t PriceTable) PerPersonCents(groupSize int) int64 {
	for i, b := range bracketBounds {
		if groupSize >= b[0] && groupSize <= b[1] {
			return t.rates[i]
		}
	}
	return t.rates[len(t.rates)-1]
}

func (t PriceTable) TotalCents(groupSize int) int64 {
	return t.PerPersonCents(groupSize) * int64(groupSize)
}

func (t PriceTable) Rates() []int64 {
	out := make([]int64, len(t.rates))
	copy(out, t.rates)
	return out
}

// Tour is reference data owned by admin tooling; the booking core reads it only.
type Tour struct {
	id           uuid.UUID
	name         string
	durationDays int
	priceTable   PriceTable
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTour(id uuid.UUID, name string, durationDays int, priceTable PriceTable, isActive bool) (*Tour, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationDays < 1 {
		return nil, ErrInvalidDuration
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Tour{
		id:           id,
		name:         name,
		durationDays: durationDays,
		priceTable:   priceTable,
		isActive:     isActive,
	}, nil
}

func ReconstructTour(
	id uuid.UUID,
	name string,
	durationDays int,
	priceTable PriceTable,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Tour {
	return &Tour{
		id:           id,
		name:         name,
		durationDays: durationDays,
		priceTable:   priceTable,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (t *Tour) ID() uuid.UUID          { return t.id }
func (t *Tour) Name() string           { return t.name }
func (t *Tour) DurationDays() int      { return t.durationDays }
func (t *Tour) PriceTable() PriceTable { return t.priceTable }
func (t *Tour) IsActive() bool         { return t.isActive }
func (t *Tour) CreatedAt() time.Time   { return t.createdAt }
func (t *Tour) UpdatedAt() time.Time   { return t.updatedAt }
