package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrDateInPast       = errors.New("date cannot be in the past")
	ErrInvalidGroupSize = errors.New("group size must be between 1 and 22")
	ErrInvalidCustomer  = errors.New("invalid customer details")
)

const (
	DateLayout    = "2006-01-02"
	MinGroupSize  = 1
	MaxGroupSize  = 22
	MinNameLength = 2
)

var customerEmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// TourDate is a civil date (YYYY-MM-DD). Bookings and blocks are keyed on the
// calendar day, never a timestamp.
type TourDate struct {
	value time.Time
}

// NewTourDate accepts strictly YYYY-MM-DD; "not in the past" means before
// today in the clock's location, not before the current instant.
func NewTourDate(value string, now time.Time) (TourDate, error) {
	parsed, err := time.ParseInLocation(DateLayout, value, now.Location())
	if err != nil {
		return TourDate{}, ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return TourDate{}, ErrDateInPast
	}
	return TourDate{value: parsed}, nil
}

// ParseTourDate validates format only; used where past dates are legitimate
// (listing historic bookings, deleting stale blocks).
func ParseTourDate(value string) (TourDate, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return TourDate{}, ErrInvalidDate
	}
	return TourDate{value: parsed}, nil
}

func (d TourDate) String() string {
	return d.value.Format(DateLayout)
}

func (d TourDate) Time() time.Time {
	return d.value
}

type GroupSize struct {
	value int
}

func NewGroupSize(value int) (GroupSize, error) {
	if value < MinGroupSize || value > MaxGroupSize {
		return GroupSize{}, ErrInvalidGroupSize
	}
	return GroupSize{value: value}, nil
}

func (g GroupSize) Value() int {
	return g.value
}

type Customer struct {
	name  string
	email string
	phone *string
}

func NewCustomer(name, email string, phone *string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if len(name) < MinNameLength {
		return Customer{}, ErrInvalidCustomer
	}
	if !customerEmailPattern.MatchString(email) {
		return Customer{}, ErrInvalidCustomer
	}
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		if trimmed == "" {
			phone = nil
		} else {
			phone = &trimmed
		}
	}
	return Customer{name: name, email: email, phone: phone}, nil
}

func (c Customer) Name() string   { return c.name }
func (c Customer) Email() string  { return c.email }
func (c Customer) Phone() *string { return c.phone }
