package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// completed and cancelled are terminal
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Holds a booking slot against the (driver, date) uniqueness invariant.
func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
