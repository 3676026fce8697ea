package order

// transitions is the lifecycle enforced in strict mode. Rejected and
// Delivered are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusRejected},
	StatusAccepted:  {StatusCompleted},
	StatusCompleted: {StatusDelivered},
}

func IsKnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusDelivered:
		return true
	}
	return false
}

func ValidTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionCheck validates a status change while the ledger lock is held.
// A nil check accepts every change.
type TransitionCheck func(from, to Status) error

func strictTransition(from, to Status) error {
	if !IsKnownStatus(to) {
		return ErrInvalidStatus
	}
	if !ValidTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
