package checkout

type Status string

const (
	StatusCreated       Status = "created"
	StatusStripeCreated Status = "stripe_created"
	StatusPaid          Status = "paid"
	StatusExpired       Status = "expired"
	StatusError         Status = "error"
)

func (s Status) String() string { return string(s) }

// IsTerminal reports whether no further lifecycle transition is allowed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusPaid, StatusExpired, StatusError:
		return true
	}
	return false
}

var transitions = map[Status][]Status{
	StatusCreated:       {StatusStripeCreated, StatusError},
	StatusStripeCreated: {StatusPaid, StatusExpired, StatusError},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
