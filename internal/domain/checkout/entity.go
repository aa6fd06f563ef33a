package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItems        = errors.New("checkout requires at least one item")
	ErrInvalidTransition = errors.New("invalid checkout session transition")
)

// Session is the durable record behind one hosted-payment attempt. Its id is
// generated locally before the processor is involved and becomes the join
// key for webhook events and the resulting order.
type Session struct {
	id              uuid.UUID
	status          Status
	buyerID         string
	items           []LineItem
	amount          Amount
	stripeSessionID string
	paymentIntentID string
	errMsg          string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewSession(buyerID string, items []LineItem, currency string) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	return &Session{
		id:      uuid.New(),
		status:  StatusCreated,
		buyerID: buyerID,
		items:   items,
		amount:  SumAmount(items, currency),
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	status Status,
	buyerID string,
	items []LineItem,
	amount Amount,
	stripeSessionID, paymentIntentID, errMsg string,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:              id,
		status:          status,
		buyerID:         buyerID,
		items:           items,
		amount:          amount,
		stripeSessionID: stripeSessionID,
		paymentIntentID: paymentIntentID,
		errMsg:          errMsg,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Session) transition(next Status) error {
	if !s.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	s.status = next
	return nil
}

// MarkStripeCreated records the processor-side session once it exists.
func (s *Session) MarkStripeCreated(stripeSessionID string) error {
	if err := s.transition(StatusStripeCreated); err != nil {
		return err
	}
	s.stripeSessionID = stripeSessionID
	return nil
}

func (s *Session) MarkPaid(paymentIntentID string) error {
	if err := s.transition(StatusPaid); err != nil {
		return err
	}
	s.paymentIntentID = paymentIntentID
	return nil
}

func (s *Session) MarkExpired() error {
	return s.transition(StatusExpired)
}

// MarkError is valid from any non-terminal state.
func (s *Session) MarkError(msg string) error {
	if s.status.IsTerminal() {
		return ErrInvalidTransition
	}
	s.status = StatusError
	s.errMsg = msg
	return nil
}

func (s *Session) ID() uuid.UUID           { return s.id }
func (s *Session) Status() Status          { return s.status }
func (s *Session) BuyerID() string         { return s.buyerID }
func (s *Session) Items() []LineItem       { return s.items }
func (s *Session) Amount() Amount          { return s.amount }
func (s *Session) StripeSessionID() string { return s.stripeSessionID }
func (s *Session) PaymentIntentID() string { return s.paymentIntentID }
func (s *Session) ErrorMessage() string    { return s.errMsg }
func (s *Session) CreatedAt() time.Time    { return s.createdAt }
func (s *Session) UpdatedAt() time.Time    { return s.updatedAt }
