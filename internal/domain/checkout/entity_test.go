//go:build unit

package checkout_test

import (
	"testing"

	"merch-store/internal/domain/checkout"
	"merch-store/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		sess, err := builder.NewCheckoutBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, sess)

		assert.NotEqual(t, uuid.Nil, sess.ID())
		assert.Equal(t, checkout.StatusCreated, sess.Status())
		assert.Equal(t, "buyer-123", sess.BuyerID())
		assert.Equal(t, int64(5000), sess.Amount().SubtotalCents, "2 x 2500")
		assert.Equal(t, "usd", sess.Amount().Currency)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		sess, err := checkout.NewSession("buyer-123", nil, "usd")
		assert.Nil(t, sess)
		assert.ErrorIs(t, err, checkout.ErrEmptyItems)
	})
}

func TestSessionTransitions(t *testing.T) {
	cases := []struct {
		from    checkout.Status
		to      checkout.Status
		allowed bool
	}{
		{checkout.StatusCreated, checkout.StatusStripeCreated, true},
		{checkout.StatusCreated, checkout.StatusError, true},
		{checkout.StatusCreated, checkout.StatusPaid, false},
		{checkout.StatusCreated, checkout.StatusExpired, false},
		{checkout.StatusStripeCreated, checkout.StatusPaid, true},
		{checkout.StatusStripeCreated, checkout.StatusExpired, true},
		{checkout.StatusStripeCreated, checkout.StatusError, true},
		{checkout.StatusPaid, checkout.StatusExpired, false},
		{checkout.StatusPaid, checkout.StatusError, false},
		{checkout.StatusExpired, checkout.StatusPaid, false},
		{checkout.StatusError, checkout.StatusPaid, false},
	}

	for _, c := range cases {
		name := string(c.from) + " -> " + string(c.to)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to))
		})
	}

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, checkout.StatusCreated.IsTerminal())
		assert.False(t, checkout.StatusStripeCreated.IsTerminal())
		assert.True(t, checkout.StatusPaid.IsTerminal())
		assert.True(t, checkout.StatusExpired.IsTerminal())
		assert.True(t, checkout.StatusError.IsTerminal())
	})
}

func TestSessionLifecycle(t *testing.T) {
	newSession := func(t *testing.T) *checkout.Session {
		t.Helper()
		sess, err := builder.NewCheckoutBuilder().BuildDomain()
		require.NoError(t, err)
		return sess
	}

	t.Run("full happy path", func(t *testing.T) {
		sess := newSession(t)

		require.NoError(t, sess.MarkStripeCreated("cs_test_123"))
		assert.Equal(t, checkout.StatusStripeCreated, sess.Status())
		assert.Equal(t, "cs_test_123", sess.StripeSessionID())

		require.NoError(t, sess.MarkPaid("pi_test_456"))
		assert.Equal(t, checkout.StatusPaid, sess.Status())
		assert.Equal(t, "pi_test_456", sess.PaymentIntentID())
	})

	t.Run("cannot pay before stripe session exists", func(t *testing.T) {
		sess := newSession(t)
		assert.ErrorIs(t, sess.MarkPaid("pi_test"), checkout.ErrInvalidTransition)
	})

	t.Run("expire after stripe session", func(t *testing.T) {
		sess := newSession(t)
		require.NoError(t, sess.MarkStripeCreated("cs_test"))
		require.NoError(t, sess.MarkExpired())
		assert.Equal(t, checkout.StatusExpired, sess.Status())
	})

	t.Run("MarkError is valid from any non-terminal state", func(t *testing.T) {
		sess := newSession(t)
		require.NoError(t, sess.MarkError("stripe call failed"))
		assert.Equal(t, checkout.StatusError, sess.Status())
		assert.Equal(t, "stripe call failed", sess.ErrorMessage())

		sess2 := newSession(t)
		require.NoError(t, sess2.MarkStripeCreated("cs_test"))
		require.NoError(t, sess2.MarkError("webhook mismatch"))
		assert.Equal(t, checkout.StatusError, sess2.Status())
	})

	t.Run("MarkError rejected on terminal session", func(t *testing.T) {
		sess := newSession(t)
		require.NoError(t, sess.MarkStripeCreated("cs_test"))
		require.NoError(t, sess.MarkPaid("pi_test"))
		assert.ErrorIs(t, sess.MarkError("too late"), checkout.ErrInvalidTransition)
	})
}

func TestLineItem(t *testing.T) {
	t.Run("requires product and asset references", func(t *testing.T) {
		_, err := checkout.NewLineItem(checkout.LineItemParams{AssetID: uuid.New()})
		assert.ErrorIs(t, err, checkout.ErrInvalidLineItem)

		_, err = checkout.NewLineItem(checkout.LineItemParams{ProductID: uuid.New()})
		assert.ErrorIs(t, err, checkout.ErrInvalidLineItem)
	})

	t.Run("quantity defaults to 1", func(t *testing.T) {
		for _, q := range []int{0, -3} {
			item, err := checkout.NewLineItem(checkout.LineItemParams{
				ProductID: uuid.New(),
				AssetID:   uuid.New(),
				Quantity:  q,
			})
			require.NoError(t, err)
			assert.Equal(t, int32(1), item.Quantity)
		}
	})

	t.Run("display name", func(t *testing.T) {
		item, err := checkout.NewLineItem(checkout.LineItemParams{
			ProductID:   uuid.New(),
			AssetID:     uuid.New(),
			ProductName: "Classic Tee",
			AssetTitle:  "Retro sunset",
			Quantity:    1,
		})
		require.NoError(t, err)
		assert.Equal(t, "Classic Tee - Retro sunset", item.DisplayName())

		item.AssetTitle = ""
		assert.Equal(t, "Classic Tee", item.DisplayName())
	})

	t.Run("subtotal", func(t *testing.T) {
		item, err := checkout.NewLineItem(checkout.LineItemParams{
			ProductID:       uuid.New(),
			AssetID:         uuid.New(),
			Quantity:        3,
			UnitAmountCents: 2500,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7500), item.SubtotalCents())
	})
}

func TestSumAmount(t *testing.T) {
	b := builder.NewCheckoutBuilder()
	items := []checkout.LineItem{b.BuildLineItem(), b.BuildLineItem()}

	amount := checkout.SumAmount(items, "usd")
	assert.Equal(t, int64(10000), amount.SubtotalCents)
	assert.Equal(t, "usd", amount.Currency)

	empty := checkout.SumAmount(nil, "usd")
	assert.Equal(t, int64(0), empty.SubtotalCents)
}
