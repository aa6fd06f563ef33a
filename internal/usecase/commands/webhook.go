package commands

import (
	"context"
	"log/slog"

	"merch-store/internal/domain/checkout"
	"merch-store/internal/domain/order"
	"merch-store/internal/infra"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/shared"
)

var (
	ErrInvalidSignature       = errs.New("webhook signature verification failed")
	ErrEventPersistenceFailed = errs.New("failed to persist event")
	ErrOrderReconcileFailed   = errs.New("failed to reconcile order")
)

const (
	eventCheckoutCompleted      = "checkout.session.completed"
	eventAsyncPaymentSucceeded  = "checkout.session.async_payment_succeeded"
	eventCheckoutSessionExpired = "checkout.session.expired"
)

type WebhookCommands interface {
	// HandleEvent verifies, records, and reconciles one webhook delivery.
	// The whole flow is idempotent: Stripe may deliver the same event any
	// number of times.
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

type webhookUseCaseImpl struct {
	uow      shared.UnitOfWork
	verifier WebhookVerifier
}

func NewWebhookUseCase(uow shared.UnitOfWork, verifier WebhookVerifier) WebhookCommands {
	return &webhookUseCaseImpl{uow: uow, verifier: verifier}
}

func (w *webhookUseCaseImpl) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := w.verifier.VerifyEvent(payload, sigHeader)
	if err != nil {
		slog.Warn("webhook signature verification failed", "error", err.Error())
		return errs.Mark(err, ErrInvalidSignature)
	}

	slog.Info("webhook event verified",
		"event_id", event.ID, "type", event.Type, "livemode", event.Livemode)

	// Persist-first: the raw event is stored before any processing, and a
	// failure here returns an error so Stripe retries the delivery.
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PaymentEvents().Upsert(ctx, tx.DB(), &shared.PaymentEventRow{
			ID:              event.ID,
			Type:            event.Type,
			APIVersion:      event.APIVersion,
			Livemode:        event.Livemode,
			CheckoutID:      event.CheckoutID,
			StripeSessionID: event.StripeSessionID,
			Payload:         event.Payload,
			CreatedAt:       event.Created,
		})
	})
	if err != nil {
		slog.Error("webhook event persistence failed", "event_id", event.ID, "error", err.Error())
		return errs.Mark(err, ErrEventPersistenceFailed)
	}

	switch event.Type {
	case eventCheckoutCompleted, eventAsyncPaymentSucceeded:
		return w.reconcilePaidOrder(ctx, event)
	case eventCheckoutSessionExpired:
		return w.expireSession(ctx, event)
	default:
		// Unhandled types are acknowledged; the event log keeps them.
		return nil
	}
}

// reconcilePaidOrder upserts the order keyed by our checkout id. Items and
// amounts come from the stored checkout session, not from the client.
func (w *webhookUseCaseImpl) reconcilePaidOrder(ctx context.Context, event *PaymentEvent) error {
	if event.CheckoutID == nil {
		// Sessions created outside this backend have no metadata link.
		// Acknowledge so Stripe stops retrying something we cannot map.
		slog.Warn("payment event carries no checkout id, skipping reconciliation",
			"event_id", event.ID, "stripe_session_id", event.StripeSessionID)
		return nil
	}
	checkoutID := *event.CheckoutID

	var sessionMissing bool
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CheckoutSessionByID(ctx, checkoutID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				// The event row is already persisted; retrying forever
				// cannot conjure the session, so acknowledge.
				sessionMissing = true
				return nil
			}
			return derr
		}

		amountTotal := event.AmountTotalCents
		if amountTotal == 0 {
			amountTotal = snap.SubtotalCents
		}
		currency := event.Currency
		if currency == "" {
			currency = snap.Currency
		}
		buyerID := event.BuyerID
		if buyerID == "" {
			buyerID = snap.BuyerID
		}

		ord, derr := order.NewOrder(order.NewOrderParams{
			CheckoutID:       checkoutID,
			BuyerID:          buyerID,
			CustomerEmail:    event.CustomerEmail,
			CustomerName:     event.CustomerName,
			Items:            snap.Items,
			AmountTotalCents: amountTotal,
			Currency:         currency,
			StripeSessionID:  event.StripeSessionID,
			PaymentIntentID:  event.PaymentIntentID,
			PaidAt:           event.Created,
		})
		if derr != nil {
			return derr
		}

		if derr := tx.Orders().Upsert(ctx, tx.DB(), ord); derr != nil {
			return derr
		}

		return w.transitionSession(ctx, tx, snap, func(sess *checkout.Session) error {
			return sess.MarkPaid(event.PaymentIntentID)
		})
	})
	if err != nil {
		slog.Error("order reconciliation failed",
			"event_id", event.ID, "checkout_id", checkoutID, "error", err.Error())
		return errs.Mark(err, ErrOrderReconcileFailed)
	}
	if sessionMissing {
		slog.Warn("no stored session for paid event, skipping reconciliation",
			"event_id", event.ID, "checkout_id", checkoutID)
		return nil
	}

	slog.Info("order reconciled", "event_id", event.ID, "checkout_id", checkoutID)
	return nil
}

func (w *webhookUseCaseImpl) expireSession(ctx context.Context, event *PaymentEvent) error {
	if event.CheckoutID == nil {
		return nil
	}

	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().CheckoutSessionByID(ctx, *event.CheckoutID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return nil
			}
			return derr
		}
		return w.transitionSession(ctx, tx, snap, func(sess *checkout.Session) error {
			return sess.MarkExpired()
		})
	})
	if err != nil {
		slog.Error("failed to expire checkout session",
			"event_id", event.ID, "checkout_id", event.CheckoutID, "error", err.Error())
		return errs.Mark(err, ErrOrderReconcileFailed)
	}
	return nil
}

// transitionSession applies a state change unless the session already sits
// in a terminal state, which happens on every redelivery.
func (w *webhookUseCaseImpl) transitionSession(ctx context.Context, tx shared.Tx, snap *shared.CheckoutSessionSnapshot, mark func(*checkout.Session) error) error {
	if snap.Status.IsTerminal() {
		return nil
	}

	sess := checkout.ReconstructSession(
		snap.ID, snap.Status, snap.BuyerID, snap.Items,
		checkout.Amount{SubtotalCents: snap.SubtotalCents, Currency: snap.Currency},
		snap.StripeSessionID, "", "", snap.CreatedAt, snap.CreatedAt,
	)
	if err := mark(sess); err != nil {
		return err
	}
	return tx.CheckoutSessions().Update(ctx, tx.DB(), sess)
}
