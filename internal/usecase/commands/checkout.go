package commands

import (
	"context"
	"log/slog"

	"merch-store/internal/domain/checkout"
	"merch-store/internal/infra"
	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart             = errs.New("cart is empty")
	ErrProductUnavailable    = errs.New("product is not available")
	ErrAssetUnavailable      = errs.New("asset is not available")
	ErrCheckoutSessionFailed = errs.New("failed to create checkout session")
)

type CheckoutItemRequest struct {
	ItemID     string
	ProductID  uuid.UUID
	AssetID    uuid.UUID
	Quantity   int
	Scale      float64
	OffsetX    float64
	OffsetY    float64
	PreviewURL string
}

type CreateCheckoutRequest struct {
	BuyerID string
	Items   []CheckoutItemRequest
}

type CreateCheckoutResult struct {
	CheckoutID uuid.UUID
	URL        string
}

type CheckoutCommands interface {
	CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	stripe  config.StripeConfig
}

func NewCheckoutUseCase(uow shared.UnitOfWork, gateway PaymentGateway, cfg config.Config) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:     uow,
		gateway: gateway,
		stripe:  cfg.Stripe,
	}
}

func (c *checkoutUseCaseImpl) CreateCheckout(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items, err := c.buildLineItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	sess, err := checkout.NewSession(req.BuyerID, items, c.stripe.Currency)
	if err != nil {
		return nil, err
	}

	// The row exists in status created before Stripe is called, so the
	// webhook can always resolve the id it gets back in metadata.
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.CheckoutSessions().Create(ctx, tx.DB(), sess)
		return derr
	})
	if err != nil {
		return nil, err
	}

	res, err := c.gateway.CreateCheckoutSession(ctx, CheckoutSessionParams{
		CheckoutID: sess.ID(),
		BuyerID:    req.BuyerID,
		Items:      items,
		Currency:   c.stripe.Currency,
	})
	if err != nil {
		c.markSessionError(ctx, sess, err.Error())
		return nil, errs.Mark(err, ErrCheckoutSessionFailed)
	}

	if derr := sess.MarkStripeCreated(res.StripeSessionID); derr != nil {
		return nil, derr
	}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CheckoutSessions().Update(ctx, tx.DB(), sess)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("checkout session created",
		"checkout_id", sess.ID(), "stripe_session_id", res.StripeSessionID, "items", len(items))

	return &CreateCheckoutResult{CheckoutID: sess.ID(), URL: res.URL}, nil
}

// buildLineItems validates every referenced product and asset and prices
// each line with the configured flat unit amount. Client-sent prices are
// never trusted.
func (c *checkoutUseCaseImpl) buildLineItems(ctx context.Context, reqItems []CheckoutItemRequest) ([]checkout.LineItem, error) {
	reads := c.uow.CommandReads()

	items := make([]checkout.LineItem, 0, len(reqItems))
	for _, ri := range reqItems {
		prod, err := reads.ProductByID(ctx, ri.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrProductNotFound)
			}
			return nil, err
		}
		if !prod.Active {
			return nil, ErrProductUnavailable
		}

		ast, err := reads.AssetByID(ctx, ri.AssetID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, ErrAssetNotFound)
			}
			return nil, err
		}
		if !ast.Published {
			return nil, ErrAssetUnavailable
		}

		item, err := checkout.NewLineItem(checkout.LineItemParams{
			ID:              ri.ItemID,
			ProductID:       prod.ID,
			AssetID:         ast.ID,
			ProductName:     prod.Name,
			AssetTitle:      ast.Title,
			Quantity:        ri.Quantity,
			UnitAmountCents: c.stripe.UnitAmountCents,
			Scale:           ri.Scale,
			OffsetX:         ri.OffsetX,
			OffsetY:         ri.OffsetY,
			PreviewURL:      ri.PreviewURL,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *checkoutUseCaseImpl) markSessionError(ctx context.Context, sess *checkout.Session, msg string) {
	if err := sess.MarkError(msg); err != nil {
		return
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CheckoutSessions().Update(ctx, tx.DB(), sess)
	})
	if err != nil {
		slog.Error("failed to record checkout session error", "checkout_id", sess.ID(), "error", err.Error())
	}
}
