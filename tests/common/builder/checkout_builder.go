//go:build unit || e2e

package builder

import (
	"time"

	domcheckout "merch-store/internal/domain/checkout"
	reqdto "merch-store/internal/handler/dto/request"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	BuyerID         string
	ProductID       uuid.UUID
	AssetID         uuid.UUID
	ProductName     string
	AssetTitle      string
	Quantity        int
	UnitAmountCents int64
	Currency        string
	CreatedAt       time.Time
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		BuyerID:         "buyer-123",
		ProductID:       uuid.New(),
		AssetID:         uuid.New(),
		ProductName:     "Classic Tee",
		AssetTitle:      "Retro sunset",
		Quantity:        2,
		UnitAmountCents: 2500,
		Currency:        "usd",
		CreatedAt:       time.Now(),
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildLineItem() domcheckout.LineItem {
	item, _ := domcheckout.NewLineItem(domcheckout.LineItemParams{
		ID:              "cart-item-1",
		ProductID:       b.ProductID,
		AssetID:         b.AssetID,
		ProductName:     b.ProductName,
		AssetTitle:      b.AssetTitle,
		Quantity:        b.Quantity,
		UnitAmountCents: b.UnitAmountCents,
	})
	return item
}

func (b *CheckoutBuilder) BuildDomain() (*domcheckout.Session, error) {
	return domcheckout.NewSession(b.BuyerID, []domcheckout.LineItem{b.BuildLineItem()}, b.Currency)
}

func (b *CheckoutBuilder) BuildCommand() commands.CreateCheckoutRequest {
	return commands.CreateCheckoutRequest{
		BuyerID: b.BuyerID,
		Items: []commands.CheckoutItemRequest{
			{
				ItemID:    "cart-item-1",
				ProductID: b.ProductID,
				AssetID:   b.AssetID,
				Quantity:  b.Quantity,
			},
		},
	}
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CreateCheckoutRequest {
	return reqdto.CreateCheckoutRequest{
		BuyerID: b.BuyerID,
		Items: []reqdto.CheckoutItemRequest{
			{
				ID:        "cart-item-1",
				ProductID: b.ProductID.String(),
				AssetID:   b.AssetID.String(),
				Quantity:  b.Quantity,
			},
		},
	}
}

func (b *CheckoutBuilder) BuildSessionSnapshot(id uuid.UUID, status domcheckout.Status) *shared.CheckoutSessionSnapshot {
	items := []domcheckout.LineItem{b.BuildLineItem()}
	return &shared.CheckoutSessionSnapshot{
		ID:            id,
		Status:        status,
		BuyerID:       b.BuyerID,
		Items:         items,
		SubtotalCents: domcheckout.SumAmount(items, b.Currency).SubtotalCents,
		Currency:      b.Currency,
		CreatedAt:     b.CreatedAt,
	}
}
