package checkout

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidLineItem = errors.New("line item requires product and asset references")

// LineItem is one customized position in the cart. The id comes from the
// browser-local cart so replayed submissions stay correlatable.
type LineItem struct {
	ID              string    `json:"id"`
	ProductID       uuid.UUID `json:"productId"`
	AssetID         uuid.UUID `json:"assetId"`
	ProductName     string    `json:"productName"`
	AssetTitle      string    `json:"assetTitle"`
	Quantity        int32     `json:"quantity"`
	UnitAmountCents int64     `json:"unitAmountCents"`
	// Placement of the design on the product mockup.
	Scale      float64 `json:"scale,omitempty"`
	OffsetX    float64 `json:"offsetX,omitempty"`
	OffsetY    float64 `json:"offsetY,omitempty"`
	PreviewURL string  `json:"previewUrl,omitempty"`
}

type LineItemParams struct {
	ID              string
	ProductID       uuid.UUID
	AssetID         uuid.UUID
	ProductName     string
	AssetTitle      string
	Quantity        int
	UnitAmountCents int64
	Scale           float64
	OffsetX         float64
	OffsetY         float64
	PreviewURL      string
}

// NewLineItem normalizes a raw cart entry: quantity defaults to 1 when
// absent or invalid, names are trimmed.
func NewLineItem(p LineItemParams) (LineItem, error) {
	if p.ProductID == uuid.Nil || p.AssetID == uuid.Nil {
		return LineItem{}, ErrInvalidLineItem
	}
	if p.Quantity < 1 {
		p.Quantity = 1
	}
	return LineItem{
		ID:              p.ID,
		ProductID:       p.ProductID,
		AssetID:         p.AssetID,
		ProductName:     strings.TrimSpace(p.ProductName),
		AssetTitle:      strings.TrimSpace(p.AssetTitle),
		Quantity:        int32(p.Quantity),
		UnitAmountCents: p.UnitAmountCents,
		Scale:           p.Scale,
		OffsetX:         p.OffsetX,
		OffsetY:         p.OffsetY,
		PreviewURL:      p.PreviewURL,
	}, nil
}

func (li LineItem) SubtotalCents() int64 {
	return li.UnitAmountCents * int64(li.Quantity)
}

// DisplayName is the label shown on the hosted payment page.
func (li LineItem) DisplayName() string {
	if li.AssetTitle == "" {
		return li.ProductName
	}
	return li.ProductName + " - " + li.AssetTitle
}

type Amount struct {
	SubtotalCents int64  `json:"subtotalCents"`
	Currency      string `json:"currency"`
}

func SumAmount(items []LineItem, currency string) Amount {
	var total int64
	for _, li := range items {
		total += li.SubtotalCents()
	}
	return Amount{SubtotalCents: total, Currency: currency}
}
