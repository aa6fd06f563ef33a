package response

import (
	"log/slog"
	"time"

	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	PriceCents           int64      `json:"priceCents"`
	Active               bool       `json:"active"`
	PreviewImageURL      string     `json:"previewImageUrl,omitempty"`
	DefaultAssetID       *uuid.UUID `json:"defaultAssetId,omitempty"`
	DefaultAssetImageURL *string    `json:"defaultAssetImageUrl,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	var res ProductResponse
	// Field names match the view exactly, only the JSON casing differs.
	if err := copier.Copy(&res, v); err != nil {
		slog.Error("failed to map product view", "product_id", v.ID, "error", err)
	}
	return &res
}

func FromProductList(items []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(items))
	for i, it := range items {
		res[i] = FromProductView(it)
	}
	return res
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
