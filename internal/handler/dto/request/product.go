package request

import (
	"merch-store/internal/usecase/commands"

	"github.com/google/uuid"
)

type ProductRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	PriceCents      int64   `json:"priceCents" binding:"gte=0"`
	Active          *bool   `json:"active"`
	PreviewImageURL string  `json:"previewImageUrl"`
	DefaultAssetID  *string `json:"defaultAssetId"`
}

func (r *ProductRequest) ToCommand() (commands.ProductRequest, error) {
	cmd := commands.ProductRequest{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		Active:          r.Active,
		PreviewImageURL: r.PreviewImageURL,
	}
	if r.DefaultAssetID != nil && *r.DefaultAssetID != "" {
		id, err := uuid.Parse(*r.DefaultAssetID)
		if err != nil {
			return commands.ProductRequest{}, err
		}
		cmd.DefaultAssetID = &id
	}
	return cmd, nil
}
