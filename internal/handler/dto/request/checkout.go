package request

import (
	"merch-store/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutItemRequest struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"productId" binding:"required,uuid"`
	AssetID    string  `json:"assetId" binding:"required,uuid"`
	Quantity   int     `json:"quantity"`
	Scale      float64 `json:"scale"`
	OffsetX    float64 `json:"offsetX"`
	OffsetY    float64 `json:"offsetY"`
	PreviewURL string  `json:"previewUrl"`
}

type CreateCheckoutRequest struct {
	BuyerID string                `json:"buyerId"`
	Items   []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *CreateCheckoutRequest) ToCommand() (commands.CreateCheckoutRequest, error) {
	cmd := commands.CreateCheckoutRequest{
		BuyerID: r.BuyerID,
		Items:   make([]commands.CheckoutItemRequest, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			return commands.CreateCheckoutRequest{}, err
		}
		assetID, err := uuid.Parse(it.AssetID)
		if err != nil {
			return commands.CreateCheckoutRequest{}, err
		}
		cmd.Items = append(cmd.Items, commands.CheckoutItemRequest{
			ItemID:     it.ID,
			ProductID:  productID,
			AssetID:    assetID,
			Quantity:   it.Quantity,
			Scale:      it.Scale,
			OffsetX:    it.OffsetX,
			OffsetY:    it.OffsetY,
			PreviewURL: it.PreviewURL,
		})
	}
	return cmd, nil
}
