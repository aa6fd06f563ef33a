package request

import (
	"merch-store/internal/usecase/commands"

	"github.com/google/uuid"
)

type SaveMockupRequest struct {
	ProductID string  `json:"productId" binding:"required,uuid"`
	AssetID   string  `json:"assetId" binding:"required,uuid"`
	DataURL   string  `json:"dataUrl" binding:"required"`
	Scale     float64 `json:"scale"`
	OffsetX   float64 `json:"offsetX"`
	OffsetY   float64 `json:"offsetY"`
}

func (r *SaveMockupRequest) ToCommand() (commands.SaveMockupRequest, error) {
	productID, err := uuid.Parse(r.ProductID)
	if err != nil {
		return commands.SaveMockupRequest{}, err
	}
	assetID, err := uuid.Parse(r.AssetID)
	if err != nil {
		return commands.SaveMockupRequest{}, err
	}
	return commands.SaveMockupRequest{
		ProductID: productID,
		AssetID:   assetID,
		DataURL:   r.DataURL,
		Scale:     r.Scale,
		OffsetX:   r.OffsetX,
		OffsetY:   r.OffsetY,
	}, nil
}
