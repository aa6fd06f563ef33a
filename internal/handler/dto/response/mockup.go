package response

import (
	"log/slog"
	"time"

	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MockupSavedResponse struct {
	ID       uuid.UUID `json:"id"`
	ImageURL string    `json:"imageUrl"`
}

func FromMockupSaved(r *commands.SaveMockupResult) *MockupSavedResponse {
	return &MockupSavedResponse{ID: r.MockupID, ImageURL: r.ImageURL}
}

type MockupResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	AssetID     uuid.UUID `json:"assetId"`
	ImageURL    string    `json:"imageUrl"`
	Scale       float64   `json:"scale"`
	OffsetX     float64   `json:"offsetX"`
	OffsetY     float64   `json:"offsetY"`
	CreatedAt   time.Time `json:"createdAt"`
	ProductName string    `json:"productName"`
	AssetTitle  string    `json:"assetTitle"`
}

func FromMockupView(v *queries.MockupView) *MockupResponse {
	var m MockupResponse
	if err := copier.Copy(&m, v); err != nil {
		slog.Error("failed to map mockup view", "mockup_id", v.ID, "error", err)
	}
	return &m
}

func FromMockupList(items []*queries.MockupView) []*MockupResponse {
	res := make([]*MockupResponse, len(items))
	for i, it := range items {
		res[i] = FromMockupView(it)
	}
	return res
}
