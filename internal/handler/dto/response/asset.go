package response

import (
	"log/slog"
	"time"

	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AssetResponse struct {
	ID        uuid.UUID  `json:"id"`
	JobID     *uuid.UUID `json:"jobId,omitempty"`
	Title     string     `json:"title"`
	Niche     string     `json:"niche,omitempty"`
	Style     string     `json:"style,omitempty"`
	Prompt    string     `json:"prompt,omitempty"`
	ImageURL  string     `json:"imageUrl"`
	ThumbURL  string     `json:"thumbUrl,omitempty"`
	Source    string     `json:"source"`
	RunID     string     `json:"runId,omitempty"`
	RowID     string     `json:"rowId,omitempty"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromAssetView(v *queries.AssetView) *AssetResponse {
	var res AssetResponse
	if err := copier.Copy(&res, v); err != nil {
		slog.Error("failed to map asset view", "asset_id", v.ID, "error", err)
	}
	return &res
}

func FromAssetList(items []*queries.AssetView) []*AssetResponse {
	res := make([]*AssetResponse, len(items))
	for i, it := range items {
		res[i] = FromAssetView(it)
	}
	return res
}

type AssetCreatedResponse struct {
	AssetID  uuid.UUID `json:"assetId"`
	ImageURL string    `json:"imageUrl"`
}

func FromAssetCreated(r *commands.CreateAssetResult) *AssetCreatedResponse {
	return &AssetCreatedResponse{AssetID: r.AssetID, ImageURL: r.ImageURL}
}
