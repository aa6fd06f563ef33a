package request

import "merch-store/internal/usecase/commands"

type CreateAssetRequest struct {
	Title string `json:"title" binding:"required"`
	Niche string `json:"niche"`
	Style string `json:"style"`
	Image string `json:"image" binding:"required"`
	RunID string `json:"runId"`
	RowID string `json:"rowId"`
}

func (r *CreateAssetRequest) ToCommand() commands.CreateAssetRequest {
	return commands.CreateAssetRequest{
		Title: r.Title,
		Niche: r.Niche,
		Style: r.Style,
		Image: r.Image,
		RunID: r.RunID,
		RowID: r.RowID,
	}
}

type PublishAssetRequest struct {
	Published bool `json:"published"`
}
