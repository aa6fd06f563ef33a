package response

import (
	"merch-store/internal/usecase/commands"

	"github.com/google/uuid"
)

type GeneratedAssetResponse struct {
	AssetID  uuid.UUID `json:"assetId"`
	ImageURL string    `json:"imageUrl"`
}

type GenerateAssetResponse struct {
	OK        bool                     `json:"ok"`
	RequestID uuid.UUID                `json:"requestId"`
	RunID     string                   `json:"runId,omitempty"`
	RowID     string                   `json:"rowId,omitempty"`
	JobID     uuid.UUID                `json:"jobId"`
	Mock      bool                     `json:"mock,omitempty"`
	Count     int                      `json:"count"`
	Assets    []GeneratedAssetResponse `json:"assets"`
}

// GenerateErrorResponse keeps the correlation ids on failures so a run can
// be traced back to its persisted job row.
type GenerateErrorResponse struct {
	OK        bool       `json:"ok"`
	Error     string     `json:"error"`
	RequestID uuid.UUID  `json:"requestId"`
	RunID     string     `json:"runId,omitempty"`
	RowID     string     `json:"rowId,omitempty"`
	JobID     *uuid.UUID `json:"jobId,omitempty"`
}

func FromGenerateError(r *commands.GenerateResult, msg string) *GenerateErrorResponse {
	res := &GenerateErrorResponse{
		Error:     msg,
		RequestID: r.RequestID,
		RunID:     r.RunID,
		RowID:     r.RowID,
	}
	if r.JobID != uuid.Nil {
		jobID := r.JobID
		res.JobID = &jobID
	}
	return res
}

func FromGenerateResult(r *commands.GenerateResult) *GenerateAssetResponse {
	assets := make([]GeneratedAssetResponse, len(r.Assets))
	for i, a := range r.Assets {
		assets[i] = GeneratedAssetResponse{AssetID: a.AssetID, ImageURL: a.ImageURL}
	}
	return &GenerateAssetResponse{
		OK:        true,
		RequestID: r.RequestID,
		RunID:     r.RunID,
		RowID:     r.RowID,
		JobID:     r.JobID,
		Mock:      r.Mock,
		Count:     r.Count,
		Assets:    assets,
	}
}
