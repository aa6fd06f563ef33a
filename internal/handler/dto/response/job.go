package response

import (
	"log/slog"
	"time"

	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type JobResponse struct {
	ID             uuid.UUID  `json:"id"`
	RequestID      uuid.UUID  `json:"requestId"`
	RunID          string     `json:"runId,omitempty"`
	RowID          string     `json:"rowId,omitempty"`
	Prompt         string     `json:"prompt"`
	Title          string     `json:"title,omitempty"`
	Niche          string     `json:"niche,omitempty"`
	Style          string     `json:"style,omitempty"`
	Count          int        `json:"count"`
	Mock           bool       `json:"mock"`
	Status         string     `json:"status"`
	GeneratedCount int        `json:"generatedCount"`
	ErrorMessage   string     `json:"errorMessage,omitempty"`
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func FromJobView(v *queries.JobView) *JobResponse {
	var res JobResponse
	if err := copier.Copy(&res, v); err != nil {
		slog.Error("failed to map job view", "job_id", v.ID, "error", err)
	}
	return &res
}

func FromJobList(items []*queries.JobView) []*JobResponse {
	res := make([]*JobResponse, len(items))
	for i, it := range items {
		res[i] = FromJobView(it)
	}
	return res
}
