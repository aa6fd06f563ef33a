package request

import (
	"fmt"
	"strconv"
	"strings"

	"merch-store/internal/pkg/boolflag"
	"merch-store/internal/usecase/commands"
)

// GenerateAssetRequest mirrors what automation pipelines send. The pipeline
// side templates values from spreadsheets, so count, mock, and rowId arrive
// as booleans, numbers, or strings depending on the run configuration.
type GenerateAssetRequest struct {
	RunID  string `json:"runId"`
	RowID  any    `json:"rowId"`
	ID     any    `json:"id"`
	Prompt string `json:"prompt"`
	Title  string `json:"title"`
	Niche  string `json:"niche"`
	Style  string `json:"style"`
	Count  any    `json:"count"`
	Mock   any    `json:"mock"`
}

func (r *GenerateAssetRequest) ToCommand() commands.GenerateRequest {
	rowID := flexString(r.RowID)
	if rowID == "" {
		rowID = flexString(r.ID)
	}
	return commands.GenerateRequest{
		RunID:  strings.TrimSpace(r.RunID),
		RowID:  rowID,
		Prompt: r.Prompt,
		Title:  r.Title,
		Niche:  r.Niche,
		Style:  r.Style,
		Count:  flexInt(r.Count, 1),
		Mock:   boolflag.Parse(r.Mock),
	}
}

func flexString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	}
}

func flexInt(v any, fallback int) int {
	switch x := v.(type) {
	case float64:
		return int(x)
	case int:
		return x
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return fallback
		}
		return n
	default:
		return fallback
	}
}
