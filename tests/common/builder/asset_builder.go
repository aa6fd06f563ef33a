//go:build unit || e2e

package builder

import (
	"time"

	domasset "merch-store/internal/domain/asset"
	"merch-store/internal/usecase/queries"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssetBuilder struct {
	ID        uuid.UUID
	Title     string
	Prompt    string
	Niche     string
	Style     string
	ImageURL  string
	Source    domasset.Source
	RunID     string
	RowID     string
	JobID     *uuid.UUID
	Published bool
	CreatedAt time.Time
}

func NewAssetBuilder() *AssetBuilder {
	return &AssetBuilder{
		ID:        uuid.New(),
		Title:     "Retro sunset",
		Prompt:    "retro sunset over mountains, grainy print",
		Niche:     "outdoors",
		Style:     "vintage",
		ImageURL:  "https://storage.example.com/assets/retro.png",
		Source:    domasset.SourcePipeline,
		RunID:     "run-42",
		RowID:     "7",
		Published: true,
		CreatedAt: time.Now(),
	}
}

func (b *AssetBuilder) With(mutate func(*AssetBuilder)) *AssetBuilder {
	mutate(b)
	return b
}

func (b *AssetBuilder) BuildDomain() (*domasset.Asset, error) {
	return domasset.NewAsset(domasset.NewAssetParams{
		Title:    b.Title,
		Prompt:   b.Prompt,
		Niche:    b.Niche,
		Style:    b.Style,
		ImageURL: b.ImageURL,
		Source:   b.Source,
		RunID:    b.RunID,
		RowID:    b.RowID,
		JobID:    b.JobID,
	})
}

func (b *AssetBuilder) BuildView() *queries.AssetView {
	return &queries.AssetView{
		ID:        b.ID,
		JobID:     b.JobID,
		Title:     b.Title,
		Niche:     b.Niche,
		Style:     b.Style,
		Prompt:    b.Prompt,
		ImageURL:  b.ImageURL,
		ThumbURL:  b.ImageURL,
		Source:    string(b.Source),
		RunID:     b.RunID,
		RowID:     b.RowID,
		Published: b.Published,
		CreatedAt: b.CreatedAt,
	}
}

func (b *AssetBuilder) BuildSnapshot() *shared.AssetSnapshot {
	return &shared.AssetSnapshot{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		Published: b.Published,
	}
}

// Fluent builder methods
func (b *AssetBuilder) WithID(id uuid.UUID) *AssetBuilder {
	b.ID = id
	return b
}

func (b *AssetBuilder) WithImageURL(url string) *AssetBuilder {
	b.ImageURL = url
	return b
}

func (b *AssetBuilder) AsUnpublished() *AssetBuilder {
	b.Published = false
	return b
}
