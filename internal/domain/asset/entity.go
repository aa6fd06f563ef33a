package asset

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrMissingImage = errors.New("asset requires an image URL")

type Source string

const (
	SourceMock     Source = "mock"
	SourcePipeline Source = "pipeline"
	SourceManual   Source = "manual"
)

// Asset is one generated design artifact. Immutable after creation except
// the publication flag.
type Asset struct {
	id          uuid.UUID
	title       string
	prompt      string
	niche       string
	style       string
	imageURL    string
	thumbURL    string
	storagePath string
	source      Source
	runID       string
	rowID       string
	jobID       *uuid.UUID
	published   bool
	createdAt   time.Time
	updatedAt   time.Time
}

type NewAssetParams struct {
	Title       string
	Prompt      string
	Niche       string
	Style       string
	ImageURL    string
	StoragePath string
	Source      Source
	RunID       string
	RowID       string
	JobID       *uuid.UUID
}

func NewAsset(p NewAssetParams) (*Asset, error) {
	if p.ImageURL == "" {
		return nil, ErrMissingImage
	}
	if p.Source == "" {
		p.Source = SourceManual
	}
	return &Asset{
		id:          uuid.New(),
		title:       p.Title,
		prompt:      p.Prompt,
		niche:       p.Niche,
		style:       p.Style,
		imageURL:    p.ImageURL,
		thumbURL:    p.ImageURL, // a real thumbnail can replace this later
		storagePath: p.StoragePath,
		source:      p.Source,
		runID:       p.RunID,
		rowID:       p.RowID,
		jobID:       p.JobID,
		published:   false,
	}, nil
}

func ReconstructAsset(
	id uuid.UUID,
	title, prompt, niche, style, imageURL, thumbURL, storagePath string,
	source Source,
	runID, rowID string,
	jobID *uuid.UUID,
	published bool,
	createdAt, updatedAt time.Time,
) *Asset {
	return &Asset{
		id:          id,
		title:       title,
		prompt:      prompt,
		niche:       niche,
		style:       style,
		imageURL:    imageURL,
		thumbURL:    thumbURL,
		storagePath: storagePath,
		source:      source,
		runID:       runID,
		rowID:       rowID,
		jobID:       jobID,
		published:   published,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (a *Asset) Publish()   { a.published = true }
func (a *Asset) Unpublish() { a.published = false }

func (a *Asset) ID() uuid.UUID        { return a.id }
func (a *Asset) Title() string        { return a.title }
func (a *Asset) Prompt() string       { return a.prompt }
func (a *Asset) Niche() string        { return a.niche }
func (a *Asset) Style() string        { return a.style }
func (a *Asset) ImageURL() string     { return a.imageURL }
func (a *Asset) ThumbURL() string     { return a.thumbURL }
func (a *Asset) StoragePath() string  { return a.storagePath }
func (a *Asset) Source() Source       { return a.source }
func (a *Asset) RunID() string        { return a.runID }
func (a *Asset) RowID() string        { return a.rowID }
func (a *Asset) JobID() *uuid.UUID    { return a.jobID }
func (a *Asset) Published() bool      { return a.published }
func (a *Asset) CreatedAt() time.Time { return a.createdAt }
func (a *Asset) UpdatedAt() time.Time { return a.updatedAt }
