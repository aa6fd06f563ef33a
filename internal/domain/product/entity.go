package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName   = errors.New("product name is required")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Product is a sellable blank (shirt, mug, ...) a design gets placed on.
// Single admin actor model; no concurrent-writer handling needed.
type Product struct {
	id              uuid.UUID
	name            string
	description     string
	priceCents      int64
	active          bool
	previewImageURL string
	defaultAssetID  *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewProduct(name, description string, priceCents int64, previewImageURL string, defaultAssetID *uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Product{
		id:              uuid.New(),
		name:            name,
		description:     strings.TrimSpace(description),
		priceCents:      priceCents,
		active:          true,
		previewImageURL: previewImageURL,
		defaultAssetID:  defaultAssetID,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name, description string,
	priceCents int64,
	active bool,
	previewImageURL string,
	defaultAssetID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:              id,
		name:            name,
		description:     description,
		priceCents:      priceCents,
		active:          active,
		previewImageURL: previewImageURL,
		defaultAssetID:  defaultAssetID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Product) Update(name, description string, priceCents int64, active bool, previewImageURL string, defaultAssetID *uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingName
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	p.name = name
	p.description = strings.TrimSpace(description)
	p.priceCents = priceCents
	p.active = active
	p.previewImageURL = previewImageURL
	p.defaultAssetID = defaultAssetID
	return nil
}

func (p *Product) ID() uuid.UUID              { return p.id }
func (p *Product) Name() string               { return p.name }
func (p *Product) Description() string        { return p.description }
func (p *Product) PriceCents() int64          { return p.priceCents }
func (p *Product) Active() bool               { return p.active }
func (p *Product) PreviewImageURL() string    { return p.previewImageURL }
func (p *Product) DefaultAssetID() *uuid.UUID { return p.defaultAssetID }
func (p *Product) CreatedAt() time.Time       { return p.createdAt }
func (p *Product) UpdatedAt() time.Time       { return p.updatedAt }
