//go:build unit || e2e

package builder

import (
	"time"

	domproduct "merch-store/internal/domain/product"
	reqdto "merch-store/internal/handler/dto/request"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     string
	PriceCents      int64
	Active          bool
	PreviewImageURL string
	DefaultAssetID  *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewProductBuilder() *ProductBuilder {
	now := time.Now()
	return &ProductBuilder{
		ID:              uuid.New(),
		Name:            "Classic Tee",
		Description:     "Soft cotton crewneck",
		PriceCents:      2500,
		Active:          true,
		PreviewImageURL: "https://cdn.example.com/tee.png",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(b.Name, b.Description, b.PriceCents, b.PreviewImageURL, b.DefaultAssetID)
}

func (b *ProductBuilder) BuildRequestDTO() reqdto.ProductRequest {
	active := b.Active
	return reqdto.ProductRequest{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		Active:          &active,
		PreviewImageURL: b.PreviewImageURL,
	}
}

func (b *ProductBuilder) BuildCommand() commands.ProductRequest {
	active := b.Active
	return commands.ProductRequest{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		Active:          &active,
		PreviewImageURL: b.PreviewImageURL,
		DefaultAssetID:  b.DefaultAssetID,
	}
}

func (b *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:              b.ID,
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		Active:          b.Active,
		PreviewImageURL: b.PreviewImageURL,
		DefaultAssetID:  b.DefaultAssetID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:             b.ID,
		Name:           b.Name,
		PriceCents:     b.PriceCents,
		Active:         b.Active,
		DefaultAssetID: b.DefaultAssetID,
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithID(id uuid.UUID) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPriceCents(price int64) *ProductBuilder {
	b.PriceCents = price
	return b
}

func (b *ProductBuilder) AsInactive() *ProductBuilder {
	b.Active = false
	return b
}
