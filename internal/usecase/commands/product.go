package commands

import (
	"context"
	"time"

	"merch-store/internal/domain/product"
	"merch-store/internal/infra"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrAssetNotFound   = errs.New("asset not found")
)

type ProductRequest struct {
	Name            string
	Description     string
	PriceCents      int64
	Active          *bool
	PreviewImageURL string
	DefaultAssetID  *uuid.UUID
}

type ProductCommands interface {
	CreateProduct(ctx context.Context, req ProductRequest) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req ProductRequest) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProductCommands(uow shared.UnitOfWork) ProductCommands {
	return &productCommandsImpl{uow: uow}
}

func (p *productCommandsImpl) CreateProduct(ctx context.Context, req ProductRequest) (uuid.UUID, error) {
	prod, err := product.NewProduct(req.Name, req.Description, req.PriceCents, req.PreviewImageURL, req.DefaultAssetID)
	if err != nil {
		return uuid.Nil, err
	}
	if req.Active != nil && !*req.Active {
		if err := prod.Update(req.Name, req.Description, req.PriceCents, false, req.PreviewImageURL, req.DefaultAssetID); err != nil {
			return uuid.Nil, err
		}
	}

	var createdID uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Products().Create(ctx, tx.DB(), prod)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrAssetNotFound)
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (p *productCommandsImpl) UpdateProduct(ctx context.Context, id uuid.UUID, req ProductRequest) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ProductByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrProductNotFound)
			}
			return derr
		}

		active := snap.Active
		if req.Active != nil {
			active = *req.Active
		}

		// Timestamps stay zero here: the repository never writes created_at
		// and bumps updated_at itself.
		prod := product.ReconstructProduct(
			snap.ID, snap.Name, "", snap.PriceCents, snap.Active, "", snap.DefaultAssetID,
			time.Time{}, time.Time{},
		)
		if derr := prod.Update(req.Name, req.Description, req.PriceCents, active, req.PreviewImageURL, req.DefaultAssetID); derr != nil {
			return derr
		}

		if derr := tx.Products().Update(ctx, tx.DB(), prod); derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrAssetNotFound)
			}
			return derr
		}
		return nil
	})
}

func (p *productCommandsImpl) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Products().Delete(ctx, tx.DB(), id)
		if derr != nil && infra.IsKind(derr, infra.KindNotFound) {
			return errs.Mark(derr, ErrProductNotFound)
		}
		return derr
	})
}
