package commands

import (
	"context"
	"fmt"

	"merch-store/internal/domain/asset"
	"merch-store/internal/infra"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAssetInUse = errs.New("asset is referenced by a product")

// CreateAssetRequest registers a design that was produced outside the
// generation pipeline. Image accepts either an http(s) URL or an inline
// data URL, which gets uploaded to object storage first.
type CreateAssetRequest struct {
	Title string
	Niche string
	Style string
	Image string
	RunID string
	RowID string
}

type CreateAssetResult struct {
	AssetID  uuid.UUID
	ImageURL string
}

type AssetCommands interface {
	CreateAsset(ctx context.Context, req CreateAssetRequest) (*CreateAssetResult, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) error
	DeleteAsset(ctx context.Context, id uuid.UUID) error
}

type assetCommandsImpl struct {
	uow   shared.UnitOfWork
	store ObjectStore
}

func NewAssetCommands(uow shared.UnitOfWork, store ObjectStore) AssetCommands {
	return &assetCommandsImpl{uow: uow, store: store}
}

func (a *assetCommandsImpl) CreateAsset(ctx context.Context, req CreateAssetRequest) (*CreateAssetResult, error) {
	imageURL := req.Image
	storagePath := ""

	if IsDataURL(req.Image) {
		_, data, err := DecodeDataURL(req.Image)
		if err != nil {
			return nil, err
		}
		storagePath = fmt.Sprintf("assets/manual/%s.png", uuid.NewString())
		imageURL, err = a.store.UploadPNG(ctx, storagePath, data)
		if err != nil {
			return nil, errs.Wrap(err, "failed to upload asset image")
		}
	}

	ast, err := asset.NewAsset(asset.NewAssetParams{
		Title:       req.Title,
		Niche:       req.Niche,
		Style:       req.Style,
		ImageURL:    imageURL,
		StoragePath: storagePath,
		Source:      asset.SourceManual,
		RunID:       req.RunID,
		RowID:       req.RowID,
	})
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Assets().Create(ctx, tx.DB(), ast)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateAssetResult{AssetID: createdID, ImageURL: imageURL}, nil
}

func (a *assetCommandsImpl) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Assets().SetPublished(ctx, tx.DB(), id, published)
		if derr != nil && infra.IsKind(derr, infra.KindNotFound) {
			return errs.Mark(derr, ErrAssetNotFound)
		}
		return derr
	})
}

func (a *assetCommandsImpl) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Assets().Delete(ctx, tx.DB(), id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrAssetNotFound)
			}
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return errs.Mark(derr, ErrAssetInUse)
			}
		}
		return derr
	})
}
