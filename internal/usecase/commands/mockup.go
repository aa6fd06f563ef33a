package commands

import (
	"context"
	"fmt"

	"merch-store/internal/infra"
	"merch-store/internal/pkg/clock"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type SaveMockupRequest struct {
	ProductID uuid.UUID
	AssetID   uuid.UUID
	DataURL   string
	Scale     float64
	OffsetX   float64
	OffsetY   float64
}

type SaveMockupResult struct {
	MockupID uuid.UUID
	ImageURL string
}

type MockupCommands interface {
	SaveMockup(ctx context.Context, req SaveMockupRequest) (*SaveMockupResult, error)
}

type mockupUseCaseImpl struct {
	uow   shared.UnitOfWork
	store ObjectStore
	clock clock.Clock
}

func NewMockupUseCase(uow shared.UnitOfWork, store ObjectStore, clk clock.Clock) MockupCommands {
	return &mockupUseCaseImpl{uow: uow, store: store, clock: clk}
}

func (m *mockupUseCaseImpl) SaveMockup(ctx context.Context, req SaveMockupRequest) (*SaveMockupResult, error) {
	reads := m.uow.CommandReads()
	if _, err := reads.ProductByID(ctx, req.ProductID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, err
	}
	if _, err := reads.AssetByID(ctx, req.AssetID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAssetNotFound)
		}
		return nil, err
	}

	_, data, err := DecodeDataURL(req.DataURL)
	if err != nil {
		return nil, err
	}

	storagePath := fmt.Sprintf("mockups/%d-%s.png", m.clock.Now().UnixMilli(), uuid.NewString())
	imageURL, err := m.store.UploadPNG(ctx, storagePath, data)
	if err != nil {
		return nil, errs.Wrap(err, "failed to upload mockup image")
	}

	mockup := &shared.Mockup{
		ID:        uuid.New(),
		ProductID: req.ProductID,
		AssetID:   req.AssetID,
		ImageURL:  imageURL,
		Scale:     req.Scale,
		OffsetX:   req.OffsetX,
		OffsetY:   req.OffsetY,
	}

	var createdID uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Mockups().Create(ctx, tx.DB(), mockup)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SaveMockupResult{MockupID: createdID, ImageURL: imageURL}, nil
}
