package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"merch-store/internal/domain/asset"
	"merch-store/internal/domain/job"
	"merch-store/internal/pkg/clock"
	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingPrompt     = errs.New("missing prompt")
	ErrDailyLimitReached = errs.New("daily limit reached")
	ErrNoImagesGenerated = errs.New("no images generated")
	ErrGenerationFailed  = errs.New("image generation failed")
)

const dailyLimitMessage = "Daily limit reached"

type GenerateRequest struct {
	RunID  string
	RowID  string
	Prompt string
	Title  string
	Niche  string
	Style  string
	Count  int
	Mock   bool
}

type GeneratedAsset struct {
	AssetID  uuid.UUID
	ImageURL string
}

type GenerateResult struct {
	RequestID uuid.UUID
	RunID     string
	RowID     string
	JobID     uuid.UUID
	Mock      bool
	Count     int
	Assets    []GeneratedAsset
}

type GenerateCommands interface {
	GenerateAssets(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

type generateUseCaseImpl struct {
	uow       shared.UnitOfWork
	generator ImageGenerator
	fetcher   ImageFetcher
	store     ObjectStore
	cfg       config.GenerationConfig
	baseURL   string
	clock     clock.Clock
	loc       *time.Location
}

func NewGenerateUseCase(
	uow shared.UnitOfWork,
	generator ImageGenerator,
	fetcher ImageFetcher,
	store ObjectStore,
	cfg config.Config,
	clk clock.Clock,
) GenerateCommands {
	loc, err := time.LoadLocation(cfg.Generation.DailyTZ)
	if err != nil {
		slog.Warn("invalid daily quota timezone, falling back to UTC", "tz", cfg.Generation.DailyTZ)
		loc = time.UTC
	}
	return &generateUseCaseImpl{
		uow:       uow,
		generator: generator,
		fetcher:   fetcher,
		store:     store,
		cfg:       cfg.Generation,
		baseURL:   cfg.Server.PublicBaseURL,
		clock:     clk,
		loc:       loc,
	}
}

func (g *generateUseCaseImpl) GenerateAssets(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	requestID := uuid.New()
	now := g.clock.Now()

	request, err := job.NewRequest(requestID, req.RunID, req.RowID, req.Prompt, req.Title, req.Niche, req.Style,
		req.Count, req.Mock || g.cfg.MockMode)
	if err != nil {
		// No job row yet, but the run still gets its ids echoed back.
		return &GenerateResult{RequestID: requestID, RunID: req.RunID, RowID: req.RowID},
			errs.Mark(err, ErrMissingPrompt)
	}

	jb := job.NewJob(request, now)

	result := &GenerateResult{
		RequestID: requestID,
		RunID:     request.RunID,
		RowID:     request.RowID,
		JobID:     jb.ID(),
		Mock:      request.Mock,
	}

	// The job row goes in first so a jobId exists even when everything
	// after this point fails.
	err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Jobs().Create(ctx, tx.DB(), jb)
		return derr
	})
	if err != nil {
		return result, err
	}

	slog.Info("asset generation started",
		"request_id", requestID, "run_id", request.RunID, "row_id", request.RowID,
		"job_id", jb.ID(), "count", request.Count, "mock", request.Mock)

	if request.Mock {
		return g.generateMock(ctx, jb, result)
	}

	if err := g.consumeQuota(ctx, jb, request.Count); err != nil {
		return result, err
	}

	images, err := g.generator.Generate(ctx, request.FinalPrompt(), request.Count)
	if err != nil {
		g.failJob(ctx, jb, err.Error())
		return result, errs.Mark(err, ErrGenerationFailed)
	}

	created := g.persistImages(ctx, jb, images)
	if len(created) == 0 {
		g.failJob(ctx, jb, "No images generated")
		return result, ErrNoImagesGenerated
	}

	if err := g.finishJob(ctx, jb, func(at time.Time) error {
		return jb.Complete(len(created), at)
	}); err != nil {
		return result, err
	}

	result.Count = len(created)
	result.Assets = created

	slog.Info("asset generation finished",
		"request_id", requestID, "job_id", jb.ID(), "generated", len(created),
		"duration_ms", jb.DurationMS(g.clock.Now()))
	return result, nil
}

// generateMock writes placeholder assets without touching the image API,
// object storage, or the daily quota.
func (g *generateUseCaseImpl) generateMock(ctx context.Context, jb *job.Job, result *GenerateResult) (*GenerateResult, error) {
	request := jb.Request()

	placeholderURL := g.cfg.MockImageURL
	if placeholderURL == "" {
		placeholderURL = g.baseURL + "/mock.png"
	}

	var created []GeneratedAsset
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = created[:0]
		for i := 0; i < request.Count; i++ {
			ast, derr := newPipelineAsset(request, jb.ID(), placeholderURL, "", asset.SourceMock)
			if derr != nil {
				return derr
			}
			id, derr := tx.Assets().Create(ctx, tx.DB(), ast)
			if derr != nil {
				return derr
			}
			created = append(created, GeneratedAsset{AssetID: id, ImageURL: placeholderURL})
		}

		if derr := jb.CompleteMock(len(created), g.clock.Now()); derr != nil {
			return derr
		}
		return tx.Jobs().Finish(ctx, tx.DB(), jb)
	})
	if err != nil {
		return result, err
	}

	result.Count = len(created)
	result.Assets = created

	slog.Info("asset generation finished in mock mode", "job_id", jb.ID(), "count", len(created))
	return result, nil
}

func (g *generateUseCaseImpl) consumeQuota(ctx context.Context, jb *job.Job, count int) error {
	day := clock.DayStart(g.clock.Now(), g.loc)

	var allowed bool
	var used int
	err := g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, ok, derr := tx.Quotas().TryConsume(ctx, tx.DB(), day, count, g.cfg.DailyCap)
		if derr != nil {
			return derr
		}
		used, allowed = u, ok
		return nil
	})
	if err != nil {
		return err
	}

	if !allowed {
		slog.Warn("daily generation cap reached",
			"job_id", jb.ID(), "requested", count, "cap", g.cfg.DailyCap, "day", day)
		g.failJob(ctx, jb, dailyLimitMessage)
		return ErrDailyLimitReached
	}

	slog.Info("generation quota consumed", "job_id", jb.ID(), "used", used, "cap", g.cfg.DailyCap)
	return nil
}

// persistImages uploads each produced image and records an asset row.
// A single bad image is skipped, not fatal; the job fails only when
// nothing at all could be stored.
func (g *generateUseCaseImpl) persistImages(ctx context.Context, jb *job.Job, images []GeneratedImage) []GeneratedAsset {
	request := jb.Request()
	var created []GeneratedAsset

	for i, img := range images {
		data := img.Bytes
		if len(data) == 0 && img.URL != "" {
			fetched, err := g.fetcher.FetchImage(ctx, img.URL)
			if err != nil {
				slog.Warn("skipping image that could not be fetched",
					"job_id", jb.ID(), "index", i, "url", img.URL, "error", err.Error())
				continue
			}
			data = fetched
		}
		if len(data) == 0 {
			continue
		}

		rowRef := request.RowID
		if rowRef == "" {
			rowRef = "row"
		}
		storagePath := fmt.Sprintf("assets/%s-%s-%d-%d.png",
			rowRef, request.RequestID, g.clock.Now().UnixMilli(), i+1)

		imageURL, err := g.store.UploadPNG(ctx, storagePath, data)
		if err != nil {
			slog.Warn("skipping image that could not be uploaded",
				"job_id", jb.ID(), "index", i, "error", err.Error())
			continue
		}

		var assetID uuid.UUID
		err = g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ast, derr := newPipelineAsset(request, jb.ID(), imageURL, storagePath, asset.SourcePipeline)
			if derr != nil {
				return derr
			}
			id, derr := tx.Assets().Create(ctx, tx.DB(), ast)
			if derr != nil {
				return derr
			}
			assetID = id
			return nil
		})
		if err != nil {
			slog.Warn("skipping image that could not be recorded",
				"job_id", jb.ID(), "index", i, "error", err.Error())
			continue
		}

		created = append(created, GeneratedAsset{AssetID: assetID, ImageURL: imageURL})
	}

	return created
}

func newPipelineAsset(request job.Request, jobID uuid.UUID, imageURL, storagePath string, source asset.Source) (*asset.Asset, error) {
	return asset.NewAsset(asset.NewAssetParams{
		Title:       request.Title,
		Prompt:      request.Prompt,
		Niche:       request.Niche,
		Style:       request.Style,
		ImageURL:    imageURL,
		StoragePath: storagePath,
		Source:      source,
		RunID:       request.RunID,
		RowID:       request.RowID,
		JobID:       &jobID,
	})
}

func (g *generateUseCaseImpl) finishJob(ctx context.Context, jb *job.Job, mark func(at time.Time) error) error {
	if err := mark(g.clock.Now()); err != nil {
		return err
	}
	return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().Finish(ctx, tx.DB(), jb)
	})
}

// failJob marks the job terminal with an error message. Best effort: the
// caller's error matters more than this bookkeeping write.
func (g *generateUseCaseImpl) failJob(ctx context.Context, jb *job.Job, msg string) {
	err := g.finishJob(ctx, jb, func(at time.Time) error {
		return jb.Fail(msg, at)
	})
	if err != nil {
		slog.Error("failed to record job error state", "job_id", jb.ID(), "error", err.Error())
	}
}
