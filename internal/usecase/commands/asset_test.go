//go:build unit

package commands_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"merch-store/internal/domain/asset"
	"merch-store/internal/infra"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/shared"
	portsmock "merch-store/tests/mock/ports"
	sharedmock "merch-store/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssetUseCaseTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	assets *sharedmock.MockAssetRepository
	store  *portsmock.MockObjectStore
	uc     commands.AssetCommands
}

func (s *AssetUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.assets = sharedmock.NewMockAssetRepository(s.ctrl)
	s.store = portsmock.NewMockObjectStore(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Assets().Return(s.assets).AnyTimes()

	s.uc = commands.NewAssetCommands(s.uow, s.store)
}

func (s *AssetUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAssetUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AssetUseCaseTestSuite))
}

func (s *AssetUseCaseTestSuite) TestCreateFromURL() {
	s.assets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, ast *asset.Asset) (uuid.UUID, error) {
			s.Equal("Retro sunset", ast.Title())
			s.Equal("https://cdn.example.com/sunset.png", ast.ImageURL())
			s.Equal(asset.SourceManual, ast.Source())
			s.Empty(ast.StoragePath(), "URL images are not re-uploaded")
			s.False(ast.Published())
			return ast.ID(), nil
		})

	result, err := s.uc.CreateAsset(context.Background(), commands.CreateAssetRequest{
		Title: "Retro sunset",
		Image: "https://cdn.example.com/sunset.png",
	})
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, result.AssetID)
	s.Equal("https://cdn.example.com/sunset.png", result.ImageURL)
}

func (s *AssetUseCaseTestSuite) TestCreateFromDataURL() {
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	s.store.EXPECT().UploadPNG(gomock.Any(), gomock.Any(), raw).
		DoAndReturn(func(_ context.Context, path string, _ []byte) (string, error) {
			s.Contains(path, "assets/manual/")
			return "https://storage.googleapis.com/bucket/" + path, nil
		})
	s.assets.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, ast *asset.Asset) (uuid.UUID, error) {
			s.Contains(ast.ImageURL(), "https://storage.googleapis.com/bucket/assets/manual/")
			s.NotEmpty(ast.StoragePath())
			return ast.ID(), nil
		})

	result, err := s.uc.CreateAsset(context.Background(), commands.CreateAssetRequest{
		Title: "Uploaded art",
		Image: dataURL,
	})
	s.Require().NoError(err)
	s.Contains(result.ImageURL, "https://storage.googleapis.com/bucket/")
}

func (s *AssetUseCaseTestSuite) TestCreateRejectsBadDataURL() {
	result, err := s.uc.CreateAsset(context.Background(), commands.CreateAssetRequest{
		Title: "Broken",
		Image: "data:image/png;base64,%%%",
	})
	s.Nil(result)
	s.ErrorIs(err, commands.ErrInvalidDataURL)
}

func (s *AssetUseCaseTestSuite) TestCreateRequiresImage() {
	result, err := s.uc.CreateAsset(context.Background(), commands.CreateAssetRequest{Title: "No image"})
	s.Nil(result)
	s.ErrorIs(err, asset.ErrMissingImage)
}

func (s *AssetUseCaseTestSuite) TestUploadFailure() {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png"))

	s.store.EXPECT().UploadPNG(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket unavailable"))

	result, err := s.uc.CreateAsset(context.Background(), commands.CreateAssetRequest{
		Title: "Doomed",
		Image: dataURL,
	})
	s.Nil(result)
	s.Error(err)
}

func (s *AssetUseCaseTestSuite) TestSetPublished() {
	id := uuid.New()

	s.Run("marks the asset published", func() {
		s.assets.EXPECT().SetPublished(gomock.Any(), gomock.Any(), id, true).Return(nil)
		s.NoError(s.uc.SetPublished(context.Background(), id, true))
	})

	s.Run("unknown asset maps to not found", func() {
		s.assets.EXPECT().SetPublished(gomock.Any(), gomock.Any(), id, true).
			Return(infra.WrapRepoErr("asset not found", pgx.ErrNoRows, infra.KindNotFound))
		err := s.uc.SetPublished(context.Background(), id, true)
		s.ErrorIs(err, commands.ErrAssetNotFound)
	})
}

func (s *AssetUseCaseTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("deletes an unreferenced asset", func() {
		s.assets.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)
		s.NoError(s.uc.DeleteAsset(context.Background(), id))
	})

	s.Run("referenced asset maps to in-use", func() {
		s.assets.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(infra.WrapRepoErr("asset is referenced by a product", errors.New("fk violation"), infra.KindForeignKeyViolated))
		err := s.uc.DeleteAsset(context.Background(), id)
		s.ErrorIs(err, commands.ErrAssetInUse)
	})
}
