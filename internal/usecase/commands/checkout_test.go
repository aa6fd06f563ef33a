//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"merch-store/internal/domain/checkout"
	"merch-store/internal/infra"
	"merch-store/internal/pkg/config"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/shared"
	"merch-store/tests/common/builder"
	portsmock "merch-store/tests/mock/ports"
	sharedmock "merch-store/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutUseCaseTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	sessions *sharedmock.MockCheckoutSessionRepository
	gateway  *portsmock.MockPaymentGateway
	uc       commands.CheckoutCommands
}

func (s *CheckoutUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.sessions = sharedmock.NewMockCheckoutSessionRepository(s.ctrl)
	s.gateway = portsmock.NewMockPaymentGateway(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().CheckoutSessions().Return(s.sessions).AnyTimes()

	s.uc = commands.NewCheckoutUseCase(s.uow, s.gateway, config.NewTestConfig())
}

func (s *CheckoutUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckoutUseCaseTestSuite))
}

func (s *CheckoutUseCaseTestSuite) expectValidCatalog(b *builder.CheckoutBuilder) {
	s.reads.EXPECT().ProductByID(gomock.Any(), b.ProductID).
		Return(builder.NewProductBuilder().WithID(b.ProductID).BuildSnapshot(), nil)
	s.reads.EXPECT().AssetByID(gomock.Any(), b.AssetID).
		Return(builder.NewAssetBuilder().WithID(b.AssetID).BuildSnapshot(), nil)
}

func (s *CheckoutUseCaseTestSuite) TestEmptyCart() {
	result, err := s.uc.CreateCheckout(context.Background(), commands.CreateCheckoutRequest{BuyerID: "b"})
	s.Nil(result)
	s.ErrorIs(err, commands.ErrEmptyCart)
}

func (s *CheckoutUseCaseTestSuite) TestSuccess() {
	b := builder.NewCheckoutBuilder()
	s.expectValidCatalog(b)

	s.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, sess *checkout.Session) (uuid.UUID, error) {
			s.Equal(checkout.StatusCreated, sess.Status(), "row exists before Stripe is called")
			// Priced server-side with the configured flat unit amount.
			s.Equal(int64(5000), sess.Amount().SubtotalCents)
			return sess.ID(), nil
		})
	s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSessionResult, error) {
			s.Len(p.Items, 1)
			s.Equal("usd", p.Currency)
			return &commands.CheckoutSessionResult{
				URL:             "https://checkout.stripe.com/pay/cs_test_123",
				StripeSessionID: "cs_test_123",
			}, nil
		})
	s.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, sess *checkout.Session) error {
			s.Equal(checkout.StatusStripeCreated, sess.Status())
			s.Equal("cs_test_123", sess.StripeSessionID())
			return nil
		})

	result, err := s.uc.CreateCheckout(context.Background(), b.BuildCommand())
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, result.CheckoutID)
	s.Equal("https://checkout.stripe.com/pay/cs_test_123", result.URL)
}

func (s *CheckoutUseCaseTestSuite) TestUnknownProduct() {
	b := builder.NewCheckoutBuilder()
	s.reads.EXPECT().ProductByID(gomock.Any(), b.ProductID).
		Return(nil, infra.WrapRepoErr("product not found", pgx.ErrNoRows, infra.KindNotFound))

	result, err := s.uc.CreateCheckout(context.Background(), b.BuildCommand())
	s.Nil(result)
	s.ErrorIs(err, commands.ErrProductNotFound)
}

func (s *CheckoutUseCaseTestSuite) TestInactiveProduct() {
	b := builder.NewCheckoutBuilder()
	s.reads.EXPECT().ProductByID(gomock.Any(), b.ProductID).
		Return(builder.NewProductBuilder().WithID(b.ProductID).AsInactive().BuildSnapshot(), nil)

	result, err := s.uc.CreateCheckout(context.Background(), b.BuildCommand())
	s.Nil(result)
	s.ErrorIs(err, commands.ErrProductUnavailable)
}

func (s *CheckoutUseCaseTestSuite) TestUnpublishedAsset() {
	b := builder.NewCheckoutBuilder()
	s.reads.EXPECT().ProductByID(gomock.Any(), b.ProductID).
		Return(builder.NewProductBuilder().WithID(b.ProductID).BuildSnapshot(), nil)
	s.reads.EXPECT().AssetByID(gomock.Any(), b.AssetID).
		Return(builder.NewAssetBuilder().WithID(b.AssetID).AsUnpublished().BuildSnapshot(), nil)

	result, err := s.uc.CreateCheckout(context.Background(), b.BuildCommand())
	s.Nil(result)
	s.ErrorIs(err, commands.ErrAssetUnavailable)
}

func (s *CheckoutUseCaseTestSuite) TestGatewayFailureMarksSessionError() {
	b := builder.NewCheckoutBuilder()
	s.expectValidCatalog(b)

	s.sessions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("stripe unreachable"))
	s.sessions.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, sess *checkout.Session) error {
			s.Equal(checkout.StatusError, sess.Status())
			s.Equal("stripe unreachable", sess.ErrorMessage())
			return nil
		})

	result, err := s.uc.CreateCheckout(context.Background(), b.BuildCommand())
	s.Nil(result)
	s.ErrorIs(err, commands.ErrCheckoutSessionFailed)
}
