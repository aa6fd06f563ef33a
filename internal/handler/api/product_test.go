//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"merch-store/internal/domain/product"
	"merch-store/internal/handler/api"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/infra"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"
	"merch-store/tests/common/builder"
	"merch-store/tests/common/httptest"
	"merch-store/tests/common/testutil"
	commandsmock "merch-store/tests/mock/commands"
	queriesmock "merch-store/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProductCommands
	mockQueries  *queriesmock.MockProductQueries
	mockMockups  *queriesmock.MockMockupQueries
	handler      *api.ProductHandler
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProductCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.mockMockups = queriesmock.NewMockMockupQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockCommands, s.mockQueries, s.mockMockups)

	s.router.GET("/products", s.handler.List)
	s.router.GET("/products/:id", s.handler.Get)
	s.router.GET("/products/:id/mockups", s.handler.ListMockups)
	s.router.GET("/admin/products", s.handler.AdminList)
	s.router.POST("/admin/products", s.handler.Create)
	s.router.PUT("/admin/products/:id", s.handler.Update)
	s.router.DELETE("/admin/products/:id", s.handler.Delete)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func (s *ProductHandlerTestSuite) TestList() {
	s.Run("success: public listing excludes inactive products", func() {
		view := builder.NewProductBuilder().BuildView()
		s.mockQueries.EXPECT().List(gomock.Any(), false).
			Return([]*queries.ProductView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products", nil, "")

		var response []*resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.ID, response[0].ID)
		s.Equal(view.Name, response[0].Name)
		s.Equal(view.PriceCents, response[0].PriceCents)
	})

	s.Run("success: admin listing includes inactive by default", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), true).
			Return([]*queries.ProductView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/products", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: admin listing honors includeInactive=false", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), false).
			Return([]*queries.ProductView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/products?includeInactive=false", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *ProductHandlerTestSuite) TestGet() {
	view := builder.NewProductBuilder().BuildView()

	s.Run("success: returns 200 with product", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+view.ID.String(), nil, "")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 for unknown product", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, notFoundErr("product not found")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ProductHandlerTestSuite) TestCreate() {
	url := "/admin/products"
	b := builder.NewProductBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 201 with the created product", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd commands.ProductRequest) (uuid.UUID, error) {
				s.Equal(b.Name, cmd.Name)
				s.Equal(b.PriceCents, cmd.PriceCents)
				return b.ID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "negative price", mutate: testutil.Field("priceCents", -1)},
			{name: "malformed default asset id", mutate: testutil.Field("defaultAssetId", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown default asset",
				commandsError:  commands.ErrAssetNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Default asset not found",
			},
			{
				name:           "domain validation rejected",
				commandsError:  product.ErrMissingName,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Validation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ProductHandlerTestSuite) TestUpdate() {
	b := builder.NewProductBuilder()
	url := "/admin/products/" + b.ID.String()
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 200 with the updated product", func() {
		s.mockCommands.EXPECT().UpdateProduct(gomock.Any(), b.ID, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")

		var response resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID, response.ID)
	})

	s.Run("error: 404 for unknown product", func() {
		s.mockCommands.EXPECT().UpdateProduct(gomock.Any(), b.ID, gomock.Any()).
			Return(commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}

func (s *ProductHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/admin/products/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteProduct(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for unknown product", func() {
		s.mockCommands.EXPECT().DeleteProduct(gomock.Any(), id).
			Return(commands.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})
}
