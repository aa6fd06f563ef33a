//go:build e2e

package store_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	reqdto "merch-store/internal/handler/dto/request"
	"merch-store/internal/handler/dto/response"
	"merch-store/internal/pkg/config"
	"merch-store/tests/common/authtest"
	"merch-store/tests/common/builder"
	"merch-store/tests/common/dbtest"
	"merch-store/tests/common/httptest"
	"merch-store/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	productsURL      = "/api/products"
	adminProductsURL = "/api/admin/products"
	assetsURL        = "/api/assets"
	adminAssetsURL   = "/api/admin/assets"
	generateURL      = "/api/assets/generate"
	mockupsURL       = "/api/mockups"
)

type StoreSuite struct {
	e2e.SharedSuite
}

func (s *StoreSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) login() string {
	return authtest.LoginAdmin(s.T(), s.Router, s.Config.Admin.Email, config.TestAdminPassword)
}

// =============================================================================
// TestProductCRUD - Admin catalog management
// =============================================================================

func (s *StoreSuite) TestProductCRUD() {
	s.Run("Normal case: admin can create, update, and delete a product", func() {
		t := s.T()
		token := s.login()

		reqBody := builder.NewProductBuilder().BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "Should create product: %s", w.Body.String())

		var created response.ProductResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &created)
		require.NotEmpty(t, created.ID)

		expected := &response.ProductResponse{
			Name:            reqBody.Name,
			Description:     reqBody.Description,
			PriceCents:      reqBody.PriceCents,
			Active:          true,
			PreviewImageURL: reqBody.PreviewImageURL,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ProductResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Product response mismatch (-want +got):\n%s", diff)
		}

		// Update price and deactivate
		updateBody := reqBody
		updateBody.PriceCents = 2900
		inactive := false
		updateBody.Active = &inactive

		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, adminProductsURL+"/"+created.ID.String(), updateBody, token)
		require.Equal(t, http.StatusOK, uw.Code)

		var updated response.ProductResponse
		_ = httptest.DecodeResponseBody(t, uw.Body, &updated)
		require.Equal(t, int64(2900), updated.PriceCents)
		require.False(t, updated.Active)

		// Inactive products stay out of the public listing
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL, nil, "")
		require.Equal(t, http.StatusOK, lw.Code)
		var publicList []*response.ProductResponse
		_ = httptest.DecodeResponseBody(t, lw.Body, &publicList)
		require.Empty(t, publicList)

		// But remain visible to the admin
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminProductsURL, nil, token)
		require.Equal(t, http.StatusOK, aw.Code)
		var adminList []*response.ProductResponse
		_ = httptest.DecodeResponseBody(t, aw.Body, &adminList)
		require.Len(t, adminList, 1)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminProductsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, dw.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, productsURL+"/"+created.ID.String(), nil, "")
		require.Equal(t, http.StatusNotFound, gw.Code)
	})

	s.Run("Error case: name is required", func() {
		t := s.T()
		token := s.login()

		body := map[string]any{"priceCents": 1000}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminProductsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

// =============================================================================
// TestGeneration - Automation pipeline runs
// =============================================================================

func (s *StoreSuite) TestGeneration() {
	secret := s.Config.Automation.SharedSecret

	s.Run("Normal case: mock run stores placeholder assets without touching quota", func() {
		t := s.T()

		body := map[string]any{
			"runId":  "run-1",
			"rowId":  "3",
			"prompt": "retro sunset over mountains",
			"count":  2,
			"mock":   true,
		}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, generateURL, body, secret)
		require.Equal(t, http.StatusOK, w.Code, "Mock run should succeed: %s", w.Body.String())

		var res response.GenerateAssetResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.True(t, res.OK)
		require.True(t, res.Mock)
		require.Len(t, res.Assets, 2)
		for _, a := range res.Assets {
			require.Equal(t, s.Config.Server.PublicBaseURL+"/mock.png", a.ImageURL)
		}
	})

	s.Run("Normal case: real run uploads images and counts against the daily cap", func() {
		t := s.T()

		body := map[string]any{
			"prompt": "vintage motorcycle poster",
			"count":  8,
		}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, generateURL, body, secret)
		require.Equal(t, http.StatusOK, w.Code, "Generation should succeed: %s", w.Body.String())

		var res response.GenerateAssetResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.True(t, res.OK)
		require.False(t, res.Mock)
		require.Len(t, res.Assets, 8)
		for _, a := range res.Assets {
			require.Contains(t, a.ImageURL, "https://storage.test/")
		}

		// 8 of 10 used, so 3 more must be refused
		over := map[string]any{"runId": "run-quota", "prompt": "one too many", "count": 3}
		ow := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, generateURL, over, secret)
		httptest.AssertPipelineError(t, ow, http.StatusTooManyRequests, "Daily limit reached")

		// The refusal still names the failed job so the run can be traced.
		var refusal response.GenerateErrorResponse
		_ = httptest.DecodeResponseBody(t, ow.Body, &refusal)
		require.Equal(t, "run-quota", refusal.RunID)
		require.NotNil(t, refusal.JobID)
	})

	s.Run("Normal case: publishing an asset moves it into the gallery", func() {
		t := s.T()
		token := s.login()

		body := map[string]any{"prompt": "botanical line art", "count": 1}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, generateURL, body, secret)
		require.Equal(t, http.StatusOK, w.Code)

		var res response.GenerateAssetResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.Len(t, res.Assets, 1)
		assetID := res.Assets[0].AssetID

		// Fresh assets are unpublished
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, assetsURL, nil, "")
		require.Equal(t, http.StatusOK, gw.Code)
		var gallery []*response.AssetResponse
		_ = httptest.DecodeResponseBody(t, gw.Body, &gallery)
		require.Empty(t, gallery)

		pw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminAssetsURL+"/"+assetID.String()+"/publish", reqdto.PublishAssetRequest{Published: true}, token)
		require.Equal(t, http.StatusOK, pw.Code, "Publish should succeed: %s", pw.Body.String())

		gw = httptest.PerformRequest(t, s.Router, http.MethodGet, assetsURL, nil, "")
		var published []*response.AssetResponse
		_ = httptest.DecodeResponseBody(t, gw.Body, &published)
		require.Len(t, published, 1)
		require.Equal(t, assetID, published[0].ID)
		require.True(t, published[0].Published)
	})

	s.Run("Error case: missing prompt is refused", func() {
		t := s.T()

		body := map[string]any{"count": 1}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, generateURL, body, secret)
		httptest.AssertPipelineError(t, w, http.StatusBadRequest, "Missing prompt")
	})

	s.Run("Error case: wrong automation secret is rejected", func() {
		t := s.T()

		body := map[string]any{"prompt": "anything", "count": 1}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, generateURL, body, "wrong-secret")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestMockups - Rendered mockup uploads
// =============================================================================

func (s *StoreSuite) TestMockups() {
	secret := s.Config.Automation.SharedSecret
	pngDataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 'P', 'N', 'G'})

	s.Run("Normal case: saved mockup is uploaded and listed under its product", func() {
		t := s.T()
		token := s.login()

		productID := dbtest.CreateTestProduct(t, s.DB, "Classic Tee", 2500, true)
		assetID := dbtest.CreateTestAsset(t, s.DB, "Sunset Art", true)

		body := reqdto.SaveMockupRequest{
			ProductID: productID.String(),
			AssetID:   assetID.String(),
			DataURL:   pngDataURL,
			Scale:     0.8,
			OffsetX:   0.1,
			OffsetY:   -0.05,
		}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, mockupsURL, body, secret)
		require.Equal(t, http.StatusCreated, w.Code, "Should save mockup: %s", w.Body.String())

		var saved response.MockupSavedResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &saved)
		require.NotEmpty(t, saved.ID)
		require.Contains(t, saved.ImageURL, "https://storage.test/mockups/")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			productsURL+"/"+productID.String()+"/mockups", nil, "")
		require.Equal(t, http.StatusOK, lw.Code)
		var listed []*response.MockupResponse
		_ = httptest.DecodeResponseBody(t, lw.Body, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, saved.ID, listed[0].ID)
		require.Equal(t, saved.ImageURL, listed[0].ImageURL)
		require.InEpsilon(t, 0.8, listed[0].Scale, 1e-9)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/admin/mockups/"+saved.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, gw.Code)
		var view response.MockupResponse
		_ = httptest.DecodeResponseBody(t, gw.Body, &view)
		require.Equal(t, "Classic Tee", view.ProductName)
		require.Equal(t, "Sunset Art", view.AssetTitle)
	})

	s.Run("Error case: unknown product is refused", func() {
		t := s.T()

		assetID := dbtest.CreateTestAsset(t, s.DB, "Orphan Art", true)
		body := reqdto.SaveMockupRequest{
			ProductID: "00000000-0000-0000-0000-000000000001",
			AssetID:   assetID.String(),
			DataURL:   pngDataURL,
		}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, mockupsURL, body, secret)
		httptest.AssertPipelineError(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("Error case: image must be a data URL", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Mug", 1500, true)
		assetID := dbtest.CreateTestAsset(t, s.DB, "Mug Art", true)
		body := reqdto.SaveMockupRequest{
			ProductID: productID.String(),
			AssetID:   assetID.String(),
			DataURL:   "https://example.com/not-a-data-url.png",
		}
		w := httptest.PerformAutomationRequest(t, s.Router, http.MethodPost, mockupsURL, body, secret)
		httptest.AssertPipelineError(t, w, http.StatusBadRequest, "Image must be a base64 data URL")
	})
}
