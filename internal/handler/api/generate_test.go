//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"merch-store/internal/handler/api"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/usecase/commands"
	"merch-store/tests/common/httptest"
	commandsmock "merch-store/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GenerateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGenerateCommands
	handler      *api.GenerateHandler
}

func (s *GenerateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGenerateCommands(s.mockCtrl)
	s.handler = api.NewGenerateHandler(s.mockCommands)

	s.router.POST("/assets/generate", s.handler.Generate)
}

func (s *GenerateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGenerateHandlerSuite(t *testing.T) {
	suite.Run(t, new(GenerateHandlerTestSuite))
}

func (s *GenerateHandlerTestSuite) TestGenerate() {
	url := "/assets/generate"

	s.Run("success: returns 200 with the generated assets", func() {
		result := &commands.GenerateResult{
			RequestID: uuid.New(),
			RunID:     "run-42",
			RowID:     "7",
			JobID:     uuid.New(),
			Count:     2,
			Assets: []commands.GeneratedAsset{
				{AssetID: uuid.New(), ImageURL: "https://storage.googleapis.com/bucket/a.png"},
				{AssetID: uuid.New(), ImageURL: "https://storage.googleapis.com/bucket/b.png"},
			},
		}
		s.mockCommands.EXPECT().GenerateAssets(gomock.Any(), commands.GenerateRequest{
			RunID:  "run-42",
			RowID:  "7",
			Prompt: "retro sunset",
			Count:  2,
		}).Return(result, nil).Times(1)

		body := map[string]any{
			"runId":  "run-42",
			"rowId":  "7",
			"prompt": "retro sunset",
			"count":  2,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.GenerateAssetResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
		s.Equal(result.JobID, response.JobID)
		s.Len(response.Assets, 2)
	})

	s.Run("success: coerces spreadsheet-typed fields", func() {
		// Pipelines template count as a string and mock as a number.
		s.mockCommands.EXPECT().GenerateAssets(gomock.Any(), commands.GenerateRequest{
			RowID:  "12",
			Prompt: "mountain lake",
			Count:  3,
			Mock:   true,
		}).Return(&commands.GenerateResult{
			RequestID: uuid.New(),
			JobID:     uuid.New(),
			Mock:      true,
			Count:     3,
			Assets:    []commands.GeneratedAsset{},
		}, nil).Times(1)

		body := map[string]any{
			"id":     12,
			"prompt": "mountain lake",
			"count":  "3",
			"mock":   1,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to the pipeline envelope with ids", func() {
		jobID := uuid.New()
		failedRun := &commands.GenerateResult{
			RequestID: uuid.New(),
			RunID:     "run-42",
			RowID:     "7",
			JobID:     jobID,
		}

		testCases := []struct {
			name           string
			commandsError  error
			result         *commands.GenerateResult
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:          "missing prompt",
				commandsError: commands.ErrMissingPrompt,
				// Validation fails before a job row exists.
				result:         &commands.GenerateResult{RequestID: uuid.New(), RunID: "run-42", RowID: "7"},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Missing prompt",
			},
			{
				name:           "daily limit reached",
				commandsError:  commands.ErrDailyLimitReached,
				result:         failedRun,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Daily limit reached",
			},
			{
				name:           "no images generated",
				commandsError:  commands.ErrNoImagesGenerated,
				result:         failedRun,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "No images generated",
			},
			{
				name:           "generator outage",
				commandsError:  commands.ErrGenerationFailed,
				result:         failedRun,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Generation failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().GenerateAssets(gomock.Any(), gomock.Any()).
					Return(tc.result, tc.commandsError).Times(1)

				body := map[string]any{"prompt": "anything"}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertPipelineError(s.T(), rec, tc.expectedStatus, tc.expectedMsg)

				var envelope resdto.GenerateErrorResponse
				httptest.DecodeResponseBody(s.T(), rec.Body, &envelope)
				s.Equal(tc.result.RequestID, envelope.RequestID)
				s.Equal(tc.result.RunID, envelope.RunID)
				s.Equal(tc.result.RowID, envelope.RowID)
				if tc.result.JobID == uuid.Nil {
					s.Nil(envelope.JobID, "no job row, no jobId")
				} else {
					s.Require().NotNil(envelope.JobID)
					s.Equal(tc.result.JobID, *envelope.JobID)
				}
			})
		}
	})

	s.Run("error: failures before any record keep the plain envelope", func() {
		s.mockCommands.EXPECT().GenerateAssets(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrGenerationFailed).Times(1)

		body := map[string]any{"prompt": "anything"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertPipelineError(s.T(), rec, http.StatusInternalServerError, "Generation failed")
		s.NotContains(rec.Body.String(), "requestId")
	})

	s.Run("error: 400 on malformed JSON body", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, []byte("{not json"),
			map[string]string{"Content-Type": "application/json"})
		httptest.AssertPipelineError(s.T(), rec, http.StatusBadRequest, "Invalid JSON body")
	})
}
