package api

import (
	"net/http"
	"strconv"

	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/handler/httperr"
	"merch-store/internal/infra"
	"merch-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	q queries.JobQueries
}

func NewJobHandler(q queries.JobQueries) *JobHandler {
	return &JobHandler{q: q}
}

// @Summary List generation jobs
// @Description List recent generation jobs newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.JobResponse
// @Failure 401 {object} map[string]string
// @Router /admin/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	items, err := h.q.ListRecent(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list jobs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobList(items))
}

// @Summary Get generation job
// @Description Get a generation job by ID
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Job not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load job", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}
