package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "ocorrencias_api/internal/adapter/http/dto/request"
	response "ocorrencias_api/internal/adapter/http/dto/response"
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PositionHandler serves GPS ingestion and the position queries.
type PositionHandler struct {
	positions   usecase.IPositionUseCase
	assignments usecase.IAssignmentUseCase
	liveWindow  time.Duration
}

func NewPositionHandler(positions usecase.IPositionUseCase, assignments usecase.IAssignmentUseCase, liveWindow time.Duration) *PositionHandler {
	return &PositionHandler{positions: positions, assignments: assignments, liveWindow: liveWindow}
}

// Submit godoc
// @Summary  Submit a provider position
// @Tags     monitoramento
// @Accept   json
// @Produce  json
// @Param    body body request.PositionRequest true "GPS fix"
// @Success  201 {object} response.PositionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /monitoramento/posicao [post]
func (h *PositionHandler) Submit(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	var payload request.PositionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, "latitude and longitude are required")
		return
	}

	sample, err := h.positions.Submit(c.Request.Context(), identity, payload.ToInput())
	if err != nil {
		log.Printf("[position][handler] submit failed subject_id=%d err=%v", identity.SubjectID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromPosition(sample))
}

// Latest godoc
// @Summary  Latest position of an occurrence
// @Tags     monitoramento
// @Produce  json
// @Param    id path int true "occurrence id"
// @Success  200 {object} response.PositionResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ocorrencias/{id}/posicao [get]
func (h *PositionHandler) Latest(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	s, err := h.positions.Latest(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPosition(s))
}

// Recent godoc
// @Summary  Recent positions of an occurrence, newest first
// @Tags     monitoramento
// @Produce  json
// @Param    id    path  int true  "occurrence id"
// @Param    limit query int false "max samples (default 20, max 500)"
// @Success  200 {array} response.PositionResponse
// @Security Bearer
// @Router   /ocorrencias/{id}/posicoes [get]
func (h *PositionHandler) Recent(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeBadRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}
	list, err := h.positions.Recent(c.Request.Context(), id, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPositions(list))
}

// Live godoc
// @Summary  Live feed of an occurrence
// @Description Staff see any occurrence; a client sees only its own, and only while it is trackable.
// @Tags     monitoramento
// @Produce  json
// @Param    id     path  int    true  "occurrence id"
// @Param    janela query string false "window, e.g. 5m or 300 (seconds)"
// @Success  200 {array} response.LivePositionResponse
// @Security Bearer
// @Router   /ocorrencias/{id}/ao-vivo [get]
func (h *PositionHandler) Live(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	window, err := parseWindow(c.Query("janela"), h.liveWindow)
	if err != nil {
		writeError(c, err)
		return
	}

	identity, _ := middleware.Identity(c)
	o, err := h.assignments.VisibleOccurrence(c.Request.Context(), identity, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if identity.IsCliente() && !o.Status.IsTrackable() {
		writeError(c, usecase.ErrNotTrackable)
		return
	}

	list, err := h.positions.RecentWindow(c.Request.Context(), id, window)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLivePositions(list))
}

// ProviderLatest godoc
// @Summary  Latest position of a provider
// @Tags     prestadores
// @Produce  json
// @Param    id path int true "provider id"
// @Success  200 {object} response.PositionResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /prestadores/{id}/posicao [get]
func (h *PositionHandler) ProviderLatest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, usecase.ErrProviderNotFound)
		return
	}
	s, err := h.positions.LatestByProvider(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPosition(s))
}

// parseWindow reads a Go duration or a number of seconds.
func parseWindow(raw string, def time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, usecase.ErrInvalidWindow
	}
	return d, nil
}
