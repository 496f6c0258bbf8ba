package handlers

import (
	"errors"
	"log"
	"net/http"

	response "ocorrencias_api/internal/adapter/http/dto/response"
	"ocorrencias_api/internal/usecase"
	"ocorrencias_api/pkg"

	"github.com/gin-gonic/gin"
)

// errTrackingNotFound is the single answer for every unresolvable token.
var errTrackingNotFound = pkg.NewDomainErrorSimple("TRACKING_NOT_FOUND", "Tracking link not found", http.StatusNotFound)

type TrackingHandler struct {
	usecase  usecase.ITrackingUseCase
	basePath string
}

// NewTrackingHandler builds the handler. basePath is the public resolve
// path links are built on, e.g. "/v1/monitoramento".
func NewTrackingHandler(uc usecase.ITrackingUseCase, basePath string) *TrackingHandler {
	return &TrackingHandler{usecase: uc, basePath: basePath}
}

// Issue godoc
// @Summary  Issue (or replace) the public tracking link of an occurrence
// @Tags     rastreamento
// @Produce  json
// @Param    id path int true "occurrence id"
// @Success  201 {object} response.TrackingLinkResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ocorrencias/{id}/rastreamento [post]
func (h *TrackingHandler) Issue(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	o, err := h.usecase.Issue(c.Request.Context(), id)
	if err != nil {
		log.Printf("[tracking][handler] issue failed id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTrackingLink(o, h.basePath))
}

// Revoke godoc
// @Summary  Revoke the public tracking link of an occurrence
// @Tags     rastreamento
// @Param    id path int true "occurrence id"
// @Success  204
// @Security Bearer
// @Router   /ocorrencias/{id}/rastreamento [delete]
func (h *TrackingHandler) Revoke(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	if _, err := h.usecase.Revoke(c.Request.Context(), id); err != nil {
		log.Printf("[tracking][handler] revoke failed id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Resolve godoc
// @Summary  Public tracking view
// @Tags     rastreamento
// @Produce  json
// @Param    hash path string true "tracking token"
// @Success  200 {object} response.TrackingSnapshotResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /monitoramento/{hash} [get]
func (h *TrackingHandler) Resolve(c *gin.Context) {
	snap, err := h.usecase.Resolve(c.Request.Context(), c.Param("hash"))
	if err != nil {
		if errors.Is(err, usecase.ErrTrackingNotFound) {
			c.JSON(errTrackingNotFound.HTTPStatus, errTrackingNotFound.ToHTTPError())
			return
		}
		log.Printf("[tracking][handler] resolve failed err=%v", err)
		writeError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, response.FromTrackingSnapshot(snap))
}
