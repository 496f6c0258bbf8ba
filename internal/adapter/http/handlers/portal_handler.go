package handlers

import (
	"log"
	"net/http"

	response "ocorrencias_api/internal/adapter/http/dto/response"
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the provider and client views. Every lookup goes
// through the assignment resolver, never straight to the store.
type PortalHandler struct {
	assignments usecase.IAssignmentUseCase
	occurrences usecase.IOccurrenceUseCase
}

func NewPortalHandler(assignments usecase.IAssignmentUseCase, occurrences usecase.IOccurrenceUseCase) *PortalHandler {
	return &PortalHandler{assignments: assignments, occurrences: occurrences}
}

// ProviderCurrent godoc
// @Summary  The provider's active assignments
// @Tags     prestador
// @Produce  json
// @Success  200 {array} response.OccurrenceResponse
// @Security Bearer
// @Router   /prestador/ocorrencias [get]
func (h *PortalHandler) ProviderCurrent(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	list, err := h.assignments.CurrentAssignments(c.Request.Context(), identity)
	if err != nil {
		log.Printf("[portal][handler] provider current failed subject_id=%d err=%v", identity.SubjectID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(list, response.FromOccurrencePortal))
}

// ProviderHistory godoc
// @Summary  The provider's closed assignments
// @Tags     prestador
// @Produce  json
// @Success  200 {array} response.OccurrenceResponse
// @Security Bearer
// @Router   /prestador/ocorrencias/historico [get]
func (h *PortalHandler) ProviderHistory(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	list, err := h.assignments.AssignmentHistory(c.Request.Context(), identity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(list, response.FromOccurrencePortal))
}

// ProviderArrival godoc
// @Summary  Record arrival on site
// @Tags     prestador
// @Produce  json
// @Param    id path int true "occurrence id"
// @Success  200 {object} response.OccurrenceResponse
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /prestador/ocorrencias/{id}/chegada [post]
func (h *PortalHandler) ProviderArrival(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	identity, _ := middleware.Identity(c)
	provider, err := h.assignments.ResolveProvider(c.Request.Context(), identity)
	if err != nil {
		writeError(c, err)
		return
	}
	updated, err := h.occurrences.RegisterArrival(c.Request.Context(), id, provider.ID)
	if err != nil {
		log.Printf("[portal][handler] arrival failed id=%d prestador_id=%d err=%v", id, provider.ID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrencePortal(updated))
}

// ClientList godoc
// @Summary  The client's occurrences
// @Tags     cliente
// @Produce  json
// @Param    status query string false "status"
// @Success  200 {array} response.OccurrenceResponse
// @Security Bearer
// @Router   /cliente/ocorrencias [get]
func (h *PortalHandler) ClientList(c *gin.Context) {
	identity, _ := middleware.Identity(c)
	list, err := h.assignments.ClientOccurrences(c.Request.Context(), identity, c.Query("status"))
	if err != nil {
		log.Printf("[portal][handler] client list failed subject_id=%d err=%v", identity.SubjectID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(list, response.FromOccurrencePortal))
}

// ClientDetail godoc
// @Summary  One of the client's occurrences
// @Tags     cliente
// @Produce  json
// @Param    id path int true "occurrence id"
// @Success  200 {object} response.OccurrenceResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /cliente/ocorrencias/{id} [get]
func (h *PortalHandler) ClientDetail(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	identity, _ := middleware.Identity(c)
	o, err := h.assignments.VisibleOccurrence(c.Request.Context(), identity, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrencePortal(o))
}
