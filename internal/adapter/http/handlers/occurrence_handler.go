package handlers

import (
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	request "ocorrencias_api/internal/adapter/http/dto/request"
	response "ocorrencias_api/internal/adapter/http/dto/response"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	photoFormField   = "fotos"
	captionFormField = "legenda"
	dateOnlyLayout   = "2006-01-02"
)

// OccurrenceHandler serves the staff occurrence endpoints.
type OccurrenceHandler struct {
	usecase usecase.IOccurrenceUseCase
}

func NewOccurrenceHandler(uc usecase.IOccurrenceUseCase) *OccurrenceHandler {
	return &OccurrenceHandler{usecase: uc}
}

// List godoc
// @Summary  List occurrences
// @Tags     ocorrencias
// @Produce  json
// @Param    cliente    query string false "client name (substring)"
// @Param    prestador  query string false "provider name (substring)"
// @Param    status     query string false "status"
// @Param    placa      query string false "plate (any of the three)"
// @Param    inicio     query string false "created at or after (RFC3339 or YYYY-MM-DD)"
// @Param    fim        query string false "created at or before (RFC3339 or YYYY-MM-DD)"
// @Param    ordem      query string false "criacao (default) or encerramento"
// @Success  200 {array} response.OccurrenceResponse
// @Security Bearer
// @Router   /ocorrencias [get]
func (h *OccurrenceHandler) List(c *gin.Context) {
	filter, err := occurrenceFilterFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	list, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[occurrence][handler] list failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(list, response.FromOccurrence))
}

// GetByID godoc
// @Summary  Get an occurrence
// @Tags     ocorrencias
// @Produce  json
// @Param    id path int true "occurrence id"
// @Success  200 {object} response.OccurrenceResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ocorrencias/{id} [get]
func (h *OccurrenceHandler) GetByID(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrence(o))
}

// Create godoc
// @Summary  Open an occurrence
// @Tags     ocorrencias
// @Accept   json
// @Produce  json
// @Param    body body request.OccurrenceRequest true "occurrence"
// @Success  201 {object} response.OccurrenceResponse
// @Failure  400 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ocorrencias [post]
func (h *OccurrenceHandler) Create(c *gin.Context) {
	var payload request.OccurrenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[occurrence][handler] create invalid payload err=%v", err)
		writeBadRequest(c, "Invalid occurrence payload")
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[occurrence][handler] create failed err=%v", err)
		writeError(c, err)
		return
	}
	log.Printf("[occurrence][handler] create success id=%d status=%s", created.ID, created.Status)
	c.JSON(http.StatusCreated, response.FromOccurrence(created))
}

// Update godoc
// @Summary  Update an occurrence (the only path that changes status)
// @Tags     ocorrencias
// @Accept   json
// @Produce  json
// @Param    id   path int                       true "occurrence id"
// @Param    body body request.OccurrenceRequest true "fields to change"
// @Success  200 {object} response.OccurrenceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ocorrencias/{id} [put]
func (h *OccurrenceHandler) Update(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	var payload request.OccurrenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[occurrence][handler] update invalid payload id=%d err=%v", id, err)
		writeBadRequest(c, "Invalid occurrence payload")
		return
	}

	log.Printf("[occurrence][handler] update start id=%d", id)
	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		log.Printf("[occurrence][handler] update failed id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[occurrence][handler] update success id=%d status=%s version=%d", id, updated.Status, updated.Version)
	c.JSON(http.StatusOK, response.FromOccurrence(updated))
}

// Delete godoc
// @Summary  Delete an occurrence and its photos
// @Tags     ocorrencias
// @Param    id path int true "occurrence id"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ocorrencias/{id} [delete]
func (h *OccurrenceHandler) Delete(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[occurrence][handler] delete failed id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[occurrence][handler] delete success id=%d", id)
	c.Status(http.StatusNoContent)
}

// ListByStatus godoc
// @Summary  List occurrences by status
// @Tags     ocorrencias
// @Produce  json
// @Param    status path string true "status"
// @Success  200 {array} response.OccurrenceResponse
// @Security Bearer
// @Router   /ocorrencias/status/{status} [get]
func (h *OccurrenceHandler) ListByStatus(c *gin.Context) {
	list, err := h.usecase.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(list, response.FromOccurrence))
}

// ListByPlate godoc
// @Summary  List occurrences by plate
// @Tags     ocorrencias
// @Produce  json
// @Param    placa path string true "plate"
// @Success  200 {array} response.OccurrenceResponse
// @Security Bearer
// @Router   /ocorrencias/placa/{placa} [get]
func (h *OccurrenceHandler) ListByPlate(c *gin.Context) {
	list, err := h.usecase.ListByPlate(c.Request.Context(), c.Param("placa"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOccurrences(list, response.FromOccurrence))
}

// AddPhotos godoc
// @Summary  Append photos to an occurrence
// @Tags     ocorrencias
// @Accept   multipart/form-data
// @Produce  json
// @Param    id      path     int    true  "occurrence id"
// @Param    fotos   formData file   true  "one or more images"
// @Param    legenda formData string false "caption applied to every file"
// @Success  200 {object} response.OccurrenceResponse
// @Security Bearer
// @Router   /ocorrencias/{id}/fotos [post]
func (h *OccurrenceHandler) AddPhotos(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		writeBadRequest(c, "Expected a multipart form")
		return
	}

	files := form.File[photoFormField]
	caption := strings.TrimSpace(c.PostForm(captionFormField))
	uploads := make([]usecase.PhotoUpload, 0, len(files))
	opened := make([]multipart.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			log.Printf("[occurrence][handler] photo open failed id=%d file=%s err=%v", id, fh.Filename, err)
			writeBadRequest(c, "Could not read uploaded file")
			return
		}
		opened = append(opened, f)
		uploads = append(uploads, usecase.PhotoUpload{Filename: fh.Filename, Legenda: caption, Content: f})
	}

	updated, err := h.usecase.AddPhotos(c.Request.Context(), id, uploads)
	if err != nil {
		log.Printf("[occurrence][handler] add photos failed id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[occurrence][handler] add photos success id=%d count=%d", id, len(uploads))
	c.JSON(http.StatusOK, response.FromOccurrence(updated))
}

func occurrenceIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, usecase.ErrInvalidOccurrenceID)
		return 0, false
	}
	return id, true
}

func occurrenceFilterFromQuery(c *gin.Context) (interfaces.OccurrenceFilter, error) {
	f := interfaces.OccurrenceFilter{
		Cliente:   strings.TrimSpace(c.Query("cliente")),
		Prestador: strings.TrimSpace(c.Query("prestador")),
		Placa:     strings.TrimSpace(c.Query("placa")),
	}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		s, ok := entities.ParseOccurrenceStatus(raw)
		if !ok {
			return f, usecase.ErrInvalidStatus
		}
		f.Status = s
	}
	var err error
	if f.Inicio, err = parseQueryTime(c.Query("inicio"), false); err != nil {
		return f, err
	}
	if f.Fim, err = parseQueryTime(c.Query("fim"), true); err != nil {
		return f, err
	}
	f.OrderByClosure = strings.EqualFold(c.Query("ordem"), "encerramento")
	return f, nil
}

// parseQueryTime accepts RFC3339 or a bare date. A bare end date covers the
// whole day.
func parseQueryTime(raw string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return nil, usecase.ErrInvalidDateRange
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
