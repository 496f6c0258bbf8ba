package handlers

import (
	"log"
	"net/http"

	request "ocorrencias_api/internal/adapter/http/dto/request"
	response "ocorrencias_api/internal/adapter/http/dto/response"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProviderHandler struct {
	usecase usecase.IProviderUseCase
}

func NewProviderHandler(uc usecase.IProviderUseCase) *ProviderHandler {
	return &ProviderHandler{usecase: uc}
}

// List godoc
// @Summary  List providers
// @Tags     prestadores
// @Produce  json
// @Success  200 {array} response.ProviderResponse
// @Security Bearer
// @Router   /prestadores [get]
func (h *ProviderHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProviders(list))
}

// Create godoc
// @Summary  Register a provider
// @Tags     prestadores
// @Accept   json
// @Produce  json
// @Param    body body request.ProviderRequest true "provider"
// @Success  201 {object} response.ProviderResponse
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /prestadores [post]
func (h *ProviderHandler) Create(c *gin.Context) {
	var payload request.ProviderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, "nome is required")
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[provider][handler] create failed nome=%q err=%v", payload.Nome, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromProvider(created))
}
