package handlers

import (
	"log"
	"net/http"

	request "ocorrencias_api/internal/adapter/http/dto/request"
	response "ocorrencias_api/internal/adapter/http/dto/response"
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Failure  429 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBadRequest(c, "email and senha are required")
		return
	}
	res, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Senha)
	if err != nil {
		log.Printf("[auth][handler] login failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLoginResult(res))
}

// Me godoc
// @Summary  The identity behind the bearer token
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.IdentityResponse
// @Security Bearer
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		writeError(c, usecase.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromIdentity(identity))
}
