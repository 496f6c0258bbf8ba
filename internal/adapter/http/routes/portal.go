package routes

import (
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathProviderPortal = "/prestador"
	PathClientPortal   = "/cliente"
)

func addPortalRoutes(rg *gin.RouterGroup, deps Dependencies) {
	provider := rg.Group(PathProviderPortal,
		middleware.RequireAuth(deps.Auth),
		middleware.RequireKind(entities.IdentityKindPrestador))
	{
		provider.GET("/ocorrencias", deps.Portal.ProviderCurrent)
		provider.GET("/ocorrencias/historico", deps.Portal.ProviderHistory)
		provider.POST("/ocorrencias/:id/chegada", deps.Portal.ProviderArrival)
	}

	client := rg.Group(PathClientPortal,
		middleware.RequireAuth(deps.Auth),
		middleware.RequireKind(entities.IdentityKindCliente))
	{
		client.GET("/ocorrencias", deps.Portal.ClientList)
		client.GET("/ocorrencias/:id", deps.Portal.ClientDetail)
	}
}
