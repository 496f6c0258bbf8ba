package routes

import (
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathProviders = "/prestadores"

func addProviderRoutes(rg *gin.RouterGroup, deps Dependencies) {
	read := middleware.RequirePermission(entities.PermissionOccurrencesRead)

	providers := rg.Group(PathProviders, middleware.RequireAuth(deps.Auth))
	{
		providers.GET("", read, deps.Provider.List)
		providers.POST("", middleware.RequirePermission(entities.PermissionProvidersManage), deps.Provider.Create)
		providers.GET("/:id/posicao", read, deps.Position.ProviderLatest)
	}
}
