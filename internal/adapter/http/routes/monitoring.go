package routes

import (
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addMonitoringRoutes(rg *gin.RouterGroup, deps Dependencies) {
	monitoring := rg.Group(PathPublicTracking)
	{
		monitoring.POST("/posicao",
			middleware.RequireAuth(deps.Auth),
			middleware.RequireKind(entities.IdentityKindPrestador),
			deps.Position.Submit)
		// Public: the hash is the only credential.
		monitoring.GET("/:hash", deps.Tracking.Resolve)
	}
}
