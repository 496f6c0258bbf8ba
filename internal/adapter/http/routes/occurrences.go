package routes

import (
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const PathOccurrences = "/ocorrencias"

func addOccurrenceRoutes(rg *gin.RouterGroup, deps Dependencies) {
	read := middleware.RequirePermission(entities.PermissionOccurrencesRead)
	write := middleware.RequirePermission(entities.PermissionOccurrencesWrite)

	occurrences := rg.Group(PathOccurrences, middleware.RequireAuth(deps.Auth))
	{
		occurrences.GET("", read, deps.Occurrence.List)
		occurrences.POST("", write, deps.Occurrence.Create)
		occurrences.GET("/status/:status", read, deps.Occurrence.ListByStatus)
		occurrences.GET("/placa/:placa", read, deps.Occurrence.ListByPlate)
		occurrences.GET("/:id", read, deps.Occurrence.GetByID)
		occurrences.PUT("/:id", write, deps.Occurrence.Update)
		occurrences.DELETE("/:id", middleware.RequirePermission(entities.PermissionOccurrencesDelete), deps.Occurrence.Delete)
		occurrences.POST("/:id/fotos", write, deps.Occurrence.AddPhotos)

		tracking := middleware.RequirePermission(entities.PermissionTrackingManage)
		occurrences.POST("/:id/rastreamento", tracking, deps.Tracking.Issue)
		occurrences.DELETE("/:id/rastreamento", tracking, deps.Tracking.Revoke)

		occurrences.GET("/:id/posicao", read, deps.Position.Latest)
		occurrences.GET("/:id/posicoes", read, deps.Position.Recent)
		// Ownership and the staff permission are checked by the resolver.
		occurrences.GET("/:id/ao-vivo",
			middleware.RequireKind(entities.IdentityKindStaff, entities.IdentityKindCliente),
			deps.Position.Live)
	}
}
