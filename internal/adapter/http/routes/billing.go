package routes

import (
	"ocorrencias_api/internal/adapter/http/middleware"
	"ocorrencias_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/cobrancas"
)

func addBillingRoutes(rg *gin.RouterGroup, deps Dependencies) {
	read := middleware.RequirePermission(entities.PermissionOccurrencesRead)

	occurrences := rg.Group(PathOccurrences, middleware.RequireAuth(deps.Auth))
	{
		occurrences.POST("/:id/cobranca", middleware.RequirePermission(entities.PermissionBillingCreate), deps.Billing.ChargeOccurrence)
		occurrences.GET("/:id/cobrancas", read, deps.Billing.ListByOccurrence)
	}

	payments := rg.Group(PathPayments, middleware.RequireAuth(deps.Auth))
	{
		payments.GET("/:payment_id", read, deps.Billing.GetByID)
	}
}
