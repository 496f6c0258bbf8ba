package routes

import (
	"context"
	"log"
	"net/http"

	_ "ocorrencias_api/docs" // swag registration
	"ocorrencias_api/internal/adapter/http/handlers"
	"ocorrencias_api/internal/infrastructure/config"
	"ocorrencias_api/internal/infrastructure/storage"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathV1             = "/v1"
	PathPublicTracking = "/monitoramento"
)

// Dependencies is everything the router needs. Run builds it from the
// environment; tests build it around the in-memory store.
type Dependencies struct {
	Auth       usecase.IAuthUseCase
	UploadsDir string

	Occurrence *handlers.OccurrenceHandler
	Tracking   *handlers.TrackingHandler
	Position   *handlers.PositionHandler
	Portal     *handlers.PortalHandler
	Session    *handlers.AuthHandler
	Provider   *handlers.ProviderHandler
	Billing    *handlers.BillingPaymentHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, cleanup, err := buildDependencies(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer cleanup()

	router := NewRouter(deps)
	log.Printf("[http] listening addr=%s storage=%s", cfg.HTTPAddr(), cfg.StorageDriver)
	if err := router.Run(cfg.HTTPAddr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.UploadsDir != "" {
		router.Static(storage.PublicPrefix, deps.UploadsDir)
	}

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addAuthRoutes(v1, deps)
	addMonitoringRoutes(v1, deps)
	addOccurrenceRoutes(v1, deps)
	addProviderRoutes(v1, deps)
	addPortalRoutes(v1, deps)
	addBillingRoutes(v1, deps)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
