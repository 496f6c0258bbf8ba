package routes

import (
	"context"
	"fmt"
	"log"

	"ocorrencias_api/internal/adapter/http/handlers"
	"ocorrencias_api/internal/adapter/persistence/memory"
	"ocorrencias_api/internal/adapter/persistence/repository"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/infrastructure/auth"
	"ocorrencias_api/internal/infrastructure/config"
	"ocorrencias_api/internal/infrastructure/database"
	"ocorrencias_api/internal/infrastructure/payments"
	"ocorrencias_api/internal/infrastructure/ratelimit"
	"ocorrencias_api/internal/infrastructure/storage"
	"ocorrencias_api/internal/usecase"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type repositories struct {
	occurrences interfaces.IOccurrenceRepository
	providers   interfaces.IProviderRepository
	clients     interfaces.IClientRepository
	accounts    interfaces.IAccountRepository
	positions   interfaces.IPositionRepository
	payments    interfaces.IBillingPaymentRepository
}

// infrastructure groups the adapters that are not repositories.
type infrastructure struct {
	throttle interfaces.ILoginThrottle
	gateway  interfaces.IPaymentGateway
	photos   *storage.LocalPhotoStorage
}

func buildDependencies(ctx context.Context, cfg config.Config) (Dependencies, func(), error) {
	cleanup := func() {}

	var repos repositories
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		if err := seedBootstrapAdmin(store, cfg); err != nil {
			return Dependencies{}, cleanup, err
		}
		repos = memoryRepositories(store)
		log.Printf("[wiring] storage=memory; data is lost on restart")
	default:
		ddb := database.ConnectDynamoDB(cfg.DynamoDB)
		if err := database.VerifyTables(ctx, ddb, repository.TableNames()); err != nil {
			log.Printf("[wiring] dynamodb tables not ready: %v", err)
		}
		repos = dynamoRepositories(ddb)
	}

	var infra infrastructure
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Printf("[wiring] redis unavailable, falling back to in-memory login throttle: %v", err)
		} else {
			infra.throttle = ratelimit.NewRedisThrottle(client, cfg.LoginMaxFailures, cfg.LoginLockWindow)
			cleanup = func() { _ = client.Close() }
		}
	}
	if infra.throttle == nil {
		infra.throttle = ratelimit.NewMemoryThrottle(cfg.LoginMaxFailures, cfg.LoginLockWindow)
	}

	if !cfg.PaymentGatewayMock {
		gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Printf("[wiring] Mercado Pago gateway not configured: %v", err)
		} else {
			infra.gateway = gw
		}
	}

	photos, err := storage.NewLocalPhotoStorage(cfg.UploadsDir)
	if err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}
	infra.photos = photos

	deps, err := assemble(cfg, repos, infra)
	if err != nil {
		cleanup()
		return Dependencies{}, func() {}, err
	}
	return deps, cleanup, nil
}

func dynamoRepositories(ddb *dynamodb.Client) repositories {
	return repositories{
		occurrences: repository.NewOccurrenceDynamoRepository(ddb),
		providers:   repository.NewProviderDynamoRepository(ddb),
		clients:     repository.NewClientDynamoRepository(ddb),
		accounts:    repository.NewAccountDynamoRepository(ddb),
		positions:   repository.NewPositionDynamoRepository(ddb),
		payments:    repository.NewBillingPaymentDynamoRepository(ddb),
	}
}

func memoryRepositories(store *memory.Store) repositories {
	return repositories{
		occurrences: memory.NewOccurrenceRepository(store),
		providers:   memory.NewProviderRepository(store),
		clients:     memory.NewClientRepository(store),
		accounts:    memory.NewAccountRepository(store),
		positions:   memory.NewPositionRepository(store),
		payments:    memory.NewBillingPaymentRepository(store),
	}
}

func assemble(cfg config.Config, repos repositories, infra infrastructure) (Dependencies, error) {
	tokens, err := auth.NewJWTTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return Dependencies{}, err
	}

	authUseCase := usecase.NewAuthUseCase(repos.accounts, tokens, auth.NewBcryptHasher(), infra.throttle)
	assignmentUseCase := usecase.NewAssignmentUseCase(repos.accounts, repos.providers, repos.clients, repos.occurrences)
	occurrenceUseCase := usecase.NewOccurrenceUseCase(repos.occurrences, repos.providers, repos.clients, infra.photos)
	positionUseCase := usecase.NewPositionUseCase(repos.positions, repos.occurrences, repos.providers, assignmentUseCase)
	trackingUseCase := usecase.NewTrackingUseCase(repos.occurrences, repos.providers, repos.positions)
	providerUseCase := usecase.NewProviderUseCase(repos.providers)
	paymentUseCase := usecase.NewBillingPaymentUseCase(repos.payments, repos.occurrences, infra.gateway, usecase.BillingOptions{
		MockMode:          cfg.PaymentGatewayMock,
		SandboxPayerEmail: cfg.SandboxPayerEmail,
	})

	uploadsDir := ""
	if infra.photos != nil {
		uploadsDir = infra.photos.Root()
	}

	return Dependencies{
		Auth:       authUseCase,
		UploadsDir: uploadsDir,
		Occurrence: handlers.NewOccurrenceHandler(occurrenceUseCase),
		Tracking:   handlers.NewTrackingHandler(trackingUseCase, PathV1+PathPublicTracking),
		Position:   handlers.NewPositionHandler(positionUseCase, assignmentUseCase, cfg.LiveWindow),
		Portal:     handlers.NewPortalHandler(assignmentUseCase, occurrenceUseCase),
		Session:    handlers.NewAuthHandler(authUseCase),
		Provider:   handlers.NewProviderHandler(providerUseCase),
		Billing:    handlers.NewBillingPaymentHandler(paymentUseCase),
	}, nil
}

// seedBootstrapAdmin gives a fresh memory store one staff login.
func seedBootstrapAdmin(store *memory.Store, cfg config.Config) error {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		log.Printf("[wiring] BOOTSTRAP_ADMIN_EMAIL not set; memory store starts without accounts")
		return nil
	}
	hash, err := auth.NewBcryptHasher().Hash(cfg.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("hash bootstrap admin password: %w", err)
	}
	acc := store.SeedAccount(entities.Account{
		Email:      cfg.BootstrapAdminEmail,
		Nome:       "Administrador",
		SenhaHash:  hash,
		Tipo:       entities.IdentityKindStaff,
		Permissoes: []string{entities.PermissionAll},
		Ativo:      true,
	})
	log.Printf("[wiring] bootstrap admin seeded account_id=%d", acc.ID)
	return nil
}
