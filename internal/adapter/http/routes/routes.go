package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "cobranca_service/docs" // This will be auto-generated
	"cobranca_service/internal/adapter/http/handlers"
	repository2 "cobranca_service/internal/adapter/persistence/repository"
	"cobranca_service/internal/infrastructure/bank"
	"cobranca_service/internal/infrastructure/database"
	"cobranca_service/internal/infrastructure/logging"
	"cobranca_service/internal/scheduler"
	"cobranca_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	logger := logging.New("cobranca_service")

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(logger zerolog.Logger) {
	ddb := database.ConnectDynamoDB()

	boletoRepo := repository2.NewBoletoDynamoRepository(ddb)
	historicoRepo := repository2.NewHistoricoDynamoRepository(ddb)
	webhookRepo := repository2.NewWebhookDynamoRepository(ddb)
	pagadorRepo := repository2.NewPagadorDynamoRepository(ddb)
	configRepo := repository2.NewConfigDynamoRepository(ddb)

	gateway := bank.NewClient(
		getenvDefault("BANK_API_URL", "https://sandbox.bank.example.com"),
		getenvDefault("BANK_TOKEN_URL", "https://sandbox.bank.example.com/oauth/token"),
		logger,
	)

	boletoUseCase := usecase.NewBoletoUseCase(boletoRepo, historicoRepo, pagadorRepo, configRepo, gateway, logger)
	webhookUseCase := usecase.NewWebhookUseCase(webhookRepo, boletoRepo, historicoRepo, logger)

	boletoHandler := handlers.NewBoletoHandler(boletoUseCase, logger)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase, logger)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCobrancaRoutes(v1, boletoHandler, webhookHandler)

	startScheduler(boletoUseCase, webhookUseCase, logger)
}

// startScheduler launches the background sync, automatic protest and webhook
// drain jobs. Set SCHEDULER_ENABLED=false to run an API-only instance.
func startScheduler(boletoUC usecase.IBoletoUseCase, webhookUC usecase.IWebhookUseCase, logger zerolog.Logger) {
	if getenvDefault("SCHEDULER_ENABLED", "true") == "false" {
		logger.Info().Msg("scheduler desabilitado")
		return
	}

	s := scheduler.New(logger)
	s.Add(scheduler.SincronizarBoletos(boletoUC, logger, intervalFromEnv("SYNC_INTERVAL", time.Hour)))
	s.Add(scheduler.ProtestarVencidos(boletoUC, logger, intervalFromEnv("PROTEST_INTERVAL", 6*time.Hour)))
	s.Add(scheduler.DrenarWebhooksPendentes(webhookUC, intervalFromEnv("WEBHOOK_DRAIN_INTERVAL", 5*time.Minute)))
	s.Start(context.Background())
}

func setMiddlewares(logger zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}

func intervalFromEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
