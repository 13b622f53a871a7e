package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	domainRepo "skytrak-service/internal/domain/repository"
	"skytrak-service/internal/infrastructure/auth"
	"skytrak-service/internal/infrastructure/config"
	"skytrak-service/internal/infrastructure/persistence"
	"skytrak-service/internal/infrastructure/router"
	"skytrak-service/internal/interface/handler"
	"skytrak-service/internal/interface/repository"
	"skytrak-service/internal/usecase"
	"skytrak-service/internal/usecase/assistant"
	"skytrak-service/internal/usecase/risk"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.Env)
	defer log.Sync()
	log.Info("Starting SkyTrak Service", "version", cfg.AppVersion)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("skytrak", nil)

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgres(ctx, cfg.PostgresDSN, repository.Models()...)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	flightRepo := repository.NewMongoFlightRepository(db)
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		log.Info("Connecting to Redis", "addr", cfg.RedisAddr)
		redisClient, err = persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		flightRepo = repository.NewCachedFlightRepository(flightRepo, redisClient, cfg.FlightCacheTTL, m, log)
	}
	chatLogRepo := repository.NewMongoChatLogRepository(db)
	userRepo := repository.NewGormUserRepository(gormDB)
	sessionRepo := repository.NewGormSessionRepository(gormDB)
	securityRepo := repository.NewGormSecurityRepository(gormDB)
	lgpdRepo := repository.NewGormLGPDRepository(gormDB)
	accessLogRepo := repository.NewGormAccessLogRepository(gormDB)

	responder := newResponder(ctx, cfg, log)

	// Set up use cases
	thresholds := risk.Thresholds{Critical: cfg.RiskCritical, High: cfg.RiskHigh, Medium: cfg.RiskMedium}
	opts := assistant.DefaultOptions()
	opts.Risk = thresholds

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	guard := usecase.NewSessionGuard(sessionRepo, cfg.SessionCacheSize, cfg.SessionCacheTTL, log)
	audit := usecase.NewAuditService(accessLogRepo, m, log)
	flights := usecase.NewFlightService(flightRepo, log)
	authService := usecase.NewAuthService(userRepo, sessionRepo, securityRepo, lgpdRepo, jwtManager, guard, cfg.BcryptCost, m, log)
	riskService := usecase.NewRiskService(flights, audit, thresholds, m, log)
	chatService := usecase.NewChatService(flights, userRepo, chatLogRepo, responder, assistant.NewEngine(opts), audit, m, log)

	// Set up HTTP server
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("Failed to get PostgreSQL handle", "error", err)
	}
	checks := map[string]handler.HealthCheck{
		"mongodb":  func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
		"postgres": sqlDB.PingContext,
	}
	if redisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	engine := router.NewRouter(router.Handlers{
		Auth:          handler.NewAuthHandler(authService, log),
		Flights:       handler.NewFlightHandler(flights, log),
		IA:            handler.NewIAHandler(riskService, chatService, log),
		Health:        handler.NewHealthHandler(cfg.AppVersion, checks),
		Authenticated: handler.AuthMiddleware(jwtManager, guard, audit, log),
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Redis close error", "error", err)
		}
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("PostgreSQL close error", "error", err)
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("SkyTrak Service stopped")
}

// newResponder builds the optional LLM responder. nil disables it.
func newResponder(ctx context.Context, cfg *config.Config, log logger.Logger) domainRepo.Responder {
	var next domainRepo.Responder
	switch cfg.LLMProvider {
	case repository.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			log.Warn("LLM_PROVIDER=openai without OPENAI_API_KEY, answering with rules only")
			return nil
		}
		next = repository.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.LLMTimeout, log)
	case repository.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			log.Warn("LLM_PROVIDER=gemini without GEMINI_API_KEY, answering with rules only")
			return nil
		}
		gemini, err := repository.NewGeminiResponder(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "", log)
		if err != nil {
			log.Error("Failed to create Gemini responder, answering with rules only", "error", err)
			return nil
		}
		next = gemini
	default:
		return nil
	}

	log.Info("LLM responder enabled", "provider", next.Provider())
	return repository.NewGuardedResponder(next, repository.GuardConfig{
		Timeout:           cfg.LLMTimeout,
		RequestsPerMinute: cfg.LLMRatePerMinute,
		Burst:             cfg.LLMBurst,
		FailureThreshold:  cfg.LLMFailures,
		OpenTimeout:       cfg.LLMOpenTimeout,
	}, log)
}
