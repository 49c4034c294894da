package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/agendacraft/pkg/validator"

	_ "github.com/johnquangdev/agendacraft/docs"
	"github.com/johnquangdev/agendacraft/internal/adapter/handler"
	"github.com/johnquangdev/agendacraft/internal/adapter/presenter"
	"github.com/johnquangdev/agendacraft/internal/adapter/repository"
	"github.com/johnquangdev/agendacraft/internal/domain/repositories"
	"github.com/johnquangdev/agendacraft/internal/infrastructure/cache"
	"github.com/johnquangdev/agendacraft/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/agendacraft/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/agendacraft/internal/infrastructure/storage"
	agendaUsecase "github.com/johnquangdev/agendacraft/internal/usecase/agenda"
	pkgai "github.com/johnquangdev/agendacraft/pkg/ai"
	"github.com/johnquangdev/agendacraft/pkg/config"
	"github.com/johnquangdev/agendacraft/pkg/jwt"
)

// @title           AgendaCraft API
// @version         1.0
// @description     Turns uploaded documents into timed meeting agendas with Gemini
// @BasePath        /v1

const connectTimeout = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Reject oversized uploads before they are buffered
	e.Use(middleware.BodyLimit(cfg.GetBodyLimit()))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Cookie"},
		ExposeHeaders:    []string{httpmw.HeaderSessionToken, echo.HeaderContentDisposition, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))

	ctx := context.Background()

	// Initialize dependencies
	logger.Info("🔧 Initializing dependencies...")

	// Session store
	var (
		store      cache.Store
		redisStore *cache.RedisStore
	)
	switch cfg.Session.Store {
	case "redis":
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		redisClient, err := cache.NewRedisClient(ctx, cfg, logger, connectTimeout)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		redisStore = cache.NewRedisStore(redisClient)
		store = redisStore
	default:
		logger.Info("📦 Using in-memory session store")
		store = cache.NewMemoryStore()
	}
	defer store.Close()

	sessionRepo := repository.NewSessionRepository(store, cfg.Session.TTL)

	// Generation audit log (optional)
	var generationRepo repositories.GenerationRepository
	if cfg.Database.Enabled {
		logger.Info("📦 Connecting to database...")
		db, err := database.NewPostgresDB(ctx, cfg, connectTimeout)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer database.CloseDB(db)

		// Production deployments should manage schema via sql-migrate.
		if cfg.Database.AutoMigrate {
			if cfg.IsProduction() {
				logger.Fatal("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or run cmd/migrate.")
			}
			logger.Info("🔄 Running GORM AutoMigrate (development only) ...")
			if err := database.AutoMigrate(db); err != nil {
				logger.Fatal("Failed to run AutoMigrate", zap.Error(err))
			}
		}
		generationRepo = repository.NewGenerationRepository(db)
	} else {
		logger.Info("⚠️  Generation audit log disabled (DB_ENABLED=false)")
	}

	// Source document archive (optional)
	var (
		archive     repositories.DocumentArchive
		minioClient *storage.MinIOClient
	)
	if cfg.Storage.Enabled {
		logger.Info("🗄️  Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err = storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		archive = minioClient
	} else {
		logger.Info("⚠️  Source archive disabled (STORAGE_ENABLED=false)")
	}

	// Initialize AI client
	logger.Info("🤖 Initializing Gemini client...")
	geminiClient, err := pkgai.NewGeminiClient(ctx, &cfg.Gemini)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}
	logger.Info("✅ Gemini client ready", zap.String("model", geminiClient.Model()))

	// Initialize agenda service
	agendaService := agendaUsecase.NewService(
		sessionRepo,
		generationRepo,
		archive,
		geminiClient,
		presenter.NewDocxRenderer(),
		cfg.Session.DefaultDuration,
		logger,
	)

	// Initialize session tokens
	logger.Info("🔑 Initializing session manager...")
	tokens := jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	sessionMW := httpmw.EchoSession(tokens, httpmw.SessionOptions{
		CookieName:   cfg.Session.CookieName,
		SecureCookie: cfg.Session.SecureCookie || cfg.IsProduction(),
	}, logger)

	// Initialize handlers
	agendaHandler := handler.NewAgendaHandler(agendaService, cfg.Upload.MaxBytes, logger)

	var generationHandler *handler.Generation
	if generationRepo != nil {
		generationHandler = handler.NewGenerationHandler(agendaService, logger)
	}

	var archiveHandler *handler.Archive
	if minioClient != nil {
		archiveHandler = handler.NewArchiveHandler(minioClient, logger)
	}

	// Setup router with handlers
	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, agendaHandler, generationHandler, archiveHandler, sessionMW)
	if redisStore != nil {
		router.WithHealthCheck("redis", redisStore)
	}
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		logger.Info(fmt.Sprintf("🔗 Health check: http://%s/health", addr))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

// newLogger builds a production logger in production and a development logger elsewhere
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
