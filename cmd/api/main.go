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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/content-studio-team/content-studio/pkg/validator"

	"github.com/content-studio-team/content-studio/internal/adapter/handler"
	"github.com/content-studio-team/content-studio/internal/adapter/repository"
	"github.com/content-studio-team/content-studio/internal/infrastructure/cache"
	"github.com/content-studio-team/content-studio/internal/infrastructure/database"
	httpmw "github.com/content-studio-team/content-studio/internal/infrastructure/http/middleware"
	"github.com/content-studio-team/content-studio/internal/infrastructure/storage"
	authuse "github.com/content-studio-team/content-studio/internal/usecase/auth"
	contentuse "github.com/content-studio-team/content-studio/internal/usecase/content"
	programuse "github.com/content-studio-team/content-studio/internal/usecase/program"
	pkgai "github.com/content-studio-team/content-studio/pkg/ai"
	"github.com/content-studio-team/content-studio/pkg/config"
	"github.com/content-studio-team/content-studio/pkg/jwt"
	pkgmw "github.com/content-studio-team/content-studio/pkg/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

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

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Disable it and manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize cache: Redis when available, in-memory otherwise
	log.Println("📦 Connecting to Redis...")
	var cacheStore cache.Store
	redisStore, err := cache.NewRedisStore(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory cache", err)
		cacheStore = cache.NewMemoryStore()
	} else {
		defer redisStore.Close()
		cacheStore = redisStore
	}

	// Initialize object storage
	log.Println("🗄️  Connecting to object storage...")
	var objectStore *storage.MinIOClient
	objectStore, err = storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage unavailable (%v), document uploads disabled", err)
		objectStore = nil
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	userRepo := repository.NewUserRepository(db)
	programRepo := repository.NewProgramRepository(db)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize auth service and handler
	log.Println("🔐 Initializing auth service...")
	authService := authuse.NewService(userRepo, jwtManager, logger)
	authHandler := handler.NewAuth(authService, logger)

	// Initialize program service and handler
	log.Println("📚 Initializing program service...")
	var uploader programuse.ObjectUploader
	if objectStore != nil {
		uploader = objectStore
	}
	programService := programuse.NewService(programRepo, uploader, logger)
	programHandler := handler.NewProgram(programService, logger)

	// Initialize generation pipeline
	log.Println("🤖 Initializing generation pipeline...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	generator := contentuse.NewModelGenerator(groqClient)

	var objects contentuse.ObjectTextGetter
	if objectStore != nil {
		objects = objectStore
	}
	resolver := contentuse.NewSourceResolver(objects, cacheStore, cfg.Resolver.OEmbedEndpoint, cfg.Resolver.CacheTTL, logger)

	contentService := contentuse.NewService(programRepo, generator, resolver, logger)
	generationHandler := handler.NewGeneration(contentService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(jwtManager)
	ownerMW := pkgmw.RequireProgramOwner(programService)
	router := handler.NewRouter(cfg, authHandler, programHandler, generationHandler, authEchoMW, ownerMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
