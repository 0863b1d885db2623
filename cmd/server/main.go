package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	catalogapp "github.com/agrox/backend/internal/application/catalog"
	identityapp "github.com/agrox/backend/internal/application/identity"
	orderapp "github.com/agrox/backend/internal/application/order"
	reportapp "github.com/agrox/backend/internal/application/report"
	"github.com/agrox/backend/internal/infrastructure/auth"
	"github.com/agrox/backend/internal/infrastructure/cache"
	"github.com/agrox/backend/internal/infrastructure/config"
	"github.com/agrox/backend/internal/infrastructure/logger"
	"github.com/agrox/backend/internal/infrastructure/persistence"
	"github.com/agrox/backend/internal/infrastructure/telemetry"
	"github.com/agrox/backend/internal/interfaces/http/handler"
	"github.com/agrox/backend/internal/interfaces/http/middleware"
	"github.com/agrox/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting agrox backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if tracerProvider.IsEnabled() {
		if err := db.DB.Use(otelgorm.NewPlugin(otelgorm.WithDBName(cfg.Database.DBName))); err != nil {
			log.Warn("Failed to instrument database tracing", zap.Error(err))
		}
	}

	// Development runs create the schema directly; production deployments
	// run cmd/migrate instead.
	if cfg.App.Env != "production" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	salesReportRepo := persistence.NewGormSalesReportRepository(db.DB)

	// Bootstrap the administrator account
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := persistence.EnsureAdminUser(ctx, userRepo, cfg.Admin.Username, cfg.Admin.Password, log); err != nil {
		cancel()
		log.Fatal("Failed to ensure admin user", zap.Error(err))
	}
	cancel()

	// Product listing cache (Redis with in-memory fallback)
	productCache := cache.NewProductListCache(cfg.Redis, log)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, cfg.Admin.Username, log)
	productService := catalogapp.NewProductService(productRepo, productCache, log)
	orderService := orderapp.NewOrderService(orderRepo, productRepo, log)
	reportService := reportapp.NewSalesReportService(salesReportRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	productHandler := handler.NewProductHandler(productService, authService)
	orderHandler := handler.NewOrderHandler(orderService)
	reportHandler := handler.NewReportHandler(reportService, authService)
	healthHandler := handler.NewHealthHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Health check lives outside API versioning
	healthHandler.Register(engine)

	router.NewRouter(engine).
		Register(authHandler).
		Register(userHandler).
		Register(productHandler).
		Register(orderHandler).
		Register(reportHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
