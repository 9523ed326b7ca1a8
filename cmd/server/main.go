package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/restaurant/backend/internal/application/identity"
	reservationapp "github.com/restaurant/backend/internal/application/reservation"
	reservationacl "github.com/restaurant/backend/internal/domain/reservation/acl"
	"github.com/restaurant/backend/internal/infrastructure/acl"
	"github.com/restaurant/backend/internal/infrastructure/cache"
	"github.com/restaurant/backend/internal/infrastructure/config"
	"github.com/restaurant/backend/internal/infrastructure/event"
	"github.com/restaurant/backend/internal/infrastructure/logger"
	"github.com/restaurant/backend/internal/infrastructure/migration"
	"github.com/restaurant/backend/internal/infrastructure/persistence"
	"github.com/restaurant/backend/internal/infrastructure/persistence/models"
	"github.com/restaurant/backend/internal/interfaces/http/handler"
	"github.com/restaurant/backend/internal/interfaces/http/middleware"
	"github.com/restaurant/backend/internal/interfaces/http/router"
)

const migrationsPath = "migrations"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting reservation backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Apply schema before anything reads or writes
	if err := applySchema(cfg, db, log); err != nil {
		log.Fatal("Failed to apply database schema", zap.Error(err))
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	roleRepo := persistence.NewGormRoleRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)

	// Initialize event bus and the reservation audit trail
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewReservationAuditHandler(log))
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// User reference cache: Redis when enabled, in-memory otherwise.
	// A Redis that is down at boot degrades to the in-memory cache.
	userCache := buildUserCache(cfg, log)

	userACL := acl.NewUserACL(userRepo, userCache, log)

	// Initialize application services
	roleService := identityapp.NewRoleService(roleRepo, log)
	userService := identityapp.NewUserQueryService(userRepo, log)
	commandService := reservationapp.NewCommandService(reservationRepo, eventBus, log)
	queryService := reservationapp.NewQueryService(reservationRepo, log)

	// Seed the role catalog before the listener opens. A partial catalog
	// would let requests in against an inconsistent identity context.
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := roleService.SeedRoles(seedCtx); err != nil {
		cancel()
		log.Fatal("Failed to seed roles", zap.Error(err))
	}
	cancel()
	log.Info("Role catalog seeded")

	// Set up the HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health endpoint lives outside the versioned API
	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	// Register versioned routes
	router.NewRouter(engine).
		Register(handler.NewReservationHandler(commandService, queryService, userACL, log)).
		Register(handler.NewUserHandler(userService, log)).
		Setup()

	srv := &http.Server{
		Addr:           cfg.App.Addr(),
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Event bus shutdown failed", zap.Error(err))
	}

	if closer, ok := userCache.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error("User cache shutdown failed", zap.Error(err))
		}
	}

	log.Info("Server exited")
}

// applySchema brings the database schema up to date. Postgres goes
// through versioned migrations; sqlite is a dev convenience and uses
// gorm auto-migration.
func applySchema(cfg *config.Config, db *persistence.Database, log *zap.Logger) error {
	if cfg.Database.Driver == config.DriverSQLite {
		return db.DB.AutoMigrate(
			&models.UserModel{},
			&models.RoleModel{},
			&models.ReservationModel{},
		)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	migrator, err := migration.New(sqlDB, migrationsPath, log)
	if err != nil {
		return err
	}
	return migrator.Up()
}

// buildUserCache selects the ACL cache backend from configuration
func buildUserCache(cfg *config.Config, log *zap.Logger) reservationacl.UserReferenceCache {
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisUserReferenceCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.ReferenceTTL)
		if err == nil {
			log.Info("Using Redis user reference cache", zap.String("addr", cfg.Redis.Addr()))
			return redisCache
		}
		log.Warn("Redis unavailable, falling back to in-memory user reference cache", zap.Error(err))
	}
	return cache.NewInMemoryUserReferenceCache(cfg.Redis.ReferenceTTL)
}
