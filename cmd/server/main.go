package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/export"
	httpAdapter "github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/handler"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/middleware"
	postgresRepo "github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/repository/postgres"
	redisRepo "github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/repository/redis"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/auth"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/config"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/logger"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/metrics"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/postgres"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/redis"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns, cfg.DatabaseTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Repositories
	txManager := postgresRepo.NewTxManager(pool)
	resourceRepo := postgresRepo.NewResourceRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	departmentRepo := postgresRepo.NewDepartmentRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	invalidator := redisRepo.NewInvalidator(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	// Use cases
	resourceUC := usecase.NewResourceUseCase(resourceRepo, idGen)
	movementUC := usecase.NewMovementUseCase(txManager, resourceRepo, movementRepo, idGen, retrier)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	appMetrics := metrics.New()
	exporter := export.NewXLSXExporter()

	// Handlers
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	resourceHandler := handler.NewResourceHandler(resourceUC, invalidator, appMetrics, appLogger)
	movementHandler := handler.NewMovementHandler(movementUC, resourceUC, exporter, invalidator, appMetrics, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	departmentHandler := handler.NewDepartmentHandler(departmentUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:       authHandler,
		ResourceHandler:   resourceHandler,
		MovementHandler:   movementHandler,
		LedgerHandler:     ledgerHandler,
		DepartmentHandler: departmentHandler,
		HealthHandler:     healthHandler,
		JWTManager:        jwtManager,
		LoginRateLimiter:  middleware.NewRateLimiter(5, 10),
		Logger:            appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
