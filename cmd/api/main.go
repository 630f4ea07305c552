package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/advising-studio/engine/internal/api"
	"github.com/advising-studio/engine/internal/api/envelope"
	"github.com/advising-studio/engine/internal/api/handlers"
	"github.com/advising-studio/engine/internal/repository"
	"github.com/advising-studio/engine/internal/services"
	"github.com/advising-studio/engine/pkg/config"
	"github.com/advising-studio/engine/pkg/database"
	"github.com/advising-studio/engine/pkg/logger"

	_ "github.com/advising-studio/engine/docs"
)

// @title        Advising Studio API
// @version      1.0
// @description  Student advising records: students, interactions, staff and integration health.
// @BasePath     /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting advising engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{Verbose: !cfg.IsProduction()})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	defer rdb.Close()

	queueClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	defer queueClient.Close()

	jwtSecret := []byte(cfg.JWTSecret)
	if len(jwtSecret) == 0 {
		log.Warn("JWT_SECRET not set; every bearer token will be rejected and admin routes are unreachable")
	}

	staffRepo := repository.NewStaffRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	integrationRepo := repository.NewIntegrationRepository(db)

	studentSvc := services.NewStudentService(studentRepo, staffRepo)
	interactionSvc := services.NewInteractionService(interactionRepo, studentRepo)
	integrationSvc := services.NewIntegrationService(integrationRepo, queueClient)

	router := api.NewRouter(api.Dependencies{
		HMACSecret:     jwtSecret,
		AuthCookieName: cfg.AuthCookieName,
		CORS:           envelope.NewPolicy(cfg.CORSAllowedOrigins),
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		TrustedProxies: cfg.TrustedProxies,

		AuthHandler:         handlers.NewAuthHandler(cfg.AuthCookieName, cfg.IsProduction()),
		StudentsHandler:     handlers.NewStudentsHandler(studentSvc, interactionSvc),
		InteractionsHandler: handlers.NewInteractionsHandler(interactionSvc),
		StaffHandler:        handlers.NewStaffHandler(staffRepo),
		IntegrationsHandler: handlers.NewIntegrationsHandler(integrationSvc),
		AdminHandler:        handlers.NewAdminHandler(repository.NewMaintenanceRepository(db)),
		HealthHandler: handlers.NewHealthHandler(
			handlers.Check{Name: "database", Ping: func(ctx context.Context) error { return database.Ping(ctx, db) }},
			handlers.Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
