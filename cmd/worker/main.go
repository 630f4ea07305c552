package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/advising-studio/engine/internal/integrations"
	"github.com/advising-studio/engine/internal/queue"
	"github.com/advising-studio/engine/internal/queue/tasks"
	"github.com/advising-studio/engine/internal/repository"
	"github.com/advising-studio/engine/internal/services"
	"github.com/advising-studio/engine/pkg/config"
	"github.com/advising-studio/engine/pkg/database"
	"github.com/advising-studio/engine/pkg/logger"
)

func main() {
	cfg := config.MustLoad()
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("redis connection failed", zap.Error(err))
	}
	_ = rdb.Close()

	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL, database.Options{})
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	integrationRepo := repository.NewIntegrationRepository(db)
	// The worker never enqueues single checks, so it runs without a client.
	integrationSvc := services.NewIntegrationService(integrationRepo, nil)
	checker := integrations.NewChecker(&http.Client{}, integrations.Settings{Timeout: cfg.IntegrationCheckTimeout})

	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword}
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.AsynqConcurrency,
		Queues:      map[string]int{queue.QueueIntegrations: 1},
		Logger:      log.Sugar(),
	})
	mux := asynq.NewServeMux()
	tasks.NewIntegrationCheckHandler(checker, integrationSvc, integrationRepo, cfg.AsynqConcurrency).Register(mux)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Logger: log.Sugar()})
	spec := "@every " + cfg.IntegrationCheckInterval.String()
	if _, err := scheduler.Register(spec, queue.NewIntegrationCheckAllTask()); err != nil {
		log.Fatal("failed to schedule integration sweep", zap.String("spec", spec), zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("asynq worker starting", zap.Int("concurrency", cfg.AsynqConcurrency))
		return srv.Start(mux)
	})
	g.Go(func() error {
		log.Info("integration sweep scheduled", zap.String("spec", spec))
		return scheduler.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down worker")
		scheduler.Shutdown()
		srv.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("worker stopped with error", zap.Error(err))
	}
}
