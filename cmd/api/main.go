package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/passvet/passvet/internal/config"
	"github.com/passvet/passvet/internal/dictionary"
	attemptHandler "github.com/passvet/passvet/internal/handler/attempt"
	"github.com/passvet/passvet/internal/handler/health"
	passwordHandler "github.com/passvet/passvet/internal/handler/password"
	"github.com/passvet/passvet/internal/repository/postgres"
	"github.com/passvet/passvet/internal/router"
	"github.com/passvet/passvet/internal/service/audit"
	"github.com/passvet/passvet/internal/service/evaluator"
	"github.com/passvet/passvet/internal/worker"
	"github.com/passvet/passvet/pkg/logger"
	"github.com/passvet/passvet/pkg/messaging"
	redisbroker "github.com/passvet/passvet/pkg/messaging/redis"
	"github.com/passvet/passvet/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Console:    cfg.Log.Console,
	})
	log.Logger = appLogger

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	m := metrics.NewMetrics("passvet", "api")

	var publisher messaging.Publisher
	if cfg.Redis.URL != "" {
		publisher, err = redisbroker.NewPublisher(redisbroker.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
			PoolSize:     10,
			MinIdleConns: 2,
		}, appLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		defer publisher.Close()
	}

	attemptRepo := postgres.NewAttemptRepository(db)
	auditSvc := audit.NewService(attemptRepo, publisher, m, appLogger)
	recorder := audit.NewRecorder(auditSvc)

	checker := dictionary.NewWordlistChecker(cfg.Dictionary.CacheTTL())
	evalSvc := evaluator.NewService(checker, recorder, m, appLogger, cfg.Dictionary.Path)

	r := router.NewRouter(router.Config{
		RateLimit:    rate.Limit(cfg.Server.RateLimit),
		RateBurst:    cfg.Server.RateBurst,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	},
		passwordHandler.NewHandler(evalSvc),
		attemptHandler.NewHandler(auditSvc),
		health.NewHandler(db),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	workerCtx, cancelWorker := context.WithCancel(context.Background())
	defer cancelWorker()

	cleanup := worker.NewCleanupWorker(auditSvc, cfg.Audit.RetentionDays,
		time.Duration(cfg.Audit.CleanupIntervalHours)*time.Hour, appLogger)
	go cleanup.Start(workerCtx)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("password evaluation service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")
	cancelWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
