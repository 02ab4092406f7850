package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/jobboard/jobboard-api/internal/api/http"
	"github.com/jobboard/jobboard-api/internal/api/http/handlers"
	"github.com/jobboard/jobboard-api/internal/auth"
	"github.com/jobboard/jobboard-api/internal/config"
	"github.com/jobboard/jobboard-api/internal/events"
	"github.com/jobboard/jobboard-api/internal/observability"
	"github.com/jobboard/jobboard-api/internal/persistence"
	"github.com/jobboard/jobboard-api/internal/repository"
	"github.com/jobboard/jobboard-api/internal/service"
	"github.com/jobboard/jobboard-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tracer *observability.TracerProvider
	if cfg.Tracing.Endpoint != "" {
		tracer, err = observability.NewTracerProvider(ctx, cfg.Tracing.Endpoint, cfg.App.Name, cfg.App.Version)
		if err != nil {
			logger.Fatal("failed to init tracing", zap.Error(err))
		}
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	var publisher *events.KafkaPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), logger)
	}
	worker.StartEventWorkers(dispatcher, service.NewNotificationService(dispatcher, logger), publisher)

	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		CompanyRepo: companyRepo,
		Counters:    redis,
		Logger:      logger,
	})
	authorizer := auth.NewAuthorizer(authService.TokenManager(), logger, metrics)

	jobService := service.NewJobService(jobRepo, dispatcher)
	applicationService := service.NewApplicationService(applicationRepo, jobService, dispatcher)
	userService := service.NewUserService(userRepo, applicationRepo, cfg.Auth.BcryptCost)
	companyService := service.NewCompanyService(companyRepo, jobRepo, cfg.Auth.BcryptCost)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httptransport.ErrorHandler(logger),
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Auth:       handlers.NewAuthHandler(authService),
		Users:      handlers.NewUsersHandler(userService),
		Companies:  handlers.NewCompaniesHandler(companyService),
		Jobs:       handlers.NewJobsHandler(jobService, applicationService),
		Authorizer: authorizer,
		Metrics:    metrics.Handler(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Warn("kafka close", zap.Error(err))
		}
	}
	if err := tracer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("tracer shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
