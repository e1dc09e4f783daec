package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/causeway/backend/api/handler"
	"github.com/causeway/backend/internal/config"
	"github.com/causeway/backend/internal/infrastructure/monitor"
	"github.com/causeway/backend/internal/infrastructure/outbox"
	pgInfra "github.com/causeway/backend/internal/infrastructure/postgres"
	redisInfra "github.com/causeway/backend/internal/infrastructure/redis"
	"github.com/causeway/backend/internal/middleware"
	"github.com/causeway/backend/internal/router"
	"github.com/causeway/backend/internal/services"
	"github.com/causeway/backend/internal/services/lifecycle"
	"github.com/causeway/backend/internal/services/mailer"
	"github.com/causeway/backend/pkg/httpcontext"
	"github.com/causeway/backend/pkg/logger"
	"github.com/causeway/backend/repository/postgres"
	redisRepo "github.com/causeway/backend/repository/redis"
	authUC "github.com/causeway/backend/usecase/auth"
	causeUC "github.com/causeway/backend/usecase/cause"
	contactUC "github.com/causeway/backend/usecase/contact"
	donationUC "github.com/causeway/backend/usecase/donation"
	newsUC "github.com/causeway/backend/usecase/news"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register(lifecycle.PhaseStore, "postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register(lifecycle.PhaseStore, "redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	outboxStore, err := outbox.Open(cfg.Outbox.Path, "outbox")
	if err != nil {
		zapLogger.Fatal("failed to open mail outbox", zap.Error(err))
	}
	manager.Register(lifecycle.PhaseStore, "outbox", func(ctx context.Context) error {
		return outboxStore.Close()
	})

	mon := monitor.New(pool, redisClient, outboxStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register(lifecycle.PhaseWorker, "monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	var dispatcher *services.MailDispatcher
	if cfg.Mail.Enabled {
		dispatcher = services.NewMailDispatcher(
			outboxStore,
			mailer.New(cfg.Mail),
			zapLogger,
			services.DispatcherConfig{
				Interval:   cfg.Outbox.SyncInterval,
				BatchSize:  50,
				MaxRetries: cfg.Outbox.MaxRetry,
				Retention:  time.Duration(cfg.Outbox.RetentionHours) * time.Hour,
			},
		)
		dispatcher.Start()
		manager.Register(lifecycle.PhaseWorker, "mail_dispatcher", func(ctx context.Context) error {
			dispatcher.Stop(ctx)
			return nil
		})
	}

	donationRepo := postgres.NewDonationRepository(pool)
	causeRepo := postgres.NewCauseRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.JWT.SessionTTL)

	notifier := services.NewMailNotifier(outboxStore, cfg.Mail.Inbox)

	donationUseCase := donationUC.New(donationRepo, notifier, zapLogger)
	causeUseCase := causeUC.New(causeRepo, zapLogger)
	newsUseCase := newsUC.New(articleRepo, zapLogger)
	contactUseCase := contactUC.New(contactRepo, notifier, zapLogger)
	authUseCase := authUC.New(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.Issuer, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Donations: apiHandler.NewDonationHandler(donationUseCase, ctxAdapter, zapLogger),
		Causes:    apiHandler.NewCauseHandler(causeUseCase, ctxAdapter, zapLogger),
		News:      apiHandler.NewNewsHandler(newsUseCase, ctxAdapter, zapLogger),
		Contact:   apiHandler.NewContactHandler(contactUseCase, ctxAdapter, zapLogger),
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.JWT.SessionTTL),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register(lifecycle.PhaseServer, "http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
