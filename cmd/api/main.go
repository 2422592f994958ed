package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/bonos-estetica/voucher-service/internal/api/http"
	"github.com/bonos-estetica/voucher-service/internal/api/http/handlers"
	"github.com/bonos-estetica/voucher-service/internal/auth"
	"github.com/bonos-estetica/voucher-service/internal/config"
	"github.com/bonos-estetica/voucher-service/internal/events"
	"github.com/bonos-estetica/voucher-service/internal/observability"
	"github.com/bonos-estetica/voucher-service/internal/persistence"
	"github.com/bonos-estetica/voucher-service/internal/repository"
	"github.com/bonos-estetica/voucher-service/internal/service"
	"github.com/bonos-estetica/voucher-service/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	clientRepo := repository.NewClientRepository(pool)
	procedureRepo := repository.NewProcedureRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	voucherRepo := repository.NewVoucherRepository(pool)
	historyRepo := repository.NewVoucherHistoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	clientService := service.NewClientService(clientRepo)
	procedureService := service.NewProcedureService(procedureRepo)
	userService := service.NewUserService(userRepo)
	voucherService := service.NewVoucherService(service.VoucherDependencies{
		VoucherRepo:   voucherRepo,
		HistoryRepo:   historyRepo,
		ClientRepo:    clientRepo,
		ProcedureRepo: procedureRepo,
		Dispatcher:    dispatcher,
		Cache:         redis.Handle(),
		CacheTTL:      cfg.Redis.VoucherCacheTTL(),
		Logger:        logger,
	})

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Clients:        handlers.NewClientsHandler(clientService),
		Procedures:     handlers.NewProceduresHandler(procedureService),
		Users:          handlers.NewUsersHandler(userService),
		Vouchers:       handlers.NewVouchersHandler(voucherService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
