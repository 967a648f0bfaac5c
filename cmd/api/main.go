package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/bistro-service/internal/api/http"
	"github.com/spec-kit/bistro-service/internal/api/http/handlers"
	"github.com/spec-kit/bistro-service/internal/auth"
	"github.com/spec-kit/bistro-service/internal/config"
	"github.com/spec-kit/bistro-service/internal/events"
	"github.com/spec-kit/bistro-service/internal/gateway"
	"github.com/spec-kit/bistro-service/internal/observability"
	"github.com/spec-kit/bistro-service/internal/persistence"
	"github.com/spec-kit/bistro-service/internal/repository"
	"github.com/spec-kit/bistro-service/internal/service"
	"github.com/spec-kit/bistro-service/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	menuRepo := repository.NewMenuRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	stripeGateway := gateway.NewStripeGateway(cfg.Stripe.SecretKey)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	userService := service.NewUserService(userRepo, dispatcher)
	menuService := service.NewMenuService(menuRepo, reviewRepo, redis, dispatcher, logger)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(paymentRepo, stripeGateway, dispatcher)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:    handlers.NewUsersHandler(authService, userService),
		Menu:     handlers.NewMenuHandler(menuService),
		Carts:    handlers.NewCartsHandler(cartService),
		Payments: handlers.NewPaymentsHandler(paymentService),
		Auth:     authMiddleware,
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
