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

	httpapi "github.com/spec-kit/record-shop/internal/api/http"
	"github.com/spec-kit/record-shop/internal/api/http/handlers"
	"github.com/spec-kit/record-shop/internal/auth"
	"github.com/spec-kit/record-shop/internal/config"
	"github.com/spec-kit/record-shop/internal/events"
	"github.com/spec-kit/record-shop/internal/notify"
	"github.com/spec-kit/record-shop/internal/observability"
	"github.com/spec-kit/record-shop/internal/persistence"
	"github.com/spec-kit/record-shop/internal/repository"
	"github.com/spec-kit/record-shop/internal/service"
	"github.com/spec-kit/record-shop/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	postgres, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer postgres.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, postgres.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redisStore := persistence.NewRedis(cfg.Redis, logger)
	defer redisStore.Close()

	codec, err := auth.NewCodec(cfg.Auth.JWTSecret)
	if err != nil {
		logger.Fatal("failed to build token codec", zap.Error(err))
	}
	issuer := auth.NewIssuer(codec)
	validator := auth.NewValidator(codec)

	broadcaster := notify.NewBroadcaster(logger)
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	pool := postgres.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	genreRepo := repository.NewGenreRepository(pool)
	recordRepo := repository.NewRecordRepository(pool)
	reviewRepo := repository.NewReviewRepository(pool)
	subscriberRepo := repository.NewSubscriberRepository(pool)
	couponRepo := repository.NewCouponRepository(pool)
	purchaseRepo := repository.NewPurchaseHistoryRepository(pool)
	basketRepo := repository.NewBasketRepository(redisStore.Client)

	mailer := service.NewLogMailer(logger, cfg.Mail)
	gateway := service.NewMockPaymentGateway(logger)

	authService := service.NewAuthService(service.AuthDependencies{
		UserRepo:    userRepo,
		Issuer:      issuer,
		Validator:   validator,
		Broadcaster: broadcaster,
		TokenTTL:    cfg.Auth.TokenTTL(),
		BcryptCost:  cfg.Auth.BcryptCost,
	})
	genreService := service.NewGenreService(genreRepo)
	recordService := service.NewRecordService(recordRepo, genreRepo, dispatcher)
	reviewService := service.NewReviewService(reviewRepo, recordRepo)
	searchService := service.NewSearchService(recordRepo, purchaseRepo, logger)
	basketService := service.NewBasketService(basketRepo, recordRepo, dispatcher)
	subscriberService := service.NewSubscriberService(subscriberRepo, mailer, logger)
	couponService := service.NewCouponService(couponRepo, purchaseRepo, logger)
	purchaseService := service.NewPurchaseHistoryService(purchaseRepo)
	checkoutService := service.NewCheckoutService(service.CheckoutDependencies{
		BasketRepo:   basketRepo,
		RecordRepo:   recordRepo,
		PurchaseRepo: purchaseRepo,
		Coupons:      couponService,
		Gateway:      gateway,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	notificationService := service.NewNotificationService(dispatcher, broadcaster, subscriberService, recordService, logger)

	worker.StartNotificationWorker(notificationService)

	if pool != nil {
		if err := genreService.Seed(ctx); err != nil {
			logger.Fatal("failed to seed genres", zap.Error(err))
		}
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})

	httpapi.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httpapi.RegisterRoutes(app, httpapi.RouteConfig{
		AuthMiddleware: auth.NewMiddleware(validator, cfg.Auth.CookieName),
		Health:         handlers.NewHealthHandler(postgres, redisStore),
		Auth:           handlers.NewAuthHandler(authService, cfg.Auth.CookieName),
		Genres:         handlers.NewGenresHandler(genreService),
		Records:        handlers.NewRecordsHandler(recordService),
		Reviews:        handlers.NewReviewsHandler(reviewService),
		Search:         handlers.NewSearchHandler(searchService),
		Basket:         handlers.NewBasketHandler(basketService),
		Checkout:       handlers.NewCheckoutHandler(checkoutService),
		Subscribers:    handlers.NewSubscribersHandler(subscriberService),
		Purchases:      handlers.NewPurchasesHandler(purchaseService),
		WS:             handlers.NewWSHandler(broadcaster, logger),
	})

	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	waitForShutdown(app, logger)
}

func waitForShutdown(app *fiber.App, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
