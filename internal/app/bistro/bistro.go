package bistro

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/bistro-backend/internal/cache"
	"github.com/magabrotheeeer/bistro-backend/internal/config"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/bistro-backend/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/bistro-backend/internal/paymentprovider"
	cartservice "github.com/magabrotheeeer/bistro-backend/internal/services/cart"
	menuservice "github.com/magabrotheeeer/bistro-backend/internal/services/menu"
	paymentservice "github.com/magabrotheeeer/bistro-backend/internal/services/payment"
	statsservice "github.com/magabrotheeeer/bistro-backend/internal/services/stats"
	userservice "github.com/magabrotheeeer/bistro-backend/internal/services/user"
	"github.com/magabrotheeeer/bistro-backend/internal/storage"
	"github.com/magabrotheeeer/bistro-backend/internal/storage/repository"
)

type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *storage.Storage
	cache    *cache.Cache
	rabbitmq *rabbitmq.Conn
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(ctx, cfg.MongoConnection)
	if err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	// Очередь чеков не обязательна для работы сервиса: при недоступном
	// брокере события просто не публикуются.
	var rabbitConn *rabbitmq.Conn
	if cfg.RabbitMQConnection.URL != "" {
		rabbitConn, err = rabbitmq.Connect(cfg.RabbitMQConnection.URL)
		if err != nil {
			logger.Warn("rabbitmq unavailable, receipt events disabled", slog.Any("err", err))
			rabbitConn = nil
		}
	}

	tokenMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.Stripe.SecretKey)

	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	menuService := menuservice.NewMenuService(menuRepo, cacheRedis, logger)
	userService := userservice.NewUserService(userRepo, logger)
	cartService := cartservice.NewCartService(cartRepo, logger)
	statsService := statsservice.NewStatsService(statsRepo, logger)

	var publisher paymentservice.ReceiptPublisher
	if rabbitConn != nil {
		publisher = rabbitConn
	}
	paymentService := paymentservice.NewPaymentService(paymentRepo, providerClient, publisher, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, tokenMaker,
		menuService, userService, cartService, paymentService, statsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		cache:    cacheRedis,
		rabbitmq: rabbitConn,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.rabbitmq != nil {
			_ = a.rabbitmq.Close()
		}
		if cerr := a.db.Close(timeoutCtx); cerr != nil {
			a.logger.Error("failed to close mongo connection", slog.Any("err", cerr))
		}
		return err
	}
}
