package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront-be/internal/auth"
	"storefront-be/internal/cart"
	"storefront-be/internal/checkout"
	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/handler"
	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/payment"
	"storefront-be/internal/product"
	"storefront-be/internal/session"
	"storefront-be/internal/shipping"
	"storefront-be/internal/sms"
	"storefront-be/internal/user"
	"storefront-be/internal/verification"
)

var (
	initDBFunc      = db.InitDB
	initRedisFunc   = db.InitRedis
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.AppEnv,
		}); err != nil {
			logger.L().Warn("sentry init failed", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	database := initDBFunc(cfg)
	defer database.Close()

	rdb := initRedisFunc(cfg)
	defer rdb.Close()

	router := newServer(cfg, database, rdb)

	addr := ":" + cfg.AppPort
	logger.L().Info("storefront server starting", zap.String("addr", addr), zap.String("env", cfg.AppEnv))
	return startServerFunc(addr, router)
}

// newServer wires every service onto one router.
func newServer(cfg *config.Config, database *sql.DB, rdb *redis.Client) http.Handler {
	reg := metrics.NewRegistry()
	tokens := auth.NewTokens(cfg.JWTSecret, auth.DefaultTokenTTL)

	sender := sms.WithMetrics(sms.NewSender(cfg), reg)

	gateway := payment.NewTossGateway(cfg.TossSecretKey)
	sessions := session.NewRedisStore(rdb, cfg.SessionTTL)
	orders := order.NewService(order.NewRepository(database), sender)

	h := handler.New(handler.Deps{
		Catalog:      product.DefaultCatalog(),
		Sessions:     sessions,
		Carts:        cart.NewService(session.NewCartStore(sessions)),
		Users:        user.NewService(user.NewRepository(database), tokens),
		Verification: verification.NewService(verification.NewRepository(database), sender, reg),
		Orders:       orders,
		Checkout: checkout.NewService(orders, gateway, sender, reg, checkout.Options{
			ClientKey:     cfg.TossClientKey,
			PublicBaseURL: cfg.PublicBaseURL,
		}),
		Shipping:      shipping.NewCachedTracker(shipping.NewMockCarrier(), rdb, cfg.ShippingCacheTTL, reg),
		Tokens:        tokens,
		Metrics:       reg,
		AdminKey:      cfg.AdminAPIKey,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.AppEnv == "production",
	})

	return setupRouter(cfg, tokens, h)
}

func setupRouter(cfg *config.Config, tokens *auth.Tokens, h *handler.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(logger.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CORS(cfg.PublicBaseURL))
	r.Use(middleware.AuthMiddleware(tokens))
	r.Use(middleware.RateLimitMiddleware)

	h.Mount(r)
	return r
}

// startServer serves until SIGINT or SIGTERM, then drains in-flight requests.
func startServer(addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.L().Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
