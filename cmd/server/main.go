package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canteen/internal/auth"
	"canteen/internal/config"
	"canteen/internal/handler"
	"canteen/internal/invoice"
	"canteen/internal/logger"
	"canteen/internal/menu"
	"canteen/internal/metrics"
	"canteen/internal/middleware"
	"canteen/internal/order"
	"canteen/internal/user"

	"go.uber.org/zap"
)

var startServerFunc = func(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := newServer(ctx, cfg)
	if err != nil {
		return err
	}

	logger.L().Info("canteen server running", zap.String("port", cfg.AppPort), zap.String("invoice_engine", cfg.InvoiceEngine))
	return startServerFunc(ctx, ":"+cfg.AppPort, router)
}

// newServer wires repositories, services and middleware for cfg. The rate
// limiter's cleanup loop stops when ctx is done.
func newServer(ctx context.Context, cfg *config.Config) (http.Handler, error) {
	reg := metrics.NewRegistry()

	sessions, err := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	menuSvc := menu.NewService(menu.NewRepository())

	var orderOpts []order.Option
	if cfg.StrictStatusTransitions {
		orderOpts = append(orderOpts, order.WithStrictTransitions())
	}
	orderSvc := order.NewService(order.NewRepository(), menuSvc, orderOpts...)

	userSvc := user.NewService(user.NewRepository())
	if err := user.SeedAdmin(ctx, userSvc, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
		return nil, err
	}

	h := &handler.Handler{
		Menu:     menuSvc,
		Orders:   orderSvc,
		Users:    userSvc,
		Invoices: invoice.NewRenderer(newEngine(cfg), cfg.InvoiceTimeout, reg),
		Sessions: sessions,
		Metrics:  reg,
	}

	limiter := middleware.NewRateLimiter(reg)
	go limiter.Run(ctx)

	return setupRouter(h.Routes(), sessions, limiter), nil
}

func newEngine(cfg *config.Config) invoice.Engine {
	if cfg.InvoiceEngine == config.EngineWkhtmltopdf {
		return invoice.WkhtmltopdfEngine{Path: cfg.WkhtmltopdfPath}
	}
	return invoice.FPDFEngine{}
}

func setupRouter(routes http.Handler, sessions middleware.SessionParser, limiter *middleware.RateLimiter) http.Handler {
	return middleware.Chain(routes,
		logger.RequestIDMiddleware,
		middleware.SessionMiddleware(sessions),
		middleware.LoggingMiddleware,
		limiter.Middleware,
	)
}
