package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commercekit/storefront-bff/internal/api/handlers"
	"github.com/commercekit/storefront-bff/internal/api/middleware"
	"github.com/commercekit/storefront-bff/internal/commerce"
	"github.com/commercekit/storefront-bff/internal/config"
	"github.com/commercekit/storefront-bff/internal/health"
	"github.com/commercekit/storefront-bff/internal/metrics"
	repository "github.com/commercekit/storefront-bff/internal/repositories"
	service "github.com/commercekit/storefront-bff/internal/services"
	"github.com/commercekit/storefront-bff/internal/session"
	"github.com/commercekit/storefront-bff/internal/telemetry"
	sendgridClient "github.com/commercekit/storefront-bff/pkg/sendgrid"
	stripeClient "github.com/commercekit/storefront-bff/pkg/stripe"
)

func main() {

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to set up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, notificationRepo, err := repository.New(cfg)
	if err != nil {
		slog.Error("Failed to connect to the notification database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("Error closing database connection", slog.String("error", err.Error()))
		}
	}()

	redisClient, err := session.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionStore := session.NewRedisStore(redisClient, cfg.Session.TTL)

	backend := commerce.NewHTTPClient(&cfg.CommerceBackend)
	mailer := sendgridClient.NewMailer(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	psp := stripeClient.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)

	notificationService := service.NewNotificationService(notificationRepo, mailer)
	cartService := service.NewCartService(backend, cfg.CommerceBackend.Currency)
	checkoutService := service.NewCheckoutService(cartService, backend, notificationService)
	orderService := service.NewOrderService(backend)
	paymentService := service.NewPaymentService(backend)

	cartHandler := handlers.NewCartHandler(cartService, sessionStore)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, sessionStore)
	orderHandler := handlers.NewOrderHandler(orderService, sessionStore)
	webhookHandler := handlers.NewPaymentWebhookHandler(paymentService, psp)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	sessionMiddleware := middleware.NewSessionMiddleware(sessionStore, cfg.Session.CookieName)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Failed to set up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Every storefront action goes through optional auth then session
	// resolution, so handlers always see an explicit session binding.
	withSession := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Optional(sessionMiddleware.Resolve(h))
	}
	withAccount := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Require(sessionMiddleware.Resolve(h))
	}

	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/cart", withSession(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart", withSession(cartHandler.UpdateCart()))
	routerMux.HandleFunc("POST /api/v1/cart/reset", withSession(cartHandler.ResetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/line-items", withSession(cartHandler.AddLineItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/line-items", withSession(cartHandler.UpdateLineItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart/line-items", withSession(cartHandler.RemoveLineItem()))
	routerMux.HandleFunc("POST /api/v1/cart/replicate", withSession(cartHandler.ReplicateCart()))
	routerMux.HandleFunc("POST /api/v1/cart/checkout", withSession(checkoutHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/shipping-methods", withSession(cartHandler.GetShippingMethods()))
	routerMux.HandleFunc("GET /api/v1/cart/shipping-methods", withSession(cartHandler.GetAvailableShippingMethods()))
	routerMux.HandleFunc("POST /api/v1/cart/shipping-method", withSession(cartHandler.SetShippingMethod()))
	routerMux.HandleFunc("POST /api/v1/cart/payments", withSession(cartHandler.AddPayment()))
	routerMux.HandleFunc("PATCH /api/v1/cart/payments", withSession(cartHandler.UpdatePayment()))
	routerMux.HandleFunc("POST /api/v1/cart/discounts", withSession(cartHandler.RedeemDiscount()))
	routerMux.HandleFunc("DELETE /api/v1/cart/discounts", withSession(cartHandler.RemoveDiscount()))
	routerMux.HandleFunc("GET /api/v1/cart/checkout-token", withSession(cartHandler.GetCheckoutSessionToken()))
	routerMux.HandleFunc("GET /api/v1/orders", withAccount(orderHandler.QueryOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/order", withSession(orderHandler.GetOrder()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", webhookHandler.HandleWebhook())
	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("Server is starting", slog.String("address", cfg.Addr), slog.String("env", cfg.Env))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}
