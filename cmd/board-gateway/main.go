package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"board-gateway/internal/adapter/gateway"
	adapterhandler "board-gateway/internal/adapter/handler"
	"board-gateway/internal/domain"
	infracache "board-gateway/internal/infrastructure/cache"
	infratoken "board-gateway/internal/infrastructure/token"
	"board-gateway/internal/usecase"

	"board-gateway/config"
	appmiddleware "board-gateway/middleware"
	"board-gateway/utils/logger"
	"board-gateway/utils/otel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Handle healthcheck subcommand (for Docker healthcheck in distroless image)
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Initialize OpenTelemetry
	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	// Initialize structured logger
	logger.Init(otelCfg.Enabled)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "configuration loaded",
		"directory_url", cfg.DirectoryURL,
		"port", cfg.Port,
		"identity_lookup_timeout", cfg.IdentityLookupTimeout)

	// Infrastructure
	directory := gateway.NewDirectoryGateway(cfg.DirectoryURL, cfg.DirectoryTimeout)
	identityCache := infracache.NewIdentityCache(directory, cfg.IdentityLookupTimeout, slog.Default())
	verifier := infratoken.NewJWTVerifier(infratoken.VerifierConfig{
		Secret:   cfg.TokenSecret,
		Issuer:   cfg.TokenIssuer,
		Audience: cfg.TokenAudience,
	})

	// Usecases
	authorizeUC := usecase.NewAuthorizeOperation(verifier, identityCache, slog.Default())
	getBoardUC := usecase.NewGetBoard(directory, slog.Default())
	listCardListsUC := usecase.NewListCardLists(directory, slog.Default())
	createBoardUC := usecase.NewCreateBoard(directory, slog.Default())

	// Handlers
	boardHandler := adapterhandler.NewBoardHandler(getBoardUC, listCardListsUC, createBoardUC)
	currentUserHandler := adapterhandler.NewCurrentUserHandler()
	internalHandler := adapterhandler.NewInternalHandler(identityCache)
	healthHandler := adapterhandler.NewHealthHandler()

	// Setup Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Security middleware
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RequestID())

	// OpenTelemetry tracing
	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
		e.Use(appmiddleware.OTelStatusMiddleware())
	}

	// Request logging
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := c.Request().Context()
			if v.Error == nil {
				slog.InfoContext(rctx, "request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				slog.ErrorContext(rctx, "request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())

	// Authorization tiers: every route declares its class here, once.
	auth := appmiddleware.NewAuthMiddleware(authorizeUC)
	validityOnly := auth.Require(domain.ClassValidityOnly)
	identityRequired := auth.Require(domain.ClassIdentityRequired)

	// Rate limiters per endpoint group
	readRL := appmiddleware.NewRateLimiter(300.0/60.0, 30) // 300 req/min
	writeRL := appmiddleware.NewRateLimiter(60.0/60.0, 10) // 60 req/min
	internalRL := appmiddleware.NewRateLimiter(10.0/60.0, 3)

	// Board data routes (validity-only: result does not depend on caller)
	e.GET("/v1/boards/:id", boardHandler.HandleGet, readRL.Middleware(), validityOnly)
	e.GET("/v1/boards/:id/card-lists", boardHandler.HandleCardLists, readRL.Middleware(), validityOnly)

	// Identity-required routes
	e.GET("/v1/me", currentUserHandler.Handle, readRL.Middleware(), identityRequired)
	e.POST("/v1/boards", boardHandler.HandleCreate, writeRL.Middleware(), identityRequired)

	e.GET("/health", healthHandler.Handle)

	// Internal routes (protected by shared secret)
	internalGroup := e.Group("/internal",
		internalRL.Middleware(),
	)
	if cfg.InternalSharedSecret != "" {
		internalGroup.Use(appmiddleware.InternalAuth(cfg.InternalSharedSecret))
	}
	internalGroup.POST("/invalidate/:authenticationId", internalHandler.HandleInvalidate)

	// Start server with errgroup for graceful shutdown
	address := fmt.Sprintf(":%s", cfg.Port)
	slog.InfoContext(ctx, "starting board-gateway server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8890"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
