package api

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/drishti-ops/drishti/internal/api/docs"
	"github.com/drishti-ops/drishti/internal/api/handler"
	"github.com/drishti-ops/drishti/internal/api/middleware"
	"github.com/drishti-ops/drishti/internal/camera"
	"github.com/drishti-ops/drishti/internal/escalation"
	"github.com/drishti-ops/drishti/internal/metrics"
	"github.com/drishti-ops/drishti/internal/orchestrator"
	"github.com/drishti-ops/drishti/internal/session"
	"github.com/drishti-ops/drishti/internal/store"
	"github.com/drishti-ops/drishti/internal/ws"
)

type Dependencies struct {
	Store        *store.Store
	Orchestrator *orchestrator.Orchestrator
	Sessions     *session.Manager
	Escalator    *escalation.Escalator
	Frames       camera.FrameSource
	Metrics      *metrics.Metrics
}

type Router struct {
	app         *fiber.App
	logger      *slog.Logger
	deps        *Dependencies
	rateLimiter *middleware.RateLimiter
	wsHub       *ws.Hub
	cancelHub   context.CancelFunc
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Drishti Event AI",
		BodyLimit:    32 * 1024 * 1024,
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints (no auth required)
	var probe handler.CameraProbe
	if r.deps != nil {
		probe = r.deps.Frames
	}
	healthHandler := handler.NewHealthHandler(probe)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// Prometheus scrape endpoint
	if r.deps != nil && r.deps.Metrics != nil {
		r.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(
			r.deps.Metrics.Registry(),
			promhttp.HandlerOpts{},
		)))
	}

	// API v1 group with authentication
	v1 := r.app.Group("/v1")

	// Only configure authenticated routes if dependencies were provided
	if r.deps != nil {
		// WebSocket hub feeding every connected console
		r.wsHub = ws.NewHub()
		hubCtx, hubCancel := context.WithCancel(context.Background())
		r.cancelHub = hubCancel
		go r.wsHub.Run(hubCtx)
		r.deps.Store.Subscribe(r.wsHub.StoreListener())

		// Session open endpoint stays outside auth
		sessionHandler := handler.NewSessionHandler(r.deps.Sessions, r.logger)
		v1.Post("/session", sessionHandler.Login)

		// Auth middleware
		v1.Use(middleware.Auth(r.deps.Sessions))

		// Rate limiting (per session) - must come after auth
		r.rateLimiter = middleware.NewRateLimiter(middleware.DefaultRateLimiterConfig())
		v1.Use(r.rateLimiter.Handler())

		v1.Delete("/session", sessionHandler.Logout)

		// Zone scan routes
		scanHandler := handler.NewScanHandler(r.deps.Orchestrator, r.logger)
		dashboardHandler := handler.NewDashboardHandler(r.deps.Store, r.logger)
		v1.Get("/zones", dashboardHandler.Zones)
		v1.Post("/zones/:index/scan", scanHandler.Scan)
		v1.Post("/zones/:index/density", scanHandler.Density)

		// Face-match sweep
		searchHandler := handler.NewSearchHandler(r.deps.Orchestrator, r.logger)
		v1.Post("/search/face", searchHandler.Find)

		// Density analysis from uploaded stills
		densityHandler := handler.NewDensityHandler(r.deps.Orchestrator, r.logger)
		v1.Post("/analysis/density", densityHandler.Analyze)

		// Assistant endpoints
		assistHandler := handler.NewAssistHandler(r.deps.Orchestrator, r.logger)
		v1.Post("/assist/question", assistHandler.Question)
		v1.Post("/assist/summary", assistHandler.Summary)

		// Dashboard read side
		v1.Get("/alerts", dashboardHandler.Alerts)
		v1.Get("/density/history", dashboardHandler.DensityHistory)

		// Alarm control
		alarmHandler := handler.NewAlarmHandler(r.deps.Orchestrator, r.wsHub, r.logger)
		v1.Get("/alarm", alarmHandler.State)
		v1.Post("/alarm/silence", alarmHandler.Silence)

		// WebSocket endpoint
		v1.Get("/ws", ws.UpgradeMiddleware(), ws.Handler(r.wsHub))
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Hub() *ws.Hub {
	return r.wsHub
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	// Stop WebSocket hub
	if r.cancelHub != nil {
		r.cancelHub()
	}

	// Stop rate limiter cleanup goroutine
	if r.rateLimiter != nil {
		r.rateLimiter.Stop()
	}

	// Release the alarm so the siren never outlives the process
	if r.deps != nil && r.deps.Escalator != nil {
		r.deps.Escalator.Close()
	}

	return r.app.Shutdown()
}
