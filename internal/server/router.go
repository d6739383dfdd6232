package server

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"interior-studio-backend/internal/apperrors"
	"interior-studio-backend/internal/handlers"
	"interior-studio-backend/internal/metrics"
	"interior-studio-backend/internal/middleware"
	"interior-studio-backend/internal/realtime"
	"interior-studio-backend/internal/services"
	"interior-studio-backend/internal/store"
)

var configureValidator sync.Once

type Options struct {
	Logger *slog.Logger
	// Registry receives the application collectors and backs /metrics.
	// A fresh registry is created when nil.
	Registry       *prometheus.Registry
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server bundles the router with the process-lifetime state it serves.
type Server struct {
	Router  *gin.Engine
	Store   *store.MemoryStore
	Hub     *realtime.Hub
	Metrics *metrics.Metrics
}

// New wires an empty store, the services and the event hub into a gin router.
func New(opts Options) *Server {
	configureValidator.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			apperrors.UseJSONFieldNames(v)
		}
	})

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := metrics.New(registry)
	st := store.NewMemoryStore()
	hub := realtime.NewHub(logger, m)

	layoutsHandler := handlers.NewLayoutsHandler(services.NewLayoutService(st, hub, m, logger))
	rendersHandler := handlers.NewRendersHandler(services.NewRenderService(st, hub, m, logger))
	materialsHandler := handlers.NewMaterialsHandler(services.NewMaterialService(st, hub, m, logger))
	settingsHandler := handlers.NewSettingsHandler(services.NewSettingsService(st, hub, m, logger))
	eventsHandler := handlers.NewEventsHandler(hub)

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(middleware.CORS())
	router.Use(m.Middleware())
	router.Use(middleware.ErrorHandler(logger))

	// Health check and operational endpoints
	router.GET("/health", handlers.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	api.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	// Layouts
	api.POST("/layouts", layoutsHandler.CreateLayout)
	api.GET("/layouts", layoutsHandler.ListLayouts)
	api.GET("/layouts/:layout_id", layoutsHandler.GetLayout)

	// Renders
	api.POST("/renders", rendersHandler.RequestRender)
	api.GET("/renders", rendersHandler.ListRenders)
	api.GET("/renders/:job_id", rendersHandler.GetRender)
	api.POST("/renders/:job_id/complete", rendersHandler.CompleteRender)

	// Material edits
	api.POST("/materials", materialsHandler.RequestMaterialEdit)
	api.GET("/materials", materialsHandler.ListMaterialEdits)
	api.GET("/materials/:edit_id", materialsHandler.GetMaterialEdit)
	api.POST("/materials/:edit_id/complete", materialsHandler.CompleteMaterialEdit)

	// Settings
	api.GET("/settings", settingsHandler.ReadSettings)
	api.POST("/settings", settingsHandler.SaveSettings)

	// Event stream
	api.GET("/events", eventsHandler.Stream)

	return &Server{
		Router:  router,
		Store:   st,
		Hub:     hub,
		Metrics: m,
	}
}
