package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server is the HTTP API of the finance tracker
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *slog.Logger
}

// Options carries the dependencies the API is assembled from.
// A nil Registry uses a fresh registry exposed on /metrics.
type Options struct {
	Config   *config.Config
	DB       *gorm.DB
	Logger   *slog.Logger
	Registry *prometheus.Registry
	// DocsDir holds swag output; defaults to "docs"
	DocsDir string
}

func docsDir(dir string) string {
	if dir == "" {
		return "docs"
	}
	return dir
}

// New wires services, handlers and middleware into an echo instance
func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	uowFactory := repositories.NewUnitOfWorkFactory(opts.DB)
	metrics := services.NewPrometheusMetrics(registry)
	financeLogger := services.NewFinanceLogger(logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(registry)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger, registry))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  opts.Config.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(middleware.RateLimiterWithConfig(opts.Config.RateLimit.PerSecond, opts.Config.RateLimit.Burst))

	personService := services.NewPersonService(uowFactory, metrics, financeLogger)
	categoryService := services.NewCategoryService(uowFactory, metrics, financeLogger)
	transactionService := services.NewTransactionService(uowFactory, metrics, financeLogger, logger)

	routes := routeHandlers{
		health:       handlers.NewHealthCheckHandler(opts.DB),
		docs:         handlers.NewDocsHandler(docsDir(opts.DocsDir)),
		persons:      handlers.NewPersonHandler(personService),
		categories:   handlers.NewCategoryHandler(categoryService),
		transactions: handlers.NewTransactionHandler(transactionService),
		reports:      handlers.NewReportHandler(services.NewReportService(uowFactory, metrics, financeLogger, logger)),
		metrics:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	}
	if opts.Config.IsDevelopment() {
		routes.dev = handlers.NewDevHandler(
			services.NewHouseholdGenerator(0, personService, categoryService, transactionService),
		)
		logger.Warn("Development endpoints enabled", slog.String("path", "/api/v1/dev"))
	}
	registerRoutes(e, routes)

	return &Server{echo: e, cfg: opts.Config, logger: logger}
}

type routeHandlers struct {
	health       *handlers.HealthCheckHandler
	docs         *handlers.DocsHandler
	persons      *handlers.PersonHandler
	categories   *handlers.CategoryHandler
	transactions *handlers.TransactionHandler
	reports      *handlers.ReportHandler
	dev          *handlers.DevHandler
	metrics      http.Handler
}

func registerRoutes(e *echo.Echo, h routeHandlers) {
	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(h.metrics))
	e.GET("/docs/openapi.json", h.docs.ServeOpenAPI)

	api := e.Group("/api/v1")

	persons := api.Group("/persons")
	persons.GET("", h.persons.ListPersons)
	persons.POST("", h.persons.CreatePerson)
	persons.GET("/:id", h.persons.GetPerson)
	persons.PUT("/:id", h.persons.UpdatePerson)
	persons.DELETE("/:id", h.persons.DeletePerson)

	categories := api.Group("/categories")
	categories.GET("", h.categories.ListCategories)
	categories.POST("", h.categories.CreateCategory)
	categories.GET("/:id", h.categories.GetCategory)
	categories.DELETE("/:id", h.categories.DeleteCategory)

	transactions := api.Group("/transactions")
	transactions.GET("", h.transactions.ListTransactions)
	transactions.POST("", h.transactions.CreateTransaction)

	reports := api.Group("/reports")
	reports.GET("/persons", h.reports.TotalsByPerson)
	reports.GET("/categories", h.reports.TotalsByCategory)

	if h.dev != nil {
		api.POST("/dev/sample-data", h.dev.GenerateSampleData)
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is canceled, then shuts down within the configured timeout
func (s *Server) Start(ctx context.Context) error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.echo,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting finance tracker API", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info("Server stopped gracefully")
	return nil
}
