package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/label-system/docs"
	"github.com/99minutos/label-system/internal/api/handler"
	"github.com/99minutos/label-system/internal/api/middleware"
	"github.com/99minutos/label-system/internal/core/catalog"
	"github.com/99minutos/label-system/internal/core/domain"
	"github.com/99minutos/label-system/internal/core/ports"
)

// Deps is everything the router needs to build its handlers.
type Deps struct {
	Catalog   *catalog.Catalog
	Labels    ports.LabelService
	Templates ports.TemplateService
	Exports   ports.ExportService
	Batch     handler.BatchSubmitter
	// Health lists the dependencies checked by /health/ready.
	Health    map[string]handler.Pinger
	JWTSecret string
	Log       zerolog.Logger
	// Registerer receives the HTTP request metrics. Defaults to the global
	// Prometheus registerer.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	reg := d.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "labeld",
		Registerer: reg,
	}))

	// --- Handlers ---
	healthHandler := handler.NewHealthHandler(d.Health)
	courierHandler := handler.NewCourierHandler(d.Catalog, d.Labels)
	labelHandler := handler.NewLabelHandler(d.Labels, d.Exports, d.Batch)
	templateHandler := handler.NewTemplateHandler(d.Templates, d.Labels, d.Log)

	// --- Health probes and ops (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness: is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness: is the template store up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Couriers ---
	v1.GET("/couriers", courierHandler.List)
	v1.GET("/couriers/:key", courierHandler.Get)
	v1.POST("/couriers/:key/tracking-numbers", courierHandler.IssueTracking)

	// --- Labels ---
	v1.POST("/labels", labelHandler.Generate)
	v1.POST("/labels/batch", labelHandler.Batch)
	v1.POST("/labels/export", labelHandler.Export)

	// --- Templates (mutation guarded when a JWT secret is configured) ---
	guard := middleware.Guard(d.JWTSecret, domain.RoleAdmin, domain.RoleOperator)
	v1.GET("/templates", templateHandler.List)
	v1.GET("/templates/:name", templateHandler.Get)
	v1.PUT("/templates/:name", templateHandler.Put, guard...)
	v1.DELETE("/templates/:name", templateHandler.Delete, guard...)
	v1.POST("/templates/:name/labels", templateHandler.GenerateFrom)

	return e
}
