package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/agendacraft/errors"
	"github.com/johnquangdev/agendacraft/pkg/config"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type namedCheck struct {
	name    string
	checker HealthChecker
}

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	agendaHandler     *Agenda
	generationHandler *Generation // nil when the audit log is disabled
	archiveHandler    *Archive    // nil when the source archive is disabled
	sessionMW         echo.MiddlewareFunc
	checks            []namedCheck
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	agendaHandler *Agenda,
	generationHandler *Generation,
	archiveHandler *Archive,
	sessionMW echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:               cfg,
		agendaHandler:     agendaHandler,
		generationHandler: generationHandler,
		archiveHandler:    archiveHandler,
		sessionMW:         sessionMW,
	}
}

// WithHealthCheck adds a dependency reported by /health
func (rt *Router) WithHealthCheck(name string, checker HealthChecker) *Router {
	rt.checks = append(rt.checks, namedCheck{name: name, checker: checker})
	return rt
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAgendaRoutes(v1)
}

// setupAgendaRoutes configures agenda session routes
func (rt *Router) setupAgendaRoutes(g *echo.Group) {
	agendaGroup := g.Group("/agenda", rt.sessionMW)

	agendaGroup.GET("", rt.agendaHandler.GetSession)
	agendaGroup.DELETE("", rt.agendaHandler.Reset)
	agendaGroup.POST("/upload", rt.agendaHandler.Upload)
	agendaGroup.PUT("/duration", rt.agendaHandler.UpdateDuration)
	agendaGroup.GET("/export", rt.agendaHandler.Export)

	if rt.archiveHandler != nil {
		agendaGroup.GET("/uploads", rt.archiveHandler.ListUploads)
	} else {
		agendaGroup.GET("/uploads", rt.featureDisabled("Source archive"))
	}

	// Audit records are scoped to the caller's session
	if rt.generationHandler != nil {
		agendaGroup.GET("/generations", rt.generationHandler.List)
		agendaGroup.GET("/generations/:id", rt.generationHandler.Get)
	} else {
		disabled := rt.featureDisabled("Generation audit log")
		agendaGroup.GET("/generations", disabled)
		agendaGroup.GET("/generations/:id", disabled)
	}
}

// featureDisabled answers 501 for optional integrations that are switched off
func (rt *Router) featureDisabled(feature string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return HandleError(nil, c, errors.ErrFeatureDisabled(feature))
	}
}

// healthCheck returns health status, 503 when a dependency is unreachable
func (rt *Router) healthCheck(c echo.Context) error {
	status, code := "ok", http.StatusOK
	body := map[string]interface{}{
		"environment": rt.cfg.Server.Environment,
	}

	if len(rt.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		deps := make(map[string]string, len(rt.checks))
		for _, check := range rt.checks {
			if err := check.checker.Ping(ctx); err != nil {
				deps[check.name] = err.Error()
				status, code = "degraded", http.StatusServiceUnavailable
				continue
			}
			deps[check.name] = "ok"
		}
		body["dependencies"] = deps
	}

	body["status"] = status
	return c.JSON(code, body)
}
