package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mitcampus/campus-companion/internal/api/handler"
	"github.com/mitcampus/campus-companion/internal/api/middleware"
	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

// Deps is everything the router needs; main assembles it.
type Deps struct {
	Identity      ports.IdentityService
	Announcements ports.AnnouncementService
	Community     ports.CommunityService
	Chat          ports.ChatService
	Reports       ports.ReportService
	Admin         ports.AdminService
	Dashboard     ports.DashboardService
	Support       domain.SupportDirectory

	Tokens   *middleware.Tokens
	Sessions *session.Manager

	HealthChecks map[string]func(ctx context.Context) error
	// Registry receives the HTTP metrics. Nil means the default registry.
	Registry *prometheus.Registry

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	if d.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Namespace:  "campus",
			Registerer: d.Registry,
		}))
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Registry}))
	} else {
		e.Use(echoprometheus.NewMiddleware("campus"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Health probes and docs (no auth required) ---
	health := handler.NewHealthHandler(d.HealthChecks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(d.Identity, d.Tokens)
	sessionHandler := handler.NewSessionHandler(d.Identity)
	boardHandler := handler.NewBoardHandler(d.Dashboard, d.Announcements)
	communityHandler := handler.NewCommunityHandler(d.Community)
	chatHandler := handler.NewChatHandler(d.Chat)
	reportHandler := handler.NewReportHandler(d.Reports, d.Support)
	adminHandler := handler.NewAdminHandler(d.Admin)

	optionalAuth := middleware.OptionalAuth(d.Tokens, d.Sessions)
	auth := middleware.Auth(d.Tokens, d.Sessions)
	requireUser := middleware.RequireUser()
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Entry points ---
	a := e.Group("/auth")
	a.POST("/login", authHandler.Login, optionalAuth)
	a.POST("/register", authHandler.Register, optionalAuth)
	a.POST("/guest", authHandler.Guest, optionalAuth)
	a.POST("/logout", authHandler.Logout, auth)

	// --- Session-scoped API ---
	v1 := e.Group("/v1", auth)
	v1.GET("/session", sessionHandler.Current)

	app := v1.Group("", requireUser)
	app.PATCH("/profile", sessionHandler.UpdateProfile)
	app.GET("/navigation", sessionHandler.Navigation)
	app.GET("/dashboard", boardHandler.Dashboard)
	app.GET("/announcements", boardHandler.Announcements)

	app.GET("/community/posts", communityHandler.List)
	app.POST("/community/posts", communityHandler.Create)
	app.POST("/community/posts/:id/vote", communityHandler.Vote)

	app.GET("/chat", chatHandler.Open)
	app.POST("/chat/messages", chatHandler.Ask)

	app.GET("/support", reportHandler.Support)
	app.GET("/reports/categories", reportHandler.Categories)
	app.POST("/reports", reportHandler.Submit)

	app.GET("/admin/dashboard", adminHandler.Dashboard)
	app.POST("/admin/announcements", adminHandler.Publish, adminOnly)
	app.GET("/admin/reports/export", adminHandler.ExportReports, adminOnly)

	return e
}

// requestLogger logs one structured line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
