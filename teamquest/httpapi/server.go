package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/teamquest/teamquest/features/bundle"
)

// Config holds the HTTP settings that are not part of the handler bundle.
type Config struct {
	Port          int
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool
	AuthRateLimit float64 // requests per second per client IP
	AuthRateBurst int
	Location      *time.Location // local dates are computed in this zone
	BcryptCost    int            // 0 means bcrypt.DefaultCost
}

// Server is the TeamQuest JSON API.
type Server struct {
	echo        *echo.Echo
	handlers    *bundle.Bundle
	config      Config
	sessions    SessionCodec
	authLimiter *ipRateLimiter
	metrics     *httpMetrics
	logger      *zap.Logger
	now         func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// NewServer registers all routes. Metrics are registered with registry and served on /metrics.
func NewServer(
	handlers *bundle.Bundle,
	cfg Config,
	logger *zap.Logger,
	registry *prometheus.Registry,
	opts ...Option,
) *Server {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	s := &Server{
		echo:        e,
		handlers:    handlers,
		config:      cfg,
		sessions:    NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL),
		authLimiter: newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
		metrics:     newHTTPMetrics(registry),
		logger:      logger,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.RequestID())
	e.Use(s.requestLogger())
	e.Use(s.metrics.middleware())
	e.Use(middleware.Recover())

	s.registerRoutes(registry)

	return s
}

func (s *Server) registerRoutes(registry *prometheus.Registry) {
	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	v1 := s.echo.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", s.handleSignUp, s.rateLimitAuth)
	auth.POST("/login", s.handleLogin, s.rateLimitAuth)
	auth.POST("/logout", s.handleLogout)

	private := v1.Group("", s.requireSession)
	private.GET("/me", s.handleMe)
	private.GET("/dashboard", s.handleDashboard)

	private.POST("/teams", s.handleCreateTeam)
	private.POST("/teams/join", s.handleJoinTeam)
	private.GET("/teams/:team_id", s.handleTeamDetail)
	private.POST("/teams/:team_id/invite/regenerate", s.handleRegenerateInvite)
	private.POST("/teams/:team_id/invite/deactivate", s.handleDeactivateInvite)
	private.POST("/teams/:team_id/dissolve", s.handleDissolveTeam)

	private.GET("/quests/today", s.handleTodaySet)
	private.POST("/quests/complete/:item_id", s.handleCompleteQuest)
	private.GET("/quests/progress", s.handleTodayProgress)
	private.GET("/quests/mvp", s.handleTodayMVP)

	private.GET("/notifications/team/:team_id", s.handleNotificationFeed)
	private.POST("/notifications/team/:team_id/read-all", s.handleMarkAllRead)
	private.POST("/notifications/:notification_id/read", s.handleMarkRead)
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start blocks until the server stops. A graceful shutdown returns http.ErrServerClosed.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))

	return s.echo.Start(addr)
}

// Shutdown stops accepting requests and waits for running ones until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
