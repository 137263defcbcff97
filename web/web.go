// Package web provides the HTTP server for the Evolvo marketplace:
// routing, middleware, service wiring and background job scheduling.
package web

import (
	"context"
	"embed"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/evolvo-uz/evolvo/config"
	"github.com/evolvo-uz/evolvo/logger"
	"github.com/evolvo-uz/evolvo/util/common"
	"github.com/evolvo-uz/evolvo/web/controller"
	"github.com/evolvo-uz/evolvo/web/job"
	"github.com/evolvo-uz/evolvo/web/locale"
	"github.com/evolvo-uz/evolvo/web/middleware"
	"github.com/evolvo-uz/evolvo/web/service"
	"github.com/evolvo-uz/evolvo/web/unsplash"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

//go:embed translation/*
var i18nFS embed.FS

// Server is the marketplace web server with its controllers, services
// and scheduled jobs.
type Server struct {
	cfg *config.Config

	httpServer *http.Server
	listener   net.Listener

	auth      *controller.AuthController
	public    *controller.PublicController
	dashboard *controller.DashboardController
	admin     *controller.AdminController

	orderService *service.OrderService
	tgbot        *service.Tgbot
	limiter      *middleware.LoginRateLimiter

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server bound to the given configuration.
func NewServer(cfg *config.Config) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{cfg: cfg, ctx: ctx, cancel: cancel}
}

// initRouter constructs every service exactly once, injects them into
// the controllers and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if s.cfg.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	if err := locale.InitLocalizer(i18nFS); err != nil {
		return nil, err
	}
	engine.Use(locale.LocalizerMiddleware())

	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/admin/"}),
	))

	userService := &service.UserService{}
	authService := service.NewAuthService(s.cfg, userService)
	catalogService := &service.CatalogService{}
	blogService := &service.BlogService{}
	portfolioService := &service.PortfolioService{}
	clientService := &service.ClientService{}
	recommendationService := service.NewRecommendationService(s.cfg.GeminiAPIKey)
	unsplashClient := unsplash.New(s.cfg.UnsplashAccessKey)

	s.tgbot = service.NewTgbot(s.cfg.TgBotToken, s.cfg.TgChatID)
	var notifier service.Notifier
	if s.tgbot.Enabled() {
		notifier = s.tgbot
	}
	s.orderService = service.NewOrderService(catalogService, notifier)

	s.limiter = middleware.NewLoginRateLimiter(middleware.DefaultLoginRateLimitConfig())

	secureCookie := s.cfg.Production
	api := engine.Group("/api")
	s.auth = controller.NewAuthController(api, authService, userService, s.tgbot, s.limiter, secureCookie)
	s.public = controller.NewPublicController(api, catalogService, blogService, portfolioService, s.orderService)
	s.dashboard = controller.NewDashboardController(api, userService, recommendationService)
	s.admin = controller.NewAdminController(api, authService, userService, catalogService, s.orderService,
		clientService, blogService, portfolioService, unsplashClient, secureCookie)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewOrderDigestJob(s.orderService, s.tgbot))
	s.cron.AddJob("@every 5m", job.NewRateLimitSweepJob(s.limiter))
}

// Start initializes the router, binds the listener and begins serving.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(s.cfg.Listen, strconv.Itoa(s.cfg.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the HTTP server and the cron scheduler.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
