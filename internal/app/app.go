package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"gruenderai_backend/internal/config"
	"gruenderai_backend/internal/controller"
	"gruenderai_backend/internal/middleware"
	"gruenderai_backend/internal/repository"
	"gruenderai_backend/internal/scoring"
	"gruenderai_backend/internal/service"
	"gruenderai_backend/pkg/configwatcher"
	"gruenderai_backend/pkg/logger"
	"gruenderai_backend/pkg/monitoring"
	"gruenderai_backend/pkg/security"
	"gruenderai_backend/pkg/tracing"
)

type App struct {
	Config *config.Config
	Router *gin.Engine

	services        *services
	tracerProvider  *sdktrace.TracerProvider
	sessionTTL      atomic.Int64
	configCallbacks []func(*config.Config)
}

type repositories struct {
	questions *repository.QuestionRepository
	sessions  repository.SessionStore
}

type services struct {
	assessment *service.AssessmentService
}

type controllers struct {
	assessment *controller.AssessmentController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		questions: repository.NewQuestionRepository(),
		sessions:  repository.NewMemorySessionStore(),
	}
}

func (a *App) initServices(repos *repositories) *services {
	engine := scoring.NewEngine(repos.questions.All())
	return &services{
		assessment: service.NewAssessmentService(repos.questions, repos.sessions, engine),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		assessment: controller.NewAssessmentController(s.assessment),
		health:     controller.NewHealthController(s.assessment),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		for range ticker.C {
			ttl := time.Duration(a.sessionTTL.Load())
			if ttl <= 0 {
				continue
			}
			if purged := s.assessment.PurgeStaleSessions(ttl); purged > 0 {
				logger.Log.Info("Purged stale sessions", zap.Int("count", purged))
			}
		}
	}()
}

// applyConfig is called by the config watcher with a freshly loaded
// config. Only settings that are safe to change at runtime take effect:
// the log level and the session TTL.
func (a *App) applyConfig(cfg *config.Config) {
	logger.SetLevel(cfg.Server.Mode)
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Config reloaded", zap.String("mode", cfg.Server.Mode))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}
	app.sessionTTL.Store(int64(cfg.Session.TTL))

	repos := app.initRepositories()
	services := app.initServices(repos)
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()
	monitoring.RegisterActiveSessions(func() float64 {
		return float64(repos.sessions.Count())
	})

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("gruenderai-assessment", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(func(cfg *config.Config) {
		app.sessionTTL.Store(int64(cfg.Session.TTL))
	})

	app.startBackgroundTasks(services)

	if cfg.ConfigPath != "" {
		go configwatcher.WatchConfig(filepath.Join(cfg.ConfigPath, "config.yaml"), app.applyConfig)
	}

	logger.Log.Info("Question bank loaded", zap.Int("questions", repos.questions.Count()))

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
