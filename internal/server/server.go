// Package server wires the HTTP surface: routing, middleware, and handlers.
package server

import (
	"context"
	"time"

	"volunteerhub/internal/cache"
	"volunteerhub/internal/config"
	"volunteerhub/internal/database"
	"volunteerhub/internal/middleware"
	"volunteerhub/internal/repository"
	"volunteerhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server bundles the Fiber app with its dependencies.
type Server struct {
	App    *fiber.App
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client

	users    *service.UserService
	events   *service.EventService
	matches  *service.MatchService
	notifs   *service.NotificationService
	reports  *service.ReportService
	states   repository.StateRepository
	userRepo repository.UserRepository
}

// NewServer connects to the database and cache, then assembles the full
// application.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps assembles the application from pre-built dependencies.
// Tests use this with an in-memory database and a fake Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Server {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	stateRepo := repository.NewStateRepository(db)

	notifSvc := service.NewNotificationService(notifRepo, historyRepo)

	s := &Server{
		App: fiber.New(fiber.Config{
			AppName:      "volunteerhub",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		}),
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		users:    service.NewUserService(userRepo, stateRepo),
		events:   service.NewEventService(eventRepo, historyRepo, notifSvc),
		matches:  service.NewMatchService(userRepo, eventRepo, historyRepo, notifSvc),
		notifs:   notifSvc,
		reports:  service.NewReportService(userRepo, eventRepo, historyRepo),
		states:   stateRepo,
		userRepo: userRepo,
	}

	s.SetupMiddleware()
	s.SetupRoutes()
	return s
}

// SetupMiddleware installs the shared middleware chain.
func (s *Server) SetupMiddleware() {
	s.App.Use(recover.New())
	s.App.Use(requestid.New())
	s.App.Use(middleware.ContextMiddleware())

	prom := middleware.InitMetrics("volunteerhub")
	prom.RegisterAt(s.App, "/metrics")
	s.App.Use(middleware.MetricsMiddleware(prom))

	s.App.Use(helmet.New())
	s.App.Use(middleware.StructuredLogger())
	s.App.Use(middleware.TracingMiddleware())

	s.App.Use(cors.New(cors.Config{
		AllowOrigins: s.Config.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
}

// SetupRoutes registers every route on the app.
func (s *Server) SetupRoutes() {
	s.App.Get("/health", s.LivenessCheck)
	s.App.Get("/health/live", s.LivenessCheck)
	s.App.Get("/health/ready", s.ReadinessCheck)

	api := s.App.Group("/api")
	api.Post("/register", middleware.RateLimit(s.Redis, 10, time.Minute, "register"), s.Register)
	api.Post("/login", middleware.RateLimit(s.Redis, 20, time.Minute, "login"), s.Login)

	api.Get("/states", s.ListStates)

	api.Get("/profile", middleware.AuthRequired, s.GetProfile)
	api.Put("/profile/edit", middleware.AuthRequired, s.UpdateProfile)

	api.Get("/match/:volunteerId", middleware.AuthRequired, s.FindMatches)
	api.Post("/match", middleware.AuthRequired, s.CreateMatch)

	events := s.App.Group("/events")
	events.Post("/create", s.CreateEvent)
	events.Get("/all", s.ListEvents)
	events.Put("/update/:id", s.UpdateEvent)
	events.Delete("/delete/:id", s.DeleteEvent)
	events.Get("/:id", s.GetEvent)

	notifs := s.App.Group("/notifs")
	notifs.Post("/create", s.CreateNotification)
	notifs.Post("/matched", s.NotifyMatched)
	notifs.Post("/delete", s.NotifyEventDeleted)
	notifs.Get("/all", s.ListNotifications)
	notifs.Put("/dismiss/:id", s.DismissNotification)

	reports := s.App.Group("/reports", middleware.AuthRequired, middleware.AdminRequired)
	reports.Get("/volunteers", s.VolunteersReport)
	reports.Get("/volunteers/csv", s.VolunteersReportCSV)
	reports.Get("/volunteers/pdf", s.VolunteersReportPDF)
	reports.Get("/events", s.EventsReport)
	reports.Get("/events/csv", s.EventsReportCSV)
	reports.Get("/events/pdf", s.EventsReportPDF)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the database (and cache, when configured)
// are reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	sqlDB, err := s.DB.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable", "database": "down",
		})
	}

	status := fiber.Map{"status": "ok", "database": "up"}
	if s.Redis != nil {
		if err := s.Redis.Ping(ctx).Err(); err != nil {
			status["cache"] = "down"
		} else {
			status["cache"] = "up"
		}
	}
	return c.JSON(status)
}

// Listen starts serving on the configured port.
func (s *Server) Listen() error {
	return s.App.Listen(":" + s.Config.Port)
}

// Shutdown drains in-flight requests and closes connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.App.ShutdownWithContext(ctx); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			middleware.Logger.Warn("redis close failed", "error", err)
		}
	}
	if sqlDB, err := s.DB.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}
