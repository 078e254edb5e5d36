// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	_ "gochurch/docs" // swagger docs
	"gochurch/internal/bootstrap"
	"gochurch/internal/config"
	"gochurch/internal/featureflags"
	"gochurch/internal/middleware"
	"gochurch/internal/models"
	"gochurch/internal/repository"
	"gochurch/internal/service"
	"gochurch/internal/tasks"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	featureFlags   *featureflags.Manager
	tasks          *tasks.Runner
	scheduler      *tasks.Scheduler

	actionService       *service.ActionLogService
	boardService        *service.BoardService
	postService         *service.PostService
	commentService      *service.CommentService
	churchService       *service.ChurchService
	userService         *service.UserService
	verificationService *service.VerificationService
	settingsService     *service.SettingsService
	authService         *service.AuthService
}

// NewServer bootstraps the runtime (database, Redis, built-in boards) and
// returns a server wired to it.
func NewServer(cfg *config.Config) (*Server, error) {
	db, redisClient, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedBuiltIns: true})
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// redisClient may be nil.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	flags := featureflags.NewManager(cfg.FeatureFlags)

	tx := repository.NewTransactor(db)
	actionRepo := repository.NewActionLogRepository(db)
	postRepo := repository.NewPostRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	churchRepo := repository.NewChurchRepository(db)
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskResultRepository(db)
	counters := service.NewPostCounters(postRepo)

	ttl := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	retention := time.Duration(cfg.TaskRetentionHours) * time.Hour
	if retention <= 0 {
		retention = 72 * time.Hour
	}

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("gochurch-api"),
		featureFlags:   flags,
		tasks:          tasks.NewRunner(taskRepo),
		scheduler:      tasks.NewScheduler(taskRepo, retention),
	}

	s.actionService = service.NewActionLogService(actionRepo,
		service.WithCounterSync(tx, counters, flags.ForUser(featureflags.LikeCounterSync)))
	s.boardService = service.NewBoardService(boardRepo)
	s.postService = service.NewPostService(postRepo, boardRepo, repository.NewTagRepository(db), counters).
		WithViewLog(s.actionService, flags.ForUser(featureflags.ViewActionLog))
	s.commentService = service.NewCommentService(repository.NewCommentRepository(db), postRepo, counters, tx)
	s.churchService = service.NewChurchService(churchRepo)
	s.userService = service.NewUserService(userRepo, repository.NewProfileRepository(db), churchRepo)
	s.verificationService = service.NewVerificationService(repository.NewVerificationRepository(db))
	s.settingsService = service.NewSettingsService(repository.NewSettingsRepository(db))
	s.authService = service.NewAuthService(userRepo, redisClient, cfg.JWTSecret, ttl)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())

	// Propagates request and user IDs into the request context for logging.
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.TracingMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
		MaxAge:           86400,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/swagger/*", swagger.HandlerDefault)

	authRequired := middleware.AuthRequired(s.config.JWTSecret, s.redis)

	// Action logs
	actions := api.Group("/actions")
	actions.Post("/", s.RecordAction)
	actions.Post("/toggle", s.ToggleAction)
	actions.Get("/user/:userId", s.GetUserActions)
	actions.Get("/target/:targetType/:targetId", s.GetTargetActions)
	actions.Get("/count/:targetType/:targetId/:actionType", s.GetActionCount)
	actions.Get("/:id", s.GetAction)

	// Boards, posts, comments and tags. Literal segments are registered
	// before the /:id routes they would otherwise collide with.
	boards := api.Group("/boards")
	boards.Post("/", s.CreateBoard)
	boards.Get("/", s.GetBoards)
	boards.Get("/posts/:postId/comments", s.GetComments)
	boards.Post("/posts/:postId/comments", s.CreateComment)
	boards.Get("/posts/:postId/tags", s.GetTags)
	boards.Post("/posts/:postId/tags", s.AddTag)
	boards.Delete("/posts/:postId/tags/:tag", s.RemoveTag)
	boards.Post("/posts/:postId/like", s.LikePost)
	boards.Delete("/posts/:postId/like", s.UnlikePost)
	boards.Get("/posts/:postId", s.GetPost)
	boards.Put("/posts/:postId", s.UpdatePost)
	boards.Delete("/posts/:postId", s.DeletePost)
	boards.Get("/comments/:id", s.GetComment)
	boards.Put("/comments/:id", s.UpdateComment)
	boards.Get("/:boardId/posts", s.GetPosts)
	boards.Post("/:boardId/posts", s.CreatePost)
	boards.Get("/:id", s.GetBoard)
	boards.Put("/:id", s.UpdateBoard)
	boards.Delete("/:id", s.DeleteBoard)

	churches := api.Group("/churches")
	churches.Post("/", s.CreateChurch)
	churches.Get("/", s.GetChurches)
	churches.Get("/:id", s.GetChurch)
	churches.Put("/:id", s.UpdateChurch)
	churches.Delete("/:id", s.DeleteChurch)

	users := api.Group("/users")
	users.Post("/", s.CreateUser)
	users.Get("/", s.GetUsers)
	users.Post("/profiles", s.CreateProfile)
	users.Get("/profiles/:id", s.GetProfile)
	users.Put("/profiles/:id", s.UpdateProfile)
	users.Delete("/profiles/:id", s.DeleteProfile)
	users.Get("/:id/profile", s.GetUserProfile)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	verifications := api.Group("/verifications")
	verifications.Post("/", s.SubmitVerification)
	verifications.Get("/pending", s.GetPendingVerifications)
	verifications.Get("/status/:status", s.GetVerificationsByStatus)
	verifications.Get("/user/:userId", s.GetUserVerifications)
	verifications.Put("/:id/status", s.ReviewVerification)
	verifications.Get("/:id", s.GetVerification)

	settings := api.Group("/settings")
	settings.Get("/system/public", s.GetPublicSettings)
	settings.Get("/system", s.GetSystemSettings)
	settings.Post("/system", authRequired, s.AdminRequired(), s.CreateSystemSetting)
	settings.Put("/system/:key", authRequired, s.AdminRequired(), s.UpdateSystemSetting)
	settings.Delete("/system/:key", authRequired, s.AdminRequired(), s.DeleteSystemSetting)
	settings.Get("/user", authRequired, s.GetUserSettings)
	settings.Put("/user", authRequired, s.UpdateUserSettings)
	settings.Get("/notifications", authRequired, s.GetNotificationSettings)
	settings.Post("/notifications/defaults", authRequired, s.CreateDefaultNotificationSettings)
	settings.Post("/notifications", authRequired, s.CreateNotificationSetting)
	settings.Put("/notifications/:type/:category", authRequired, s.UpdateNotificationSetting)

	auth := api.Group("/auth")
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", authRequired, s.Logout)
	auth.Get("/me", authRequired, s.Me)
	auth.Post("/change-password", authRequired, s.ChangePassword)

	if !s.config.IsProduction() {
		taskRoutes := api.Group("/tasks")
		taskRoutes.Post("/sample-data", s.StartSampleData)
		taskRoutes.Post("/cleanup", s.StartCleanup)
		taskRoutes.Get("/:id", s.GetTask)
	}

	admin := api.Group("/admin", authRequired, s.AdminRequired())
	admin.Get("/feature-flags", s.GetFeatureFlags)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now().UTC(),
	})
}

// ReadinessCheck pings the database and Redis. Redis is optional: without
// a client it reports "unavailable" and readiness still passes.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now().UTC(),
	})
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := s.isAdmin(c, currentUserID(c))
		if err != nil {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}
		return c.Next()
	}
}

// Start builds the Fiber app, starts the task scheduler and listens.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "GoChurch API",
		BodyLimit: 4 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
			}
			return respondError(c, err)
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	if err := s.scheduler.RegisterJobs(s.config.TaskPruneSchedule); err != nil {
		return err
	}
	s.scheduler.Start()

	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return app.Listen(":" + s.config.Port)
}

// Shutdown stops the HTTP server, background work and connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	s.scheduler.Stop()
	if err := s.tasks.Shutdown(ctx); err != nil {
		middleware.Logger.Error("background tasks did not finish", slog.String("error", err.Error()))
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", slog.String("error", cerr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
