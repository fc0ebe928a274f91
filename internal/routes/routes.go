package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jobtrail/jobtrail-backend/internal/config"
	"github.com/jobtrail/jobtrail-backend/internal/handlers"
	"github.com/jobtrail/jobtrail-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	jobHandler *handlers.JobHandler,
	aiHandler *handlers.AIHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit on the credential endpoints
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)
	auth.Patch("/me", middleware.JWTProtected(cfg), authHandler.UpdateMe)

	// Public profiles — no auth
	api.Get("/users/public/:username", userHandler.PublicProfile)

	// Jobs — all protected. Static paths before the :id param routes.
	jobs := api.Group("/jobs", middleware.JWTProtected(cfg))
	jobs.Get("/stats", jobHandler.Stats)
	jobs.Post("/auto-fill", jobHandler.AutoFill)
	jobs.Get("/", jobHandler.List)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/:id", jobHandler.Get)
	jobs.Patch("/:id/status", jobHandler.UpdateStatus)
	jobs.Patch("/:id", jobHandler.Update)
	jobs.Delete("/:id", jobHandler.Delete)

	// AI — all protected
	aiGroup := api.Group("/ai", middleware.JWTProtected(cfg))
	aiGroup.Post("/analyze", aiHandler.Analyze)
	aiGroup.Post("/analyze-resume", aiHandler.AnalyzeResume)
	aiGroup.Get("/history", aiHandler.History)
	aiGroup.Post("/interview-prep", aiHandler.InterviewPrep)
}
