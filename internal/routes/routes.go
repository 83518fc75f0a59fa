package routes

import (
	"time"

	"github.com/emrebasar/moodlog/internal/config"
	"github.com/emrebasar/moodlog/internal/handlers"
	"github.com/emrebasar/moodlog/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	moodHandler *handlers.MoodHandler,
	statsHandler *handlers.StatsHandler,
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

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Mood entries and derived views (JWT required)
	moods := api.Group("/moods", middleware.JWTProtected(cfg))
	moods.Post("/", moodHandler.LogMood)
	moods.Get("/", moodHandler.List)
	moods.Get("/today", moodHandler.GetToday)
	moods.Get("/date/:date", moodHandler.GetByDate)
	moods.Get("/range", moodHandler.ListRange)
	moods.Get("/stats", statsHandler.GetStats)
	moods.Get("/correlations", statsHandler.GetCorrelations)
	moods.Get("/report", statsHandler.GetReport)
	moods.Get("/export", moodHandler.Export)
	moods.Put("/:id", moodHandler.Update)
	moods.Delete("/:id", moodHandler.Delete)
}
