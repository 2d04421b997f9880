package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/litrevu/litrevu-api/internal/config"
	"github.com/litrevu/litrevu-api/internal/handlers"
	"github.com/litrevu/litrevu-api/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	feedHandler *handlers.FeedHandler,
	ticketHandler *handlers.TicketHandler,
	reviewHandler *handlers.ReviewHandler,
	socialHandler *handlers.SocialHandler,
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

	// Auth — public, with a stricter rate limit: 10 req/min per IP
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

	// Protected account routes
	jwt := middleware.JWTProtected(cfg)
	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Put("/auth/password", jwt, authHandler.ChangePassword)
	api.Delete("/auth/account", jwt, authHandler.DeleteAccount)
	api.Post("/profile/photo", jwt, authHandler.UploadProfilePhoto)

	// Feeds
	api.Get("/feed", jwt, feedHandler.Home)
	api.Get("/posts", jwt, feedHandler.Posts)

	// Tickets and reviews
	api.Post("/tickets", jwt, ticketHandler.Create)
	api.Get("/tickets/:id", jwt, ticketHandler.Get)
	api.Post("/tickets/:id", jwt, ticketHandler.Mutate)
	api.Post("/tickets/:id/reviews", jwt, reviewHandler.CreateForTicket)
	api.Post("/reviews", jwt, reviewHandler.CreateWithTicket)
	api.Get("/reviews/:id", jwt, reviewHandler.Get)
	api.Post("/reviews/:id", jwt, reviewHandler.Mutate)

	// Social graph
	api.Get("/follows", jwt, socialHandler.Overview)
	api.Post("/follows", jwt, socialHandler.Follow)
	api.Delete("/follows/:user_id", jwt, socialHandler.Unfollow)
	api.Post("/blocks/:user_id", jwt, socialHandler.Block)
	api.Delete("/blocks/:user_id", jwt, socialHandler.Unblock)
}
