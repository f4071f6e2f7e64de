package routes

import (
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Registry holds the constructed handlers and knows where each one mounts.
type Registry struct {
	Health      *handler.HealthHandler
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Skill       *handler.SkillHandler
	UserSkill   *handler.UserSkillHandler
	SwapRequest *handler.SwapRequestHandler
	Rating      *handler.RatingHandler
	AuthMw      *middleware.AuthMiddleware
	WS          fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)
	r.registerAPI(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}

func (r *Registry) registerV1(v1 fiber.Router) {
	authGroup := v1.Group("/auth")
	r.Auth.RegisterRoutes(authGroup)

	r.User.RegisterPublicRoutes(v1)

	protected := v1.Group("", r.AuthMw.Middleware())
	r.User.RegisterProfileRoutes(protected)
	r.Skill.RegisterRoutes(protected)
	r.UserSkill.RegisterRoutes(protected)
	r.SwapRequest.RegisterRoutes(protected)
	r.Rating.RegisterRoutes(protected)

	if r.WS != nil {
		protected.Get("/ws", r.WS)
	}
}
