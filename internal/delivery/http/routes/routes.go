package routes

import (
	"mentormatch/internal/delivery/http/handler"
	v1 "mentormatch/internal/delivery/http/routes/v1"
	"mentormatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const welcomeMessage = "MentorMatch AI - Your Intelligent Career Mentorship Platform"

type Registry struct {
	health *handler.HealthHandler
	deps   v1.Dependencies
}

func NewRegistry(health *handler.HealthHandler, deps v1.Dependencies) *Registry {
	return &Registry{health: health, deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1Group := api.Group("/v1")

	v1Group.Get("/", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"message": welcomeMessage})
	})

	RegisterV1(v1Group, r.deps)
}
