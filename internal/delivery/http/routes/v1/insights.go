package v1

import (
	"mentormatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterInsights(r fiber.Router, insightHandler *handler.InsightHandler, dashboardHandler *handler.DashboardHandler) {
	if r == nil {
		return
	}
	if insightHandler != nil {
		insightHandler.RegisterRoutes(r.Group("/insights"))
	}
	if dashboardHandler != nil {
		dashboardHandler.RegisterRoutes(r.Group("/dashboard"))
	}
}
