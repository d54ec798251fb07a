package v1

import (
	"mentormatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterMentorship(r fiber.Router, matchHandler *handler.MatchHandler, goalHandler *handler.GoalHandler, sessionHandler *handler.SessionHandler) {
	if r == nil {
		return
	}
	if matchHandler != nil {
		matchHandler.RegisterRoutes(r.Group("/matches"))
	}
	if goalHandler != nil {
		goalHandler.RegisterRoutes(r.Group("/goals"))
	}
	if sessionHandler != nil {
		sessionHandler.RegisterRoutes(r.Group("/sessions"))
	}
}
