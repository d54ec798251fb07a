package v1

import (
	"mentormatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterProfiles(r fiber.Router, profileHandler *handler.ProfileHandler, linkedinHandler *handler.LinkedInHandler) {
	if r == nil {
		return
	}
	if profileHandler != nil {
		profileHandler.RegisterRoutes(r.Group("/profiles"))
	}
	if linkedinHandler != nil {
		linkedinHandler.RegisterRoutes(r.Group("/linkedin"))
	}
}
