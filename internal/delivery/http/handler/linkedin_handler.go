package handler

import (
	"errors"

	"mentormatch/internal/delivery/http/middleware"
	"mentormatch/internal/pkg/response"
	"mentormatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type LinkedInHandler struct {
	uc usecase.LinkedInUsecase
}

func NewLinkedInHandler(uc usecase.LinkedInUsecase) *LinkedInHandler {
	return &LinkedInHandler{uc: uc}
}

func (h *LinkedInHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/import-profile", h.ImportProfile)
	r.Get("/network-analysis/:user_id", h.AnalyzeNetwork)
}

func (h *LinkedInHandler) ImportProfile(c fiber.Ctx) error {
	var raw map[string]any
	if err := c.Bind().Body(&raw); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	imported := h.uc.ImportProfile(raw)
	return response.Success(c, fiber.StatusOK, "LinkedIn profile imported successfully", imported)
}

func (h *LinkedInHandler) AnalyzeNetwork(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	analysis, err := h.uc.AnalyzeNetwork(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, analysis)
}
