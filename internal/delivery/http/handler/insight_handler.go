package handler

import (
	"errors"

	"mentormatch/internal/delivery/http/dto"
	"mentormatch/internal/delivery/http/middleware"
	"mentormatch/internal/pkg/response"
	"mentormatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InsightHandler struct {
	uc usecase.InsightUsecase
}

func NewInsightHandler(uc usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

func (h *InsightHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:user_id", h.GetForUser)
}

func (h *InsightHandler) GetForUser(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	insights, err := h.uc.GetForUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InsightsResponse{Insights: dto.FromInsights(insights)})
}
