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

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:mentee_id", h.FindMatches)
}

func (h *MatchHandler) FindMatches(c fiber.Ctx) error {
	menteeID, err := uuid.Parse(c.Params("mentee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid mentee id", nil, err)
	}

	candidates, err := h.uc.FindMatches(c.Context(), menteeID)
	if err != nil {
		if errors.Is(err, usecase.ErrMenteeNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Mentee profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMatchCandidates(candidates))
}
