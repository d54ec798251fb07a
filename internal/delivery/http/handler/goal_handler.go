package handler

import (
	"errors"
	"time"

	"mentormatch/internal/delivery/http/dto"
	"mentormatch/internal/delivery/http/middleware"
	"mentormatch/internal/pkg/response"
	"mentormatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type GoalHandler struct {
	uc usecase.GoalUsecase
}

type createGoalRequest struct {
	UserID      uuid.UUID        `json:"user_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	TargetDate  time.Time        `json:"target_date"`
	Milestones  []map[string]any `json:"milestones"`
}

func NewGoalHandler(uc usecase.GoalUsecase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

func (h *GoalHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/:user_id", h.ListByUser)
}

func (h *GoalHandler) Create(c fiber.Ctx) error {
	var req createGoalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	g, err := h.uc.Create(c.Context(), usecase.CreateGoalInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Milestones:  req.Milestones,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Title and user_id are required", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromGoal(g))
}

func (h *GoalHandler) ListByUser(c fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	goals, err := h.uc.ListByUser(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromGoals(goals))
}
