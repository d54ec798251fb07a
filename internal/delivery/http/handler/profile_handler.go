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

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type createProfileRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	CurrentPosition string   `json:"current_position"`
	Industry        string   `json:"industry"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Goals           []string `json:"goals"`
	Bio             string   `json:"bio"`
	Interests       []string `json:"interests"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:profile_id", h.Get)
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req createProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Name == "" || req.Email == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Name and email are required", nil, nil)
	}

	p, err := h.uc.Create(c.Context(), usecase.CreateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		Role:            req.Role,
		CurrentPosition: req.CurrentPosition,
		Industry:        req.Industry,
		ExperienceYears: req.ExperienceYears,
		Skills:          req.Skills,
		Goals:           req.Goals,
		Bio:             req.Bio,
		Interests:       req.Interests,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Role must be mentor or mentee", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromProfile(p))
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	profiles, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfiles(profiles))
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("profile_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile id", nil, err)
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProfile(p))
}
