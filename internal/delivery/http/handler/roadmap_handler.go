package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoadmapHandler struct {
	uc usecase.JourneyUsecase
}

type roadmapRegenerateRequest struct {
	UserID     string `json:"user_id"`
	TargetRole string `json:"target_role"`
}

func NewRoadmapHandler(uc usecase.JourneyUsecase) *RoadmapHandler {
	return &RoadmapHandler{uc: uc}
}

func (h *RoadmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/roadmap/:user_id", h.Get)
	r.Post("/roadmap/regenerate", h.Regenerate)
}

func (h *RoadmapHandler) Get(c fiber.Ctx) error {
	userID := c.Params("user_id")

	actions, err := h.uc.Roadmap(c.Context(), userID)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.RoadmapResponse{UserID: userID, Actions: actions}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *RoadmapHandler) Regenerate(c fiber.Ctx) error {
	var req roadmapRegenerateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	actions, err := h.uc.RegenerateRoadmap(c.Context(), req.UserID, req.TargetRole)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.RoadmapResponse{UserID: req.UserID, Actions: actions}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
