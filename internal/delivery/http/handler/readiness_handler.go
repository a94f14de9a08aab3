package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReadinessHandler struct {
	uc usecase.JourneyUsecase
}

type readinessStartRequest struct {
	UserID string `json:"user_id"`
}

type readinessEvaluateRequest struct {
	UserID  string   `json:"user_id"`
	Answers []string `json:"answers"`
}

func NewReadinessHandler(uc usecase.JourneyUsecase) *ReadinessHandler {
	return &ReadinessHandler{uc: uc}
}

func (h *ReadinessHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/readiness/start", h.Start)
	r.Post("/readiness/evaluate", h.Evaluate)
}

func (h *ReadinessHandler) Start(c fiber.Ctx) error {
	var req readinessStartRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	questions, err := h.uc.ReadinessStart(c.Context(), req.UserID)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.QuestionsResponse{UserID: req.UserID, Questions: questions}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ReadinessHandler) Evaluate(c fiber.Ctx) error {
	var req readinessEvaluateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	result, err := h.uc.ReadinessEvaluate(c.Context(), req.UserID, req.Answers)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.ReadinessResultResponse{UserID: req.UserID, Score: result.Score, Summary: result.Summary}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
