package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ActionHandler struct {
	uc usecase.JourneyUsecase
}

type actionQuestionsRequest struct {
	UserID   string `json:"user_id"`
	ActionID string `json:"action_id"`
}

type actionAssessRequest struct {
	UserID   string   `json:"user_id"`
	ActionID string   `json:"action_id"`
	Answers  []string `json:"answers"`
}

func NewActionHandler(uc usecase.JourneyUsecase) *ActionHandler {
	return &ActionHandler{uc: uc}
}

func (h *ActionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/action/questions", h.Questions)
	r.Post("/action/assess", h.Assess)
}

func (h *ActionHandler) Questions(c fiber.Ctx) error {
	var req actionQuestionsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" || req.ActionID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id and action_id are required", nil, nil)
	}

	questions, err := h.uc.ActionQuestions(c.Context(), req.UserID, req.ActionID)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.QuestionsResponse{UserID: req.UserID, ActionID: req.ActionID, Questions: questions}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ActionHandler) Assess(c fiber.Ctx) error {
	var req actionAssessRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" || req.ActionID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id and action_id are required", nil, nil)
	}

	action, err := h.uc.AssessAction(c.Context(), req.UserID, req.ActionID, req.Answers)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.ActionAssessResponse{UserID: req.UserID, Action: action}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
