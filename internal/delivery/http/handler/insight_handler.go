package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/domain/journey"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// InsightHandler serves the read-mostly stages layered on stored state:
// dashboard, market intelligence, reroute, feedback and hands-on chat.
type InsightHandler struct {
	uc usecase.JourneyUsecase
}

type rerouteRequest struct {
	UserID  string `json:"user_id"`
	NewRole string `json:"new_role"`
}

type feedbackRequest struct {
	UserID string `json:"user_id"`
}

type chatRequest struct {
	UserID              string                `json:"user_id"`
	Message             string                `json:"message"`
	ConversationHistory []journey.ChatMessage `json:"conversation_history"`
}

func NewInsightHandler(uc usecase.JourneyUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

func (h *InsightHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/dashboard/:user_id", h.Dashboard)
	r.Get("/market/:user_id", h.Market)
	r.Post("/reroute", h.Reroute)
	r.Post("/feedback", h.Feedback)
	r.Post("/hands-on/chat", h.Chat)
}

func (h *InsightHandler) Dashboard(c fiber.Ctx) error {
	doc, err := h.uc.Dashboard(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapJourneyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, doc)
}

func (h *InsightHandler) Market(c fiber.Ctx) error {
	market, err := h.uc.Market(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapJourneyError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, market)
}

func (h *InsightHandler) Reroute(c fiber.Ctx) error {
	var req rerouteRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	result, err := h.uc.Reroute(c.Context(), req.UserID, req.NewRole)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.RerouteResponse{
		UserID:     req.UserID,
		TargetRole: result.TargetRole,
		Market:     result.Market,
		Roadmap:    result.Roadmap,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *InsightHandler) Feedback(c fiber.Ctx) error {
	var req feedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	text, err := h.uc.Feedback(c.Context(), req.UserID)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.FeedbackResponse{UserID: req.UserID, Feedback: text}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *InsightHandler) Chat(c fiber.Ctx) error {
	var req chatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.UserID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "user_id is required", nil, nil)
	}

	reply, err := h.uc.Chat(c.Context(), req.UserID, req.Message, req.ConversationHistory)
	if err != nil {
		return mapJourneyError(err)
	}

	res := dto.ChatResponse{UserID: req.UserID, Reply: reply}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
