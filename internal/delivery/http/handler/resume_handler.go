package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.JourneyUsecase
}

type resumeExtractRequest struct {
	ResumeText string `json:"resume_text"`
}

func NewResumeHandler(uc usecase.JourneyUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/resume/extract-skills", h.ExtractSkills)
}

func (h *ResumeHandler) ExtractSkills(c fiber.Ctx) error {
	var req resumeExtractRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	skills, err := h.uc.ExtractResumeSkills(c.Context(), req.ResumeText)
	if err != nil {
		return mapJourneyError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ResumeSkillsResponse{Skills: skills})
}
