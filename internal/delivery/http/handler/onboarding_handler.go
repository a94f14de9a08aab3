package handler

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/delivery/http/middleware"
	"career-navigator/internal/pkg/response"
	"career-navigator/internal/usecase"
	ucjourney "career-navigator/internal/usecase/journey"

	"github.com/gofiber/fiber/v3"
)

type OnboardingHandler struct {
	uc usecase.JourneyUsecase
}

type onboardRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	TargetRole      string   `json:"target_role"`
	Skills          []string `json:"skills"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	ExperienceYears int      `json:"experience_years"`
	Phone           string   `json:"phone"`
}

func NewOnboardingHandler(uc usecase.JourneyUsecase) *OnboardingHandler {
	return &OnboardingHandler{uc: uc}
}

func (h *OnboardingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/onboard", h.Onboard)
}

func (h *OnboardingHandler) Onboard(c fiber.Ctx) error {
	var req onboardRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	result, err := h.uc.Onboard(c.Context(), ucjourney.OnboardInput{
		Name:            req.Name,
		Email:           req.Email,
		TargetRole:      req.TargetRole,
		Skills:          req.Skills,
		Strengths:       req.Strengths,
		Weaknesses:      req.Weaknesses,
		ExperienceYears: req.ExperienceYears,
		Phone:           req.Phone,
	})
	if err != nil {
		return mapJourneyError(err)
	}

	msg := "User created successfully"
	if result.Exists {
		msg = "Existing user found"
	}
	res := dto.OnboardResponse{
		UserID:  result.UserID,
		Message: msg,
		Profile: result.Profile,
		Exists:  result.Exists,
		Warning: result.Warning,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
