package routes

import (
	"career-navigator/internal/delivery/http/handler"
	"career-navigator/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	onboarding *handler.OnboardingHandler
	readiness  *handler.ReadinessHandler
	roadmap    *handler.RoadmapHandler
	action     *handler.ActionHandler
	insight    *handler.InsightHandler
	resume     *handler.ResumeHandler
}

func NewRegistry(
	uc usecase.JourneyUsecase,
	store handler.StoreHealth,
	cache handler.CacheHealth,
	gen handler.GeneratorHealth,
) *Registry {
	return &Registry{
		health:     handler.NewHealthHandler(store, cache, gen),
		onboarding: handler.NewOnboardingHandler(uc),
		readiness:  handler.NewReadinessHandler(uc),
		roadmap:    handler.NewRoadmapHandler(uc),
		action:     handler.NewActionHandler(uc),
		insight:    handler.NewInsightHandler(uc),
		resume:     handler.NewResumeHandler(uc),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.onboarding.RegisterRoutes(v1)
	r.readiness.RegisterRoutes(v1)
	r.roadmap.RegisterRoutes(v1)
	r.action.RegisterRoutes(v1)
	r.insight.RegisterRoutes(v1)
	r.resume.RegisterRoutes(v1)
}
