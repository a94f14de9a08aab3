package usecase

import (
	"context"
	"time"

	"career-navigator/internal/domain/journey"
	ucjourney "career-navigator/internal/usecase/journey"

	"go.uber.org/zap"
)

// JourneyUsecase is the engine surface the delivery layer maps requests
// onto, one method per journey stage.
type JourneyUsecase interface {
	Onboard(ctx context.Context, in ucjourney.OnboardInput) (ucjourney.OnboardResult, error)
	ReadinessStart(ctx context.Context, userID string) ([]string, error)
	ReadinessEvaluate(ctx context.Context, userID string, answers []string) (journey.Readiness, error)
	Roadmap(ctx context.Context, userID string) ([]journey.Action, error)
	RegenerateRoadmap(ctx context.Context, userID, targetRole string) ([]journey.Action, error)
	ActionQuestions(ctx context.Context, userID, actionID string) ([]string, error)
	AssessAction(ctx context.Context, userID, actionID string, answers []string) (journey.Action, error)
	Reroute(ctx context.Context, userID, newRole string) (ucjourney.RerouteResult, error)
	Market(ctx context.Context, userID string) (journey.MarketAnalysis, error)
	Dashboard(ctx context.Context, userID string) (journey.UserProfile, error)
	Feedback(ctx context.Context, userID string) (string, error)
	Chat(ctx context.Context, userID, message string, history []journey.ChatMessage) (string, error)
	ExtractResumeSkills(ctx context.Context, resumeText string) ([]string, error)
}

func NewJourneyUsecase(
	store journey.Store,
	gen ucjourney.Generator,
	snapshots ucjourney.SnapshotCache,
	log *zap.Logger,
	questionTTL time.Duration,
) JourneyUsecase {
	return ucjourney.NewService(store, gen, snapshots, log, questionTTL)
}
