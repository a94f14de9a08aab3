package journey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-navigator/internal/domain/journey"

	"go.uber.org/zap"
)

// Every readiness or action question set has exactly this many questions,
// and evaluation requires the same number of answers.
const questionCount = 10

// An assessed action counts as completed from this score up.
const completionThreshold = 70

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Generator is the generation capability the engine depends on. It is
// stateless and may fail; the engine performs no retries or timeouts.
type Generator interface {
	ReadinessQuestions(ctx context.Context, prof journey.Profile, count int) ([]string, error)
	ReadinessEvaluation(ctx context.Context, prof journey.Profile, questions, answers []string) (journey.Readiness, error)
	RoadmapActions(ctx context.Context, prof journey.Profile, role string) ([]journey.ActionDraft, error)
	MarketAnalysis(ctx context.Context, role string) (journey.MarketAnalysis, error)
	ActionQuestions(ctx context.Context, prof journey.Profile, action journey.Action, count int) ([]string, error)
	ActionAssessment(ctx context.Context, action journey.Action, questions, answers []string) (journey.ActionAssessment, error)
	Feedback(ctx context.Context, doc journey.UserProfile) (string, error)
	ChatReply(ctx context.Context, doc journey.UserProfile, message string, history []journey.ChatMessage) (string, error)
	ResumeSkills(ctx context.Context, resumeText string) ([]string, error)
}

// SnapshotCache fronts read-heavy per-user snapshots (dashboard, market).
// It is advisory: a nil cache or a cache error just falls through to the
// document store.
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service is the journey engine: it owns the user documents, decides what
// stage a user is in, and merges stage outputs back into persistent state.
type Service struct {
	store     journey.Store
	gen       Generator
	snapshots SnapshotCache
	questions *questionCache
	log       *zap.Logger
}

func NewService(store journey.Store, gen Generator, snapshots SnapshotCache, log *zap.Logger, questionTTL time.Duration) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     store,
		gen:       gen,
		snapshots: snapshots,
		questions: newQuestionCache(questionTTL),
		log:       log,
	}
}

func marketSnapshotKey(userID string) string    { return "journey:market:" + userID }
func dashboardSnapshotKey(userID string) string { return "journey:dashboard:" + userID }

// invalidateSnapshots drops cached reads for a user after a persistent
// mutation, before the response is returned.
func (s *Service) invalidateSnapshots(ctx context.Context, userID string) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Delete(ctx, marketSnapshotKey(userID), dashboardSnapshotKey(userID)); err != nil {
		s.log.Warn("snapshot invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func notFoundUser(userID string) error {
	return fmt.Errorf("%w: user %s", journey.ErrNotFound, userID)
}
