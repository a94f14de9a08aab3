package journey

import (
	"context"
	"fmt"

	"career-navigator/internal/domain/journey"

	"go.uber.org/zap"
)

// ReadinessStart generates a fresh set of readiness questions for the user
// and caches them in memory. Persistent state is untouched. Calling start
// again discards the previous set.
func (s *Service) ReadinessStart(ctx context.Context, userID string) ([]string, error) {
	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return nil, notFoundUser(userID)
	}

	questions, err := s.gen.ReadinessQuestions(ctx, doc.Profile, questionCount)
	if err != nil {
		s.log.Error("readiness question generation failed", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: readiness question generation failed", ErrInternal)
	}

	s.questions.put(readinessKey(userID), questions)
	return questions, nil
}

// ReadinessEvaluate scores the answers against the cached question set and
// persists only the resulting score and summary. The questions and answers
// themselves are discarded.
func (s *Service) ReadinessEvaluate(ctx context.Context, userID string, answers []string) (journey.Readiness, error) {
	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return journey.Readiness{}, notFoundUser(userID)
	}

	questions, ok := s.questions.get(readinessKey(userID))
	if !ok {
		return journey.Readiness{}, fmt.Errorf(
			"%w: no active readiness questions for user %s, start the assessment first",
			journey.ErrNotFound, userID)
	}
	if len(answers) != len(questions) {
		return journey.Readiness{}, fmt.Errorf(
			"%w: expected %d answers, got %d", ErrInvalidInput, len(questions), len(answers))
	}

	result, err := s.gen.ReadinessEvaluation(ctx, doc.Profile, questions, answers)
	if err != nil {
		s.log.Error("readiness evaluation failed", zap.String("user_id", userID), zap.Error(err))
		return journey.Readiness{}, fmt.Errorf("%w: readiness evaluation failed", ErrInternal)
	}

	if !s.store.Patch(ctx, userID, map[string]any{"readiness": result}) {
		return journey.Readiness{}, fmt.Errorf("%w: readiness write failed", ErrInternal)
	}

	s.questions.delete(readinessKey(userID))
	s.invalidateSnapshots(ctx, userID)
	return result, nil
}
