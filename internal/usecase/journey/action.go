package journey

import (
	"context"
	"fmt"

	"career-navigator/internal/domain/journey"

	"go.uber.org/zap"
)

// ActionQuestions generates questions for one roadmap action and caches
// them in memory, keyed by (user, action).
func (s *Service) ActionQuestions(ctx context.Context, userID, actionID string) ([]string, error) {
	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return nil, notFoundUser(userID)
	}
	action, ok := doc.FindAction(actionID)
	if !ok {
		return nil, fmt.Errorf("%w: action %s", journey.ErrNotFound, actionID)
	}

	questions, err := s.gen.ActionQuestions(ctx, doc.Profile, action, questionCount)
	if err != nil {
		s.log.Error("action question generation failed",
			zap.String("user_id", userID), zap.String("action_id", actionID), zap.Error(err))
		return nil, fmt.Errorf("%w: action question generation failed", ErrInternal)
	}

	s.questions.put(actionKey(userID, actionID), questions)
	return questions, nil
}

// AssessAction scores the answers for one action and persists score,
// confidence and status on that action only; the rest of the roadmap is
// untouched.
func (s *Service) AssessAction(ctx context.Context, userID, actionID string, answers []string) (journey.Action, error) {
	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return journey.Action{}, notFoundUser(userID)
	}
	action, ok := doc.FindAction(actionID)
	if !ok {
		return journey.Action{}, fmt.Errorf("%w: action %s", journey.ErrNotFound, actionID)
	}

	questions, ok := s.questions.get(actionKey(userID, actionID))
	if !ok {
		return journey.Action{}, fmt.Errorf(
			"%w: no active questions for action %s, request questions first",
			journey.ErrNotFound, actionID)
	}
	if len(answers) != len(questions) {
		return journey.Action{}, fmt.Errorf(
			"%w: expected %d answers, got %d", ErrInvalidInput, len(questions), len(answers))
	}

	result, err := s.gen.ActionAssessment(ctx, action, questions, answers)
	if err != nil {
		s.log.Error("action assessment failed",
			zap.String("user_id", userID), zap.String("action_id", actionID), zap.Error(err))
		return journey.Action{}, fmt.Errorf("%w: action assessment failed", ErrInternal)
	}

	score := result.Score
	confidence := result.Confidence
	var assessed journey.Action
	for i := range doc.Roadmap {
		if doc.Roadmap[i].ActionID != actionID {
			continue
		}
		doc.Roadmap[i].Score = &score
		doc.Roadmap[i].Confidence = &confidence
		if score >= completionThreshold {
			doc.Roadmap[i].Status = journey.StatusCompleted
		} else {
			doc.Roadmap[i].Status = journey.StatusInProgress
		}
		assessed = doc.Roadmap[i]
	}

	if !s.store.Patch(ctx, userID, map[string]any{"roadmap": doc.Roadmap}) {
		return journey.Action{}, fmt.Errorf("%w: assessment write failed", ErrInternal)
	}

	s.questions.delete(actionKey(userID, actionID))
	s.invalidateSnapshots(ctx, userID)
	return assessed, nil
}
