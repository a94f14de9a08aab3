package journey

import (
	"context"
	"errors"
	"testing"

	"career-navigator/internal/domain/journey"
)

func setupRoadmap(t *testing.T, svc *Service) (string, []journey.Action) {
	t.Helper()
	userID := onboardUser(t, svc, "e@example.com", "Data Analyst")
	actions, err := svc.RegenerateRoadmap(context.Background(), userID, "Data Analyst")
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	return userID, actions
}

func TestActionQuestions_UnknownAction(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID, _ := setupRoadmap(t, svc)

	if _, err := svc.ActionQuestions(context.Background(), userID, "missing"); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssessAction_FullFlow(t *testing.T) {
	svc, store, _ := newTestService(t)
	userID, actions := setupRoadmap(t, svc)
	target := actions[0].ActionID

	questions, err := svc.ActionQuestions(context.Background(), userID, target)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}

	assessed, err := svc.AssessAction(context.Background(), userID, target, tenAnswers())
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if assessed.Score == nil || *assessed.Score != 85 {
		t.Fatalf("score not set: %+v", assessed)
	}
	if assessed.Confidence == nil || *assessed.Confidence != 90 {
		t.Fatalf("confidence not set: %+v", assessed)
	}
	if assessed.Status != journey.StatusCompleted {
		t.Fatalf("score 85 should complete the action, got %s", assessed.Status)
	}

	// Only the assessed action changes.
	doc, _ := store.Get(context.Background(), userID)
	for _, a := range doc.Roadmap {
		if a.ActionID == target {
			continue
		}
		if a.Score != nil || a.Confidence != nil || a.Status != journey.StatusNotStarted {
			t.Fatalf("untouched action mutated: %+v", a)
		}
	}
}

func TestAssessAction_LowScoreStaysInProgress(t *testing.T) {
	svc, _, gen := newTestService(t)
	userID, actions := setupRoadmap(t, svc)
	gen.assessScore = 40

	if _, err := svc.ActionQuestions(context.Background(), userID, actions[0].ActionID); err != nil {
		t.Fatalf("questions: %v", err)
	}
	assessed, err := svc.AssessAction(context.Background(), userID, actions[0].ActionID, tenAnswers())
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if assessed.Status != journey.StatusInProgress {
		t.Fatalf("score 40 should leave the action in progress, got %s", assessed.Status)
	}
}

func TestAssessAction_WithoutQuestions(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID, actions := setupRoadmap(t, svc)

	if _, err := svc.AssessAction(context.Background(), userID, actions[0].ActionID, tenAnswers()); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound without cached questions, got %v", err)
	}
}

func TestAssessAction_CardinalityMismatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID, actions := setupRoadmap(t, svc)

	if _, err := svc.ActionQuestions(context.Background(), userID, actions[0].ActionID); err != nil {
		t.Fatalf("questions: %v", err)
	}
	if _, err := svc.AssessAction(context.Background(), userID, actions[0].ActionID, []string{"only one"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
