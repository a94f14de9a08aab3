package journey

import (
	"context"
	"errors"
	"testing"

	"career-navigator/internal/domain/journey"
)

func TestRoadmap_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.Roadmap(context.Background(), "nope"); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}

	userID := onboardUser(t, svc, "e@example.com", "Data Analyst")
	if _, err := svc.Roadmap(context.Background(), userID); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before generation, got %v", err)
	}
}

func TestRegenerateRoadmap_AssignsFreshIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID := onboardUser(t, svc, "e@example.com", "Data Analyst")

	first, err := svc.RegenerateRoadmap(context.Background(), userID, "Data Analyst")
	if err != nil {
		t.Fatalf("first regenerate: %v", err)
	}
	if len(first) == 0 {
		t.Fatalf("expected actions")
	}
	for _, a := range first {
		if a.ActionID == "" || a.Status != journey.StatusNotStarted {
			t.Fatalf("bad fresh action: %+v", a)
		}
	}

	second, err := svc.RegenerateRoadmap(context.Background(), userID, "Data Analyst")
	if err != nil {
		t.Fatalf("second regenerate: %v", err)
	}

	prior := map[string]bool{}
	for _, a := range first {
		prior[a.ActionID] = true
	}
	for _, a := range second {
		if prior[a.ActionID] {
			t.Fatalf("action_id %s reused across generations", a.ActionID)
		}
	}
}

func TestRegenerateRoadmap_OrphansOldActions(t *testing.T) {
	svc, _, _ := newTestService(t)
	userID := onboardUser(t, svc, "e@example.com", "Data Analyst")

	first, err := svc.RegenerateRoadmap(context.Background(), userID, "Data Analyst")
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	oldID := first[0].ActionID

	if _, err := svc.ActionQuestions(context.Background(), userID, oldID); err != nil {
		t.Fatalf("questions: %v", err)
	}
	if _, err := svc.RegenerateRoadmap(context.Background(), userID, "Data Analyst"); err != nil {
		t.Fatalf("second regenerate: %v", err)
	}

	if _, err := svc.AssessAction(context.Background(), userID, oldID, tenAnswers()); !errors.Is(err, journey.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for orphaned action_id, got %v", err)
	}
}

func TestRegenerateRoadmap_RoleChangeCascades(t *testing.T) {
	svc, store, gen := newTestService(t)
	userID := onboardUser(t, svc, "e@example.com", "Data Analyst")
	callsBefore := gen.marketCalls

	if _, err := svc.RegenerateRoadmap(context.Background(), userID, "ML Engineer"); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if gen.marketCalls != callsBefore+1 {
		t.Fatalf("role change must regenerate market analysis")
	}

	doc, _ := store.Get(context.Background(), userID)
	if doc.Profile.TargetRole != "ML Engineer" {
		t.Fatalf("target role not updated: %q", doc.Profile.TargetRole)
	}
	if doc.MarketAnalysis == nil || doc.MarketAnalysis.RoleTitle != "ML Engineer" {
		t.Fatalf("market analysis out of sync: %+v", doc.MarketAnalysis)
	}
}

func TestRegenerateRoadmap_FailureLeavesStateIntact(t *testing.T) {
	svc, store, gen := newTestService(t)
	userID := onboardUser(t, svc, "e@example.com", "Data Analyst")

	first, err := svc.RegenerateRoadmap(context.Background(), userID, "Data Analyst")
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}

	gen.roadmapErr = errors.New("model overloaded")
	if _, err := svc.RegenerateRoadmap(context.Background(), userID, "ML Engineer"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}

	doc, _ := store.Get(context.Background(), userID)
	if doc.Profile.TargetRole != "Data Analyst" {
		t.Fatalf("failed regeneration must not change the role")
	}
	if len(doc.Roadmap) != len(first) || doc.Roadmap[0].ActionID != first[0].ActionID {
		t.Fatalf("failed regeneration must keep the prior roadmap")
	}
	if doc.MarketAnalysis.RoleTitle != "Data Analyst" {
		t.Fatalf("failed regeneration must keep the prior market analysis")
	}
}

func TestRegenerateRoadmap_NoRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	res, err := svc.Onboard(context.Background(), OnboardInput{Email: "e@example.com"})
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}

	if _, err := svc.RegenerateRoadmap(context.Background(), res.UserID, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without any role, got %v", err)
	}
}
