package journey

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"career-navigator/internal/domain/journey"
)

type mockStore struct {
	docs    map[string]journey.UserProfile
	upserts int
	patches int

	failUpsert bool
	failPatch  bool
}

func newMockStore() *mockStore {
	return &mockStore{docs: map[string]journey.UserProfile{}}
}

func (m *mockStore) Upsert(_ context.Context, userID string, doc journey.UserProfile) bool {
	if m.failUpsert {
		return false
	}
	doc.UserID = userID
	doc.LastUpdated = time.Now().UTC()
	m.docs[userID] = doc
	m.upserts++
	return true
}

func (m *mockStore) Get(_ context.Context, userID string) (journey.UserProfile, bool) {
	doc, ok := m.docs[userID]
	return doc, ok
}

func (m *mockStore) FindByEmail(_ context.Context, email string) (journey.UserProfile, bool) {
	for _, doc := range m.docs {
		if doc.Profile.Email == email {
			return doc, true
		}
	}
	return journey.UserProfile{}, false
}

func (m *mockStore) Patch(_ context.Context, userID string, fields map[string]any) bool {
	if m.failPatch {
		return false
	}
	doc, ok := m.docs[userID]
	if !ok {
		return false
	}
	for k, v := range fields {
		switch k {
		case "profile":
			doc.Profile = v.(journey.Profile)
		case "readiness":
			r := v.(journey.Readiness)
			doc.Readiness = &r
		case "roadmap":
			doc.Roadmap = v.([]journey.Action)
		case "market_analysis":
			ma := v.(journey.MarketAnalysis)
			doc.MarketAnalysis = &ma
		}
	}
	doc.LastUpdated = time.Now().UTC()
	m.docs[userID] = doc
	m.patches++
	return true
}

type mockGenerator struct {
	questionsErr  error
	evalErr       error
	roadmapErr    error
	marketErr     error
	assessErr     error
	feedbackErr   error
	chatErr       error
	skillsErr     error
	assessScore   int
	roadmapLen    int
	marketCalls   int
	questionBatch int
}

func newMockGenerator() *mockGenerator {
	return &mockGenerator{assessScore: 85, roadmapLen: 3}
}

func (g *mockGenerator) questionSet(prefix string, count int) []string {
	g.questionBatch++
	qs := make([]string, count)
	for i := range qs {
		qs[i] = fmt.Sprintf("%s-b%d-q%d", prefix, g.questionBatch, i+1)
	}
	return qs
}

func (g *mockGenerator) ReadinessQuestions(_ context.Context, _ journey.Profile, count int) ([]string, error) {
	if g.questionsErr != nil {
		return nil, g.questionsErr
	}
	return g.questionSet("readiness", count), nil
}

func (g *mockGenerator) ReadinessEvaluation(_ context.Context, _ journey.Profile, _, _ []string) (journey.Readiness, error) {
	if g.evalErr != nil {
		return journey.Readiness{}, g.evalErr
	}
	return journey.Readiness{Score: 82, Summary: "solid fundamentals, practice system design"}, nil
}

func (g *mockGenerator) RoadmapActions(_ context.Context, _ journey.Profile, role string) ([]journey.ActionDraft, error) {
	if g.roadmapErr != nil {
		return nil, g.roadmapErr
	}
	drafts := make([]journey.ActionDraft, g.roadmapLen)
	for i := range drafts {
		drafts[i] = journey.ActionDraft{
			Title:       fmt.Sprintf("%s step %d", role, i+1),
			Description: "do the thing",
		}
	}
	return drafts, nil
}

func (g *mockGenerator) MarketAnalysis(_ context.Context, role string) (journey.MarketAnalysis, error) {
	g.marketCalls++
	if g.marketErr != nil {
		return journey.MarketAnalysis{}, g.marketErr
	}
	return journey.MarketAnalysis{
		RoleTitle:   role,
		DemandScore: 77,
		Summary:     "healthy demand",
		Status:      journey.MarketStatusReady,
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (g *mockGenerator) ActionQuestions(_ context.Context, _ journey.Profile, action journey.Action, count int) ([]string, error) {
	if g.questionsErr != nil {
		return nil, g.questionsErr
	}
	return g.questionSet("action-"+action.ActionID, count), nil
}

func (g *mockGenerator) ActionAssessment(_ context.Context, _ journey.Action, _, _ []string) (journey.ActionAssessment, error) {
	if g.assessErr != nil {
		return journey.ActionAssessment{}, g.assessErr
	}
	return journey.ActionAssessment{Score: g.assessScore, Confidence: 90}, nil
}

func (g *mockGenerator) Feedback(_ context.Context, _ journey.UserProfile) (string, error) {
	if g.feedbackErr != nil {
		return "", g.feedbackErr
	}
	return "good progress, keep at it", nil
}

func (g *mockGenerator) ChatReply(_ context.Context, _ journey.UserProfile, message string, history []journey.ChatMessage) (string, error) {
	if g.chatErr != nil {
		return "", g.chatErr
	}
	return fmt.Sprintf("reply(%d): %s", len(history), message), nil
}

func (g *mockGenerator) ResumeSkills(_ context.Context, _ string) ([]string, error) {
	if g.skillsErr != nil {
		return nil, g.skillsErr
	}
	return []string{"Go", "PostgreSQL"}, nil
}

type mockSnapshots struct {
	data    map[string][]byte
	deletes []string
}

func newMockSnapshots() *mockSnapshots {
	return &mockSnapshots{data: map[string][]byte{}}
}

func (m *mockSnapshots) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockSnapshots) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *mockSnapshots) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.deletes = append(m.deletes, k)
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *mockStore, *mockGenerator) {
	t.Helper()
	store := newMockStore()
	gen := newMockGenerator()
	return NewService(store, gen, nil, nil, 0), store, gen
}

// onboardUser creates a user with a real role and returns its id.
func onboardUser(t *testing.T, svc *Service, email, role string) string {
	t.Helper()
	res, err := svc.Onboard(context.Background(), OnboardInput{
		Name:            "Test User",
		Email:           email,
		TargetRole:      role,
		Skills:          []string{"Python", "SQL"},
		Strengths:       []string{"problem solving"},
		Weaknesses:      []string{"public speaking"},
		ExperienceYears: 2,
	})
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	return res.UserID
}

func tenAnswers() []string {
	answers := make([]string, 10)
	for i := range answers {
		answers[i] = fmt.Sprintf("answer %d", i+1)
	}
	return answers
}
