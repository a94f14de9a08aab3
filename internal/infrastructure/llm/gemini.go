package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-navigator/internal/config"
	"career-navigator/internal/domain/journey"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

var ErrNotConfigured = errors.New("gemini api key not configured")

// Gemini produces the structured generations the journey engine needs:
// question sets, evaluations, roadmaps, market analyses, feedback and chat
// replies. It performs no retries and no internal timeouts; a slow or failed
// call propagates to the caller.
type Gemini struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// NewGemini builds the client. A missing API key does not fail construction;
// the server still starts and every generation call reports ErrNotConfigured.
func NewGemini(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) *Gemini {
	if log == nil {
		log = zap.NewNop()
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		log.Warn("GEMINI_API_KEY not set, generation disabled")
		return &Gemini{client: nil, model: model, log: log}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: key})
	if err != nil {
		log.Warn("gemini client init failed, generation disabled", zap.Error(err))
		return &Gemini{client: nil, model: model, log: log}
	}

	return &Gemini{client: client, model: model, log: log}
}

// Configured reports whether generation calls can be made.
func (g *Gemini) Configured() bool {
	return g != nil && g.client != nil
}

func (g *Gemini) ReadinessQuestions(ctx context.Context, prof journey.Profile, count int) ([]string, error) {
	prompt := fmt.Sprintf(
		`You are a career readiness coach. Generate exactly %d interview-style questions
to assess how ready this candidate is for the role %q.

Candidate: %s
Return JSON: {"questions": ["...", ...]}`,
		count, roleOrGeneral(prof.TargetRole), profileSummary(prof),
	)

	var out struct {
		Questions []string `json:"questions"`
	}
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return clampQuestions(out.Questions, count)
}

func (g *Gemini) ReadinessEvaluation(ctx context.Context, prof journey.Profile, questions, answers []string) (journey.Readiness, error) {
	prompt := fmt.Sprintf(
		`You are evaluating a candidate's readiness for the role %q.

Candidate: %s

Question/answer pairs:
%s
Score the overall readiness 0-100 and write a short summary of strengths and gaps.
Return JSON: {"score": <int>, "summary": "..."}`,
		roleOrGeneral(prof.TargetRole), profileSummary(prof), qaPairs(questions, answers),
	)

	var out journey.Readiness
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return journey.Readiness{}, err
	}
	out.Score = clampScore(out.Score)
	return out, nil
}

func (g *Gemini) RoadmapActions(ctx context.Context, prof journey.Profile, role string) ([]journey.ActionDraft, error) {
	prompt := fmt.Sprintf(
		`Create a step-by-step career roadmap for this candidate to become a %q.

Candidate: %s

Produce 5 to 8 ordered, concrete actions. Each has a short title and a one
or two sentence description.
Return JSON: {"actions": [{"title": "...", "description": "..."}, ...]}`,
		role, profileSummary(prof),
	)

	var out struct {
		Actions []journey.ActionDraft `json:"actions"`
	}
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	if len(out.Actions) == 0 {
		return nil, errors.New("gemini: empty roadmap")
	}
	return out.Actions, nil
}

func (g *Gemini) MarketAnalysis(ctx context.Context, role string) (journey.MarketAnalysis, error) {
	prompt := fmt.Sprintf(
		`Provide current job-market intelligence for the role %q.
Return JSON: {"role_title": %q, "demand_score": <int 0-100>,
"summary": "...", "top_skills": ["...", ...]}`,
		role, role,
	)

	var out journey.MarketAnalysis
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return journey.MarketAnalysis{}, err
	}
	out.RoleTitle = role
	out.DemandScore = clampScore(out.DemandScore)
	out.Status = journey.MarketStatusReady
	out.LastUpdated = time.Now().UTC()
	return out, nil
}

func (g *Gemini) ActionQuestions(ctx context.Context, prof journey.Profile, action journey.Action, count int) ([]string, error) {
	prompt := fmt.Sprintf(
		`The candidate below is working on the roadmap step %q (%s) toward the
role %q. Generate exactly %d questions that test whether they have completed
this step and absorbed its material.

Candidate: %s
Return JSON: {"questions": ["...", ...]}`,
		action.Title, action.Description, roleOrGeneral(prof.TargetRole), count, profileSummary(prof),
	)

	var out struct {
		Questions []string `json:"questions"`
	}
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return clampQuestions(out.Questions, count)
}

func (g *Gemini) ActionAssessment(ctx context.Context, action journey.Action, questions, answers []string) (journey.ActionAssessment, error) {
	prompt := fmt.Sprintf(
		`Assess the candidate's answers about the roadmap step %q.

Question/answer pairs:
%s
Score mastery of this step 0-100 and give a confidence 0-100 in that score.
Return JSON: {"score": <int>, "confidence": <int>}`,
		action.Title, qaPairs(questions, answers),
	)

	var out journey.ActionAssessment
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return journey.ActionAssessment{}, err
	}
	out.Score = clampScore(out.Score)
	out.Confidence = clampScore(out.Confidence)
	return out, nil
}

func (g *Gemini) Feedback(ctx context.Context, doc journey.UserProfile) (string, error) {
	snapshot, _ := json.Marshal(struct {
		Profile   journey.Profile    `json:"profile"`
		Readiness *journey.Readiness `json:"readiness,omitempty"`
		Roadmap   []journey.Action   `json:"roadmap,omitempty"`
	}{doc.Profile, doc.Readiness, doc.Roadmap})

	prompt := fmt.Sprintf(
		`You are a career coach. Based on this user's journey state, write a short,
encouraging, concrete feedback paragraph: what is going well, what to focus
on next.

State: %s`,
		snapshot,
	)
	return g.generateText(ctx, prompt)
}

func (g *Gemini) ChatReply(ctx context.Context, doc journey.UserProfile, message string, history []journey.ChatMessage) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a hands-on career mentor for %s, who is working toward the role %q.\n\n",
		doc.Profile.Name, roleOrGeneral(doc.Profile.TargetRole))
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&b, "user: %s\nmentor:", message)
	return g.generateText(ctx, b.String())
}

func (g *Gemini) ResumeSkills(ctx context.Context, resumeText string) ([]string, error) {
	prompt := fmt.Sprintf(
		`Extract the professional skills from this resume text. Deduplicate and
use canonical names (e.g. "PostgreSQL", not "postgres db").
Return JSON: {"skills": ["...", ...]}

Resume:
%s`,
		resumeText,
	)

	var out struct {
		Skills []string `json:"skills"`
	}
	if err := g.generateJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

func (g *Gemini) generateText(ctx context.Context, prompt string) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

func (g *Gemini) generateJSON(ctx context.Context, prompt string, out any) error {
	if !g.Configured() {
		return ErrNotConfigured
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	raw := stripFences(resp.Text())
	if raw == "" {
		return errors.New("gemini: empty response")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("gemini: bad json: %w", err)
	}
	return nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// despite the response MIME type.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func profileSummary(p journey.Profile) string {
	return fmt.Sprintf("name=%s; skills=%s; strengths=%s; weaknesses=%s; experience_years=%d",
		p.Name,
		strings.Join(p.Skills, ", "),
		strings.Join(p.Strengths, ", "),
		strings.Join(p.Weaknesses, ", "),
		p.ExperienceYears,
	)
}

func roleOrGeneral(role string) string {
	if strings.TrimSpace(role) == "" {
		return "a role of their choosing"
	}
	return role
}

func qaPairs(questions, answers []string) string {
	var b strings.Builder
	for i := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		fmt.Fprintf(&b, "Q%d: %s\nA%d: %s\n", i+1, questions[i], i+1, answer)
	}
	return b.String()
}

func clampQuestions(qs []string, count int) ([]string, error) {
	cleaned := make([]string, 0, len(qs))
	for _, q := range qs {
		q = strings.TrimSpace(q)
		if q != "" {
			cleaned = append(cleaned, q)
		}
	}
	if len(cleaned) < count {
		return nil, fmt.Errorf("gemini: got %d questions, want %d", len(cleaned), count)
	}
	return cleaned[:count], nil
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
