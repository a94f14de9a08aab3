package journey

import "time"

type ActionStatus string

const (
	StatusNotStarted ActionStatus = "not-started"
	StatusInProgress ActionStatus = "in-progress"
	StatusCompleted  ActionStatus = "completed"
)

const (
	MarketStatusReady   = "ready"
	MarketStatusPending = "pending"
)

// UserProfile is the single document persisted per user.
type UserProfile struct {
	UserID         string          `json:"user_id"`
	Profile        Profile         `json:"profile"`
	Readiness      *Readiness      `json:"readiness,omitempty"`
	Roadmap        []Action        `json:"roadmap,omitempty"`
	MarketAnalysis *MarketAnalysis `json:"market_analysis,omitempty"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// Profile holds the user-submitted career fields. An empty TargetRole means
// the user has not committed to a role yet.
type Profile struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	TargetRole      string   `json:"target_role"`
	Skills          []string `json:"skills"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	ExperienceYears int      `json:"experience_years"`
	Phone           string   `json:"phone,omitempty"`
}

// Readiness is the persisted outcome of the readiness evaluation. The
// question/answer pairs that produced it are never stored.
type Readiness struct {
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

// Action is one step of a roadmap. ActionID is unique within a single
// roadmap generation; regeneration assigns fresh ids.
type Action struct {
	ActionID    string       `json:"action_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      ActionStatus `json:"status"`
	Score       *int         `json:"score,omitempty"`
	Confidence  *int         `json:"confidence,omitempty"`
}

// MarketAnalysis tracks the current target role. Status is "pending" when
// generation failed and the analysis is awaiting a retry.
type MarketAnalysis struct {
	RoleTitle   string    `json:"role_title"`
	DemandScore int       `json:"demand_score"`
	Summary     string    `json:"summary,omitempty"`
	TopSkills   []string  `json:"top_skills,omitempty"`
	Status      string    `json:"status"`
	LastUpdated time.Time `json:"last_updated"`
}

// ActionDraft is a generated roadmap step before an id is assigned.
type ActionDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ActionAssessment is the generated scoring of one action's answers.
type ActionAssessment struct {
	Score      int `json:"score"`
	Confidence int `json:"confidence"`
}

// ChatMessage is one turn of a hands-on chat conversation. History is
// supplied by the caller on every request and never persisted.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FindAction returns the roadmap action with the given id.
func (u *UserProfile) FindAction(actionID string) (Action, bool) {
	for _, a := range u.Roadmap {
		if a.ActionID == actionID {
			return a, true
		}
	}
	return Action{}, false
}
