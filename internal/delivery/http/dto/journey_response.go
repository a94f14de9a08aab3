package dto

import "career-navigator/internal/domain/journey"

type OnboardResponse struct {
	UserID  string          `json:"user_id"`
	Message string          `json:"message"`
	Profile journey.Profile `json:"profile"`
	Exists  bool            `json:"exists"`
	Warning string          `json:"warning,omitempty"`
}

type QuestionsResponse struct {
	UserID    string   `json:"user_id"`
	ActionID  string   `json:"action_id,omitempty"`
	Questions []string `json:"questions"`
}

type ReadinessResultResponse struct {
	UserID  string `json:"user_id"`
	Score   int    `json:"score"`
	Summary string `json:"summary"`
}

type RoadmapResponse struct {
	UserID  string           `json:"user_id"`
	Actions []journey.Action `json:"actions"`
}

type ActionAssessResponse struct {
	UserID string         `json:"user_id"`
	Action journey.Action `json:"action"`
}

type RerouteResponse struct {
	UserID     string                 `json:"user_id"`
	TargetRole string                 `json:"target_role"`
	Market     journey.MarketAnalysis `json:"market_analysis"`
	Roadmap    []journey.Action       `json:"roadmap"`
}

type FeedbackResponse struct {
	UserID   string `json:"user_id"`
	Feedback string `json:"feedback"`
}

type ChatResponse struct {
	UserID string `json:"user_id"`
	Reply  string `json:"reply"`
}

type ResumeSkillsResponse struct {
	Skills []string `json:"skills"`
}
