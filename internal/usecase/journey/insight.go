package journey

import (
	"context"
	"fmt"
	"strings"

	"career-navigator/internal/domain/journey"

	"go.uber.org/zap"
)

// Market returns the stored market analysis. A pending analysis (left by an
// onboarding whose generation failed) is retried here; on success the fresh
// analysis is persisted, otherwise the pending record is returned as-is.
func (s *Service) Market(ctx context.Context, userID string) (journey.MarketAnalysis, error) {
	if s.snapshots != nil {
		var cached journey.MarketAnalysis
		if ok, _ := s.snapshots.GetJSON(ctx, marketSnapshotKey(userID), &cached); ok {
			return cached, nil
		}
	}

	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return journey.MarketAnalysis{}, notFoundUser(userID)
	}
	if doc.MarketAnalysis == nil {
		return journey.MarketAnalysis{}, fmt.Errorf(
			"%w: no market analysis for user %s, set a target role first",
			journey.ErrNotFound, userID)
	}

	market := *doc.MarketAnalysis
	if market.Status == journey.MarketStatusPending && doc.Profile.TargetRole != "" {
		fresh, err := s.gen.MarketAnalysis(ctx, doc.Profile.TargetRole)
		if err != nil {
			s.log.Warn("pending market analysis retry failed",
				zap.String("user_id", userID), zap.Error(err))
		} else if s.store.Patch(ctx, userID, map[string]any{"market_analysis": fresh}) {
			s.invalidateSnapshots(ctx, userID)
			market = fresh
		}
	}

	if s.snapshots != nil && market.Status == journey.MarketStatusReady {
		_ = s.snapshots.SetJSON(ctx, marketSnapshotKey(userID), market, 0)
	}
	return market, nil
}

// Dashboard returns the full user document.
func (s *Service) Dashboard(ctx context.Context, userID string) (journey.UserProfile, error) {
	if s.snapshots != nil {
		var cached journey.UserProfile
		if ok, _ := s.snapshots.GetJSON(ctx, dashboardSnapshotKey(userID), &cached); ok {
			return cached, nil
		}
	}

	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return journey.UserProfile{}, notFoundUser(userID)
	}

	if s.snapshots != nil {
		_ = s.snapshots.SetJSON(ctx, dashboardSnapshotKey(userID), doc, 0)
	}
	return doc, nil
}

// Feedback synthesizes a coaching summary from the stored journey state.
// Nothing is persisted.
func (s *Service) Feedback(ctx context.Context, userID string) (string, error) {
	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return "", notFoundUser(userID)
	}

	text, err := s.gen.Feedback(ctx, doc)
	if err != nil {
		s.log.Error("feedback generation failed", zap.String("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("%w: feedback generation failed", ErrInternal)
	}
	return text, nil
}

// Chat answers one hands-on coaching message. The conversation history is
// supplied by the caller on every request; the engine stores nothing.
func (s *Service) Chat(ctx context.Context, userID, message string, history []journey.ChatMessage) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return "", notFoundUser(userID)
	}

	reply, err := s.gen.ChatReply(ctx, doc, message, history)
	if err != nil {
		s.log.Error("chat reply failed", zap.String("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("%w: chat reply failed", ErrInternal)
	}
	return reply, nil
}

// ExtractResumeSkills pulls a structured skill list out of raw resume text.
// Stateless, unrelated to any stored user.
func (s *Service) ExtractResumeSkills(ctx context.Context, resumeText string) ([]string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("%w: resume_text is required", ErrInvalidInput)
	}

	skills, err := s.gen.ResumeSkills(ctx, resumeText)
	if err != nil {
		s.log.Error("resume skill extraction failed", zap.Error(err))
		return nil, fmt.Errorf("%w: resume skill extraction failed", ErrInternal)
	}
	return skills, nil
}
