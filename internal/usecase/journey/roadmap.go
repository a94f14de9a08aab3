package journey

import (
	"context"
	"fmt"
	"strings"

	"career-navigator/internal/domain/journey"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Roadmap returns the stored roadmap.
func (s *Service) Roadmap(ctx context.Context, userID string) ([]journey.Action, error) {
	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return nil, notFoundUser(userID)
	}
	if len(doc.Roadmap) == 0 {
		return nil, fmt.Errorf("%w: no roadmap for user %s", journey.ErrNotFound, userID)
	}
	return doc.Roadmap, nil
}

// RegenerateRoadmap replaces the user's roadmap with a freshly generated
// one. Every action gets a new id, orphaning assessments of the previous
// generation. A target role different from the stored one also regenerates
// market analysis; everything lands in one atomic document update, and a
// generation failure leaves the stored state untouched.
func (s *Service) RegenerateRoadmap(ctx context.Context, userID, targetRole string) ([]journey.Action, error) {
	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return nil, notFoundUser(userID)
	}

	role := strings.TrimSpace(targetRole)
	if role == "" {
		role = doc.Profile.TargetRole
	}
	if role == "" {
		return nil, fmt.Errorf("%w: no target role set, onboard with a role first", ErrInvalidInput)
	}

	fields := make(map[string]any, 3)
	if role != doc.Profile.TargetRole {
		market, err := s.gen.MarketAnalysis(ctx, role)
		if err != nil {
			s.log.Error("market analysis generation failed",
				zap.String("user_id", userID), zap.String("role", role), zap.Error(err))
			return nil, fmt.Errorf("%w: market analysis generation failed", ErrInternal)
		}
		doc.Profile.TargetRole = role
		fields["profile"] = doc.Profile
		fields["market_analysis"] = market
	}

	drafts, err := s.gen.RoadmapActions(ctx, doc.Profile, role)
	if err != nil {
		s.log.Error("roadmap generation failed",
			zap.String("user_id", userID), zap.String("role", role), zap.Error(err))
		return nil, fmt.Errorf("%w: roadmap generation failed", ErrInternal)
	}
	actions := draftsToActions(drafts)
	fields["roadmap"] = actions

	if !s.store.Patch(ctx, userID, fields) {
		return nil, fmt.Errorf("%w: roadmap write failed", ErrInternal)
	}

	s.questions.purgeActions(userID)
	s.invalidateSnapshots(ctx, userID)
	return actions, nil
}

func draftsToActions(drafts []journey.ActionDraft) []journey.Action {
	actions := make([]journey.Action, 0, len(drafts))
	for _, d := range drafts {
		actions = append(actions, journey.Action{
			ActionID:    uuid.NewString(),
			Title:       d.Title,
			Description: d.Description,
			Status:      journey.StatusNotStarted,
		})
	}
	return actions
}
