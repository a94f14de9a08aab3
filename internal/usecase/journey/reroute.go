package journey

import (
	"context"
	"fmt"
	"strings"

	"career-navigator/internal/domain/journey"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type RerouteResult struct {
	TargetRole string
	Market     journey.MarketAnalysis
	Roadmap    []journey.Action
}

// Reroute switches the user to a new target role: market analysis and
// roadmap are regenerated together and committed with the role in a single
// document update. The prior roadmap is superseded, not merged. If either
// generation fails nothing is written.
func (s *Service) Reroute(ctx context.Context, userID, newRole string) (RerouteResult, error) {
	role := strings.TrimSpace(newRole)
	if role == "" {
		return RerouteResult{}, fmt.Errorf("%w: new_role is required", ErrInvalidInput)
	}

	doc, ok := s.store.Get(ctx, userID)
	if !ok {
		return RerouteResult{}, notFoundUser(userID)
	}

	prof := doc.Profile
	prof.TargetRole = role

	var (
		market journey.MarketAnalysis
		drafts []journey.ActionDraft
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		market, err = s.gen.MarketAnalysis(gctx, role)
		return err
	})
	g.Go(func() error {
		var err error
		drafts, err = s.gen.RoadmapActions(gctx, prof, role)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("reroute generation failed",
			zap.String("user_id", userID), zap.String("role", role), zap.Error(err))
		return RerouteResult{}, fmt.Errorf("%w: reroute generation failed", ErrInternal)
	}

	actions := draftsToActions(drafts)
	fields := map[string]any{
		"profile":         prof,
		"market_analysis": market,
		"roadmap":         actions,
	}
	if !s.store.Patch(ctx, userID, fields) {
		return RerouteResult{}, fmt.Errorf("%w: reroute write failed", ErrInternal)
	}

	s.questions.purgeActions(userID)
	s.invalidateSnapshots(ctx, userID)
	return RerouteResult{TargetRole: role, Market: market, Roadmap: actions}, nil
}
