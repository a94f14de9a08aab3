package journey

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"career-navigator/internal/domain/journey"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OnboardInput struct {
	Name            string
	Email           string
	TargetRole      string
	Skills          []string
	Strengths       []string
	Weaknesses      []string
	ExperienceYears int
	Phone           string
}

type OnboardResult struct {
	UserID  string
	Profile journey.Profile
	Exists  bool
	// Warning is set when the profile committed but market analysis could
	// not be generated; the analysis is stored as pending.
	Warning string
}

// Onboard resolves the submitted fields to a user document, creating one on
// first contact. An empty TargetRole means identity-check only: an existing
// user is returned untouched. A real TargetRole that differs from the stored
// one regenerates market analysis before the response returns.
func (s *Service) Onboard(ctx context.Context, in OnboardInput) (OnboardResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return OnboardResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if in.ExperienceYears < 0 {
		return OnboardResult{}, fmt.Errorf("%w: experience_years must be non-negative", ErrInvalidInput)
	}
	role := strings.TrimSpace(in.TargetRole)

	existing, exists := s.store.FindByEmail(ctx, email)

	if role == "" {
		if exists {
			return OnboardResult{UserID: existing.UserID, Profile: existing.Profile, Exists: true}, nil
		}
		doc := journey.UserProfile{
			UserID:  uuid.NewString(),
			Profile: applyProfile(journey.Profile{}, in, email, ""),
		}
		if !s.store.Upsert(ctx, doc.UserID, doc) {
			return OnboardResult{}, fmt.Errorf("%w: profile write failed", ErrInternal)
		}
		s.invalidateSnapshots(ctx, doc.UserID)
		return OnboardResult{UserID: doc.UserID, Profile: doc.Profile, Exists: false}, nil
	}

	var doc journey.UserProfile
	if exists {
		doc = existing
	} else {
		doc = journey.UserProfile{UserID: uuid.NewString()}
	}

	updated := applyProfile(doc.Profile, in, email, role)
	marketFresh := doc.MarketAnalysis != nil &&
		doc.MarketAnalysis.RoleTitle == role &&
		doc.MarketAnalysis.Status == journey.MarketStatusReady

	if exists && marketFresh && profilesEqual(doc.Profile, updated) {
		// Identical input: stored state already matches, skip the write.
		return OnboardResult{UserID: doc.UserID, Profile: doc.Profile, Exists: true}, nil
	}

	doc.Profile = updated

	var warning string
	if !marketFresh {
		ma, err := s.gen.MarketAnalysis(ctx, role)
		if err != nil {
			// Policy: the profile write commits regardless. The analysis is
			// stored pending under the new role so no stale-role market data
			// is ever observable.
			s.log.Warn("market analysis generation failed",
				zap.String("user_id", doc.UserID), zap.String("role", role), zap.Error(err))
			warning = "market analysis unavailable, it will be regenerated on the next read"
			doc.MarketAnalysis = &journey.MarketAnalysis{
				RoleTitle:   role,
				Status:      journey.MarketStatusPending,
				LastUpdated: time.Now().UTC(),
			}
		} else {
			doc.MarketAnalysis = &ma
		}
	}

	if !s.store.Upsert(ctx, doc.UserID, doc) {
		return OnboardResult{}, fmt.Errorf("%w: profile write failed", ErrInternal)
	}
	s.invalidateSnapshots(ctx, doc.UserID)

	return OnboardResult{UserID: doc.UserID, Profile: doc.Profile, Exists: exists, Warning: warning}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// applyProfile overlays the submitted fields on the stored profile. Omitted
// fields keep their stored values, so an identity-check followed by a real
// onboarding does not wipe earlier data.
func applyProfile(base journey.Profile, in OnboardInput, email, role string) journey.Profile {
	p := base
	p.Email = email
	p.TargetRole = role
	if name := strings.TrimSpace(in.Name); name != "" {
		p.Name = name
	}
	if in.Skills != nil {
		p.Skills = in.Skills
	}
	if in.Strengths != nil {
		p.Strengths = in.Strengths
	}
	if in.Weaknesses != nil {
		p.Weaknesses = in.Weaknesses
	}
	if in.ExperienceYears > 0 {
		p.ExperienceYears = in.ExperienceYears
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		p.Phone = phone
	}
	return p
}

func profilesEqual(a, b journey.Profile) bool {
	return a.Name == b.Name &&
		a.Email == b.Email &&
		a.TargetRole == b.TargetRole &&
		a.ExperienceYears == b.ExperienceYears &&
		a.Phone == b.Phone &&
		slices.Equal(a.Skills, b.Skills) &&
		slices.Equal(a.Strengths, b.Strengths) &&
		slices.Equal(a.Weaknesses, b.Weaknesses)
}
