package eligibility

import (
	"errors"
	"regexp"
	"strings"

	"github.com/TalentLink/talentGo/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotMentor       = errors.New("profile role is not mentor")
)

var linkedinSchemeRegex = regexp.MustCompile(`(?i)^https?://.+`)

// Requirement is one named gate of the mentor visibility check.
type Requirement struct {
	Key         string
	Label       string
	Description string
	Met         bool
}

// MentorEligibility reports whether a mentor is shown in public listings.
// CompletionPercentage is the cached value from the profile document, not a
// recomputation; ProfileService keeps the cache fresh by writing it in the
// same mutation as the profile fields.
type MentorEligibility struct {
	IsEligible           bool
	CompletionPercentage int
	Requirements         map[string]Requirement
	UnmetRequirements    []Requirement
}

// IsValidLinkedInURL reports whether the value, after trimming, has an
// http(s) scheme and points at linkedin.com. Both checks are required.
func IsValidLinkedInURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	return linkedinSchemeRegex.MatchString(trimmed) &&
		strings.Contains(strings.ToLower(trimmed), "linkedin.com")
}

// EvaluateMentor applies the mentor visibility gate. It fails with
// ErrProfileNotFound or ErrNotMentor rather than guessing; callers surface
// those to the user.
func EvaluateMentor(profile *models.ProfileModel) (*MentorEligibility, error) {
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	if profile.Role != models.RoleMentor {
		return nil, ErrNotMentor
	}

	linkedin := Requirement{
		Key:         "linkedinURL",
		Label:       "LinkedIn profile",
		Description: "Add a valid LinkedIn profile URL to appear in mentor listings",
		Met:         IsValidLinkedInURL(profile.LinkedInURL),
	}

	result := &MentorEligibility{
		IsEligible:           linkedin.Met,
		CompletionPercentage: profile.ProfileCompletionPercentage,
		Requirements:         map[string]Requirement{linkedin.Key: linkedin},
		UnmetRequirements:    []Requirement{},
	}
	if !linkedin.Met {
		result.UnmetRequirements = append(result.UnmetRequirements, linkedin)
	}
	return result, nil
}
