package eligibility

import (
	"testing"

	"github.com/TalentLink/talentGo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidLinkedInURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://linkedin.com/in/x", true},
		{"http://linkedin.com/in/x", true},
		{"  https://www.LinkedIn.com/in/y  ", true},
		{"HTTPS://WWW.LINKEDIN.COM/IN/Z", true},
		{"linkedin.com/in/x", false},
		{"https://example.com", false},
		{"ftp://linkedin.com/in/x", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidLinkedInURL(tt.url))
		})
	}
}

func TestEvaluateMentor_NilProfile(t *testing.T) {
	_, err := EvaluateMentor(nil)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestEvaluateMentor_WrongRole(t *testing.T) {
	_, err := EvaluateMentor(&models.ProfileModel{Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrNotMentor)
}

func TestEvaluateMentor_Eligible(t *testing.T) {
	profile := completeMentorProfile()
	profile.ProfileCompletionPercentage = 100

	result, err := EvaluateMentor(profile)
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	assert.Equal(t, 100, result.CompletionPercentage)
	assert.Empty(t, result.UnmetRequirements)
	assert.True(t, result.Requirements["linkedinURL"].Met)
}

// The completion catalog and the LinkedIn gate are independent: a profile can
// be 100% complete and still be invisible in mentor listings.
func TestEvaluateMentor_GatesAreIndependent(t *testing.T) {
	profile := completeMentorProfile()
	profile.LinkedInURL = ""

	completion := ComputeCompletion(profile)
	assert.True(t, completion.IsComplete)
	assert.Equal(t, 100, completion.CompletionPercentage)

	profile.ProfileCompletionPercentage = completion.CompletionPercentage

	result, err := EvaluateMentor(profile)
	require.NoError(t, err)

	assert.False(t, result.IsEligible)
	require.Len(t, result.UnmetRequirements, 1)
	assert.Equal(t, "linkedinURL", result.UnmetRequirements[0].Key)
}

// CompletionPercentage is the cached value from the document, not a
// recomputation.
func TestEvaluateMentor_PassesThroughCachedCompletion(t *testing.T) {
	profile := completeMentorProfile()
	profile.ProfileCompletionPercentage = 37

	result, err := EvaluateMentor(profile)
	require.NoError(t, err)

	assert.Equal(t, 37, result.CompletionPercentage)
}

func TestBuildEligibilityMessage_Eligible(t *testing.T) {
	profile := completeMentorProfile()
	result, err := EvaluateMentor(profile)
	require.NoError(t, err)

	message := BuildEligibilityMessage(result)

	assert.Equal(t, MessageSuccess, message.Type)
	assert.Empty(t, message.Actions)
}

func TestBuildEligibilityMessage_Urgency(t *testing.T) {
	tests := []struct {
		name       string
		completion int
		urgent     bool
	}{
		{"under threshold is urgent", 59, true},
		{"at threshold is not urgent", 60, false},
		{"above threshold is not urgent", 85, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := completeMentorProfile()
			profile.LinkedInURL = ""
			profile.ProfileCompletionPercentage = tt.completion

			result, err := EvaluateMentor(profile)
			require.NoError(t, err)

			message := BuildEligibilityMessage(result)

			assert.Equal(t, MessageWarning, message.Type)
			require.Len(t, message.Actions, 1)
			assert.Equal(t, "linkedinURL", message.Actions[0].Key)
			assert.Equal(t, tt.urgent, message.Actions[0].Urgent)
		})
	}
}
