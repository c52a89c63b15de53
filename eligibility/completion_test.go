package eligibility

import (
	"testing"

	"github.com/TalentLink/talentGo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeMentorProfile() *models.ProfileModel {
	return &models.ProfileModel{
		UserId:          "mentor-1",
		Role:            models.RoleMentor,
		FirstName:       "A",
		LastName:        "B",
		Email:           "a@b.com",
		Expertise:       []string{"x"},
		MentorshipAreas: []string{"y"},
		Experience:      "5y",
		Bio:             "Long-time engineer",
		Availability:    "weekly",
		LinkedInURL:     "https://linkedin.com/in/a",
	}
}

func TestComputeCompletion_NilProfile(t *testing.T) {
	result := ComputeCompletion(nil)

	assert.False(t, result.IsComplete)
	assert.Equal(t, 0, result.CompletionPercentage)
	assert.Equal(t, []string{"All profile data missing"}, result.MissingFields)
	assert.Empty(t, result.CompletedFields)
}

func TestComputeCompletion_CompleteMentor(t *testing.T) {
	result := ComputeCompletion(completeMentorProfile())

	assert.True(t, result.IsComplete)
	assert.Equal(t, 100, result.CompletionPercentage)
	assert.Empty(t, result.MissingFields)
	assert.Equal(t, "Profile complete!", result.NextStep)
}

func TestComputeCompletion_BlankStringsDoNotCount(t *testing.T) {
	profile := completeMentorProfile()
	profile.Bio = "   "

	result := ComputeCompletion(profile)

	assert.False(t, result.IsComplete)
	assert.Contains(t, result.MissingFields, "bio")
	assert.NotContains(t, result.CompletedFields, "bio")
}

func TestComputeCompletion_EmptySequencesDoNotCount(t *testing.T) {
	profile := completeMentorProfile()
	profile.Expertise = []string{}

	result := ComputeCompletion(profile)

	assert.False(t, result.IsComplete)
	assert.Contains(t, result.MissingFields, "expertise")
}

func TestComputeCompletion_PercentageDependsOnlyOnFilledSet(t *testing.T) {
	// Two profiles with the same fields filled but different values score
	// the same.
	first := &models.ProfileModel{
		Role:      models.RoleUser,
		FirstName: "Ada",
		Email:     "ada@example.com",
		Skills:    []string{"go"},
	}
	second := &models.ProfileModel{
		Role:      models.RoleUser,
		FirstName: "Grace",
		Email:     "grace@example.com",
		Skills:    []string{"compilers", "navy"},
	}

	assert.Equal(t,
		ComputeCompletion(first).CompletionPercentage,
		ComputeCompletion(second).CompletionPercentage)
}

func TestComputeCompletion_Rounding(t *testing.T) {
	// user catalog has 7 fields; 5 filled is 71.43%, rounded to 71.
	profile := &models.ProfileModel{
		Role:       models.RoleUser,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Skills:     []string{"go"},
		Experience: "10y",
	}

	result := ComputeCompletion(profile)

	require.Len(t, result.CompletedFields, 5)
	assert.Equal(t, 71, result.CompletionPercentage)
}

func TestComputeCompletion_NextStepPriorities(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *models.ProfileModel)
		expected string
	}{
		{
			name:     "missing basic wins",
			mutate:   func(p *models.ProfileModel) { p.Email = ""; p.Expertise = nil; p.Bio = "" },
			expected: "Complete your basic information",
		},
		{
			name:     "missing skills next",
			mutate:   func(p *models.ProfileModel) { p.Expertise = nil; p.Bio = "" },
			expected: "Add your skills and areas of interest",
		},
		{
			name:     "missing bio next",
			mutate:   func(p *models.ProfileModel) { p.Bio = "" },
			expected: "Tell others about your background and experience",
		},
		{
			name:     "generic fallback names remaining fields",
			mutate:   func(p *models.ProfileModel) { p.Availability = "" },
			expected: "Complete remaining fields: availability",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := completeMentorProfile()
			tt.mutate(profile)

			assert.Equal(t, tt.expected, ComputeCompletion(profile).NextStep)
		})
	}
}

func TestRequirementsFor_UnknownRoleGetsBasicOnly(t *testing.T) {
	catalog := RequirementsFor("robot")

	assert.Equal(t, []string{"firstName", "lastName", "email"}, catalog.Basic)
	assert.Empty(t, catalog.RoleSpecific)
}
