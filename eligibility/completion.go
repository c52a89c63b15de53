package eligibility

import (
	"fmt"
	"math"
	"strings"

	"github.com/TalentLink/talentGo/models"
)

// Completion is the result of evaluating a profile against its role's field
// catalog. It is computed on demand; persisting it back onto the profile
// document is the caller's job.
type Completion struct {
	IsComplete           bool
	CompletionPercentage int
	MissingFields        []string
	CompletedFields      []string
	NextStep             string
}

// Hint tiers for NextStep, highest priority first.
var (
	skillFields = map[string]bool{
		"skills": true, "interests": true, "expertise": true, "mentorshipAreas": true,
	}
	aboutFields = map[string]bool{
		"bio": true, "experience": true, "education": true, "description": true,
	}
)

// ComputeCompletion classifies every catalog field of the profile's role as
// completed or missing. Strings count when non-blank after trimming,
// string lists when non-empty. A nil profile is 0% complete.
func ComputeCompletion(profile *models.ProfileModel) Completion {
	if profile == nil {
		return Completion{
			CompletionPercentage: 0,
			MissingFields:        []string{"All profile data missing"},
			CompletedFields:      []string{},
			NextStep:             "Complete your basic information",
		}
	}

	catalog := RequirementsFor(profile.Role).All()

	completed := []string{}
	missing := []string{}
	for _, field := range catalog {
		if fieldFilled(profile, field) {
			completed = append(completed, field)
		} else {
			missing = append(missing, field)
		}
	}

	percentage := int(math.Round(float64(len(completed)) * 100 / float64(len(catalog))))

	return Completion{
		IsComplete:           len(missing) == 0,
		CompletionPercentage: percentage,
		MissingFields:        missing,
		CompletedFields:      completed,
		NextStep:             nextStep(missing),
	}
}

func fieldFilled(profile *models.ProfileModel, field string) bool {
	switch field {
	case "firstName":
		return filledString(profile.FirstName)
	case "lastName":
		return filledString(profile.LastName)
	case "email":
		return filledString(profile.Email)
	case "skills":
		return len(profile.Skills) > 0
	case "interests":
		return len(profile.Interests) > 0
	case "experience":
		return filledString(profile.Experience)
	case "education":
		return filledString(profile.Education)
	case "expertise":
		return len(profile.Expertise) > 0
	case "mentorshipAreas":
		return len(profile.MentorshipAreas) > 0
	case "bio":
		return filledString(profile.Bio)
	case "availability":
		return filledString(profile.Availability)
	case "organizationName":
		return filledString(profile.OrganizationName)
	case "organizationType":
		return filledString(profile.OrganizationType)
	case "website":
		return filledString(profile.Website)
	case "description":
		return filledString(profile.Description)
	case "location":
		return filledString(profile.Location)
	}
	return false
}

func filledString(value string) bool {
	return len(strings.TrimSpace(value)) > 0
}

func nextStep(missing []string) string {
	if len(missing) == 0 {
		return "Profile complete!"
	}

	for _, field := range missing {
		for _, basic := range basicFields {
			if field == basic {
				return "Complete your basic information"
			}
		}
	}

	for _, field := range missing {
		if skillFields[field] {
			return "Add your skills and areas of interest"
		}
	}

	for _, field := range missing {
		if aboutFields[field] {
			return "Tell others about your background and experience"
		}
	}

	names := missing
	if len(names) > 3 {
		names = names[:3]
	}
	return fmt.Sprintf("Complete remaining fields: %s", strings.Join(names, ", "))
}
