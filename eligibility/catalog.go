package eligibility

import "github.com/TalentLink/talentGo/models"

// FieldRequirements lists the profile fields a role must fill before the
// profile counts as complete. Basic is the same for every role.
//
// The mentor LinkedIn gate is deliberately not part of this catalog; it is a
// separate, stricter visibility rule evaluated by EvaluateMentor.
type FieldRequirements struct {
	Basic        []string
	RoleSpecific []string
}

var basicFields = []string{"firstName", "lastName", "email"}

var roleSpecificFields = map[string][]string{
	models.RoleUser:         {"skills", "interests", "experience", "education"},
	models.RoleMentor:       {"expertise", "mentorshipAreas", "experience", "bio", "availability"},
	models.RoleOrganization: {"organizationName", "organizationType", "website", "description", "location"},
}

// RequirementsFor returns the field catalog for a role. Unknown roles get the
// basic fields only.
func RequirementsFor(role string) FieldRequirements {
	return FieldRequirements{
		Basic:        basicFields,
		RoleSpecific: roleSpecificFields[role],
	}
}

// All returns basic followed by role-specific field names.
func (f FieldRequirements) All() []string {
	all := make([]string, 0, len(f.Basic)+len(f.RoleSpecific))
	all = append(all, f.Basic...)
	all = append(all, f.RoleSpecific...)
	return all
}
