package dto

type GetProfileRequest struct {
	UserId string `json:"userId"`
}

type CreateProfileRequest struct {
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// UpdateProfileRequest carries the full editable field set; the service
// applies only the fields relevant to the profile's role.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	PhotoUrl  string `json:"photoUrl"`

	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`

	Expertise       []string `json:"expertise"`
	MentorshipAreas []string `json:"mentorshipAreas"`
	Bio             string   `json:"bio"`
	Availability    string   `json:"availability"`
	LinkedInURL     string   `json:"linkedinURL"`

	OrganizationName string `json:"organizationName"`
	OrganizationType string `json:"organizationType"`
	Website          string `json:"website"`
	Description      string `json:"description"`
	Location         string `json:"location"`
}

type ProfileResponse struct {
	UserId   string `json:"userId"`
	Role     string `json:"role"`
	PhotoUrl string `json:"photoUrl"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`

	Expertise       []string `json:"expertise"`
	MentorshipAreas []string `json:"mentorshipAreas"`
	Bio             string   `json:"bio"`
	Availability    string   `json:"availability"`
	LinkedInURL     string   `json:"linkedinURL"`

	OrganizationName string `json:"organizationName"`
	OrganizationType string `json:"organizationType"`
	Website          string `json:"website"`
	Description      string `json:"description"`
	Location         string `json:"location"`

	ProfileComplete             bool `json:"profileComplete"`
	ProfileCompletionPercentage int  `json:"profileCompletionPercentage"`
}

type CompletionResponse struct {
	IsComplete           bool     `json:"isComplete"`
	CompletionPercentage int      `json:"completionPercentage"`
	MissingFields        []string `json:"missingFields"`
	CompletedFields      []string `json:"completedFields"`
	NextStep             string   `json:"nextStep"`
}
