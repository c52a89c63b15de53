package dto

type RequirementStatus struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Met         bool   `json:"met"`
}

type EligibilityAction struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Urgent      bool   `json:"urgent"`
}

type MentorEligibilityResponse struct {
	IsEligible           bool                         `json:"isEligible"`
	CompletionPercentage int                          `json:"completionPercentage"`
	Requirements         map[string]RequirementStatus `json:"requirements"`
	UnmetRequirements    []RequirementStatus          `json:"unmetRequirements"`

	MessageType  string              `json:"messageType"`
	MessageTitle string              `json:"messageTitle"`
	MessageBody  string              `json:"messageBody"`
	Actions      []EligibilityAction `json:"actions"`
}

type MentorFilters struct {
	Expertise []string `json:"expertise"`
	Location  string   `json:"location"`
}

type GetMentorDirectoryRequest struct {
	Filters    *MentorFilters `json:"filters"`
	PageNumber int64          `json:"pageNumber"`
	PageSize   int64          `json:"pageSize"`
}

type MentorCard struct {
	UserId               string   `json:"userId"`
	FirstName            string   `json:"firstName"`
	LastName             string   `json:"lastName"`
	PhotoUrl             string   `json:"photoUrl"`
	Expertise            []string `json:"expertise"`
	MentorshipAreas      []string `json:"mentorshipAreas"`
	Bio                  string   `json:"bio"`
	Availability         string   `json:"availability"`
	LinkedInURL          string   `json:"linkedinURL"`
	CompletionPercentage int      `json:"completionPercentage"`
}

type MentorDirectoryResponse struct {
	Mentors    []MentorCard `json:"mentors"`
	PageNumber int64        `json:"pageNumber"`
	PageSize   int64        `json:"pageSize"`
}
