package models

const (
	RoleUser         = "user"
	RoleMentor       = "mentor"
	RoleOrganization = "organization"
)

// ProfileModel holds every role's fields in one document; which of them count
// towards completion depends on Role. ProfileComplete and
// ProfileCompletionPercentage are caches written together with the fields they
// were derived from.
type ProfileModel struct {
	UserId    string `bson:"_id"`
	Role      string `bson:"role"`
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName"`
	Email     string `bson:"email"`
	PhotoUrl  string `bson:"photoUrl"`

	// user
	Skills    []string `bson:"skills"`
	Interests []string `bson:"interests"`
	Education string   `bson:"education"`

	// mentor
	Expertise       []string `bson:"expertise"`
	MentorshipAreas []string `bson:"mentorshipAreas"`
	Bio             string   `bson:"bio"`
	Availability    string   `bson:"availability"`
	LinkedInURL     string   `bson:"linkedinUrl"`

	// organization
	OrganizationName string `bson:"organizationName"`
	OrganizationType string `bson:"organizationType"`
	Website          string `bson:"website"`
	Description      string `bson:"description"`
	Location         string `bson:"location"`

	// shared by user and mentor catalogs
	Experience string `bson:"experience"`

	ProfileComplete             bool  `bson:"profileComplete"`
	ProfileCompletionPercentage int   `bson:"profileCompletionPercentage"`
	CreatedOn                   int64 `bson:"createdOn"`
}

func (p *ProfileModel) Id() string {
	return p.UserId
}
