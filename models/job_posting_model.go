package models

import (
	"github.com/google/uuid"
)

// JobPostingModel is a job listing created by an organization account.
// Closing a job is a soft delete: IsDeleted flips, the document stays.
type JobPostingModel struct {
	JobId       string   `bson:"_id"`
	Title       string   `bson:"title"`
	Description string   `bson:"description"`
	UserId      string   `bson:"userId"`
	CompanyName string   `bson:"companyName"`
	Location    string   `bson:"location"`
	JobType     string   `bson:"jobType"`
	Skills      []string `bson:"skills"`
	SalaryRange string   `bson:"salaryRange"`
	NumViews    int64    `bson:"numViews"`
	CreatedOn   int64    `bson:"createdOn"`
	IsDeleted   bool     `bson:"isDeleted"`
}

func (m *JobPostingModel) Id() string {
	if len(m.JobId) == 0 {
		m.JobId = uuid.NewString()
	}
	return m.JobId
}
