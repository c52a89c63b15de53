package models

import (
	"github.com/google/uuid"
)

// CourseModel is a course listing created by a mentor. NumEnrollments is a
// redundant counter kept alongside the enrollment collection.
type CourseModel struct {
	CourseId       string   `bson:"_id"`
	Title          string   `bson:"title"`
	Description    string   `bson:"description"`
	UserId         string   `bson:"userId"`
	Topics         []string `bson:"topics"`
	Level          string   `bson:"level"`
	Duration       string   `bson:"duration"`
	NumEnrollments int64    `bson:"numEnrollments"`
	CreatedOn      int64    `bson:"createdOn"`
	IsDeleted      bool     `bson:"isDeleted"`
}

func (m *CourseModel) Id() string {
	if len(m.CourseId) == 0 {
		m.CourseId = uuid.NewString()
	}
	return m.CourseId
}
