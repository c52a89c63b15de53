package models

type EnrollmentModel struct {
	EnrollmentId string `bson:"_id"`
	UserId       string `bson:"userId"`
	CourseId     string `bson:"courseId"`
	CreatedOn    int64  `bson:"createdOn"`
}

func (m *EnrollmentModel) Id() string {
	if len(m.EnrollmentId) == 0 {
		m.EnrollmentId = m.UserId + "/" + m.CourseId
	}
	return m.EnrollmentId
}
