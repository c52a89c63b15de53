package dto

type CreateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	Level       string   `json:"level"`
	Duration    string   `json:"duration"`
}

type CourseResponse struct {
	CourseId       string   `json:"courseId"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	UserId         string   `json:"userId"`
	Topics         []string `json:"topics"`
	Level          string   `json:"level"`
	Duration       string   `json:"duration"`
	NumEnrollments int64    `json:"numEnrollments"`
	CreatedOn      int64    `json:"createdOn"`

	ViewerIsEnrolled bool `json:"viewerIsEnrolled"`
}

type CourseFilters struct {
	Topic     string `json:"topic"`
	Level     string `json:"level"`
	CreatedBy string `json:"createdBy"`
}

type ListCoursesRequest struct {
	Filters    *CourseFilters `json:"filters"`
	PageNumber int64          `json:"pageNumber"`
	PageSize   int64          `json:"pageSize"`
}

type CourseListResponse struct {
	Courses    []*CourseResponse `json:"courses"`
	PageNumber int64             `json:"pageNumber"`
	PageSize   int64             `json:"pageSize"`
}

type EnrollRequest struct {
	CourseId string `json:"courseId"`
}

type EnrollmentsResponse struct {
	CourseIds []string `json:"courseIds"`
}
