package dto

type CreateJobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CompanyName string   `json:"companyName"`
	Location    string   `json:"location"`
	JobType     string   `json:"jobType"`
	Skills      []string `json:"skills"`
	SalaryRange string   `json:"salaryRange"`
}

type JobResponse struct {
	JobId       string   `json:"jobId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UserId      string   `json:"userId"`
	CompanyName string   `json:"companyName"`
	Location    string   `json:"location"`
	JobType     string   `json:"jobType"`
	Skills      []string `json:"skills"`
	SalaryRange string   `json:"salaryRange"`
	NumViews    int64    `json:"numViews"`
	CreatedOn   int64    `json:"createdOn"`
}

type JobFilters struct {
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
	JobType  string   `json:"jobType"`
}

type SearchJobsRequest struct {
	Filters    *JobFilters `json:"filters"`
	PageNumber int64       `json:"pageNumber"`
	PageSize   int64       `json:"pageSize"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	PageNumber int64          `json:"pageNumber"`
	PageSize   int64          `json:"pageSize"`
}
