package dto

import (
	"time"

	"github.com/jobboard/jobboard-api/internal/domain"
)

// CreateJobRequest payload for POST /jobs.
type CreateJobRequest struct {
	Title  string  `json:"title"`
	Salary int     `json:"salary"`
	Equity float64 `json:"equity"`
}

// UpdateJobRequest payload for PATCH /jobs/:id.
type UpdateJobRequest struct {
	Title  *string  `json:"title"`
	Salary *int     `json:"salary"`
	Equity *float64 `json:"equity"`
}

// JobResponse is the public view of a job.
type JobResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Salary    int       `json:"salary"`
	Equity    float64   `json:"equity"`
	Company   string    `json:"company_handle"`
	CreatedAt time.Time `json:"created_at"`
}

// NewJobResponse maps a domain job.
func NewJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		ID:        j.ID,
		Title:     j.Title,
		Salary:    j.Salary,
		Equity:    j.Equity,
		Company:   j.Company,
		CreatedAt: j.CreatedAt,
	}
}

// NewJobList maps a slice of jobs.
func NewJobList(jobs []domain.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}

// ApplicationResponse is the public view of an application.
type ApplicationResponse struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NewApplicationList maps a slice of applications.
func NewApplicationList(apps []domain.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(&a))
	}
	return out
}

// NewApplicationResponse maps a domain application.
func NewApplicationResponse(a *domain.Application) ApplicationResponse {
	return ApplicationResponse{ID: a.ID, JobID: a.JobID, Username: a.Username, CreatedAt: a.CreatedAt}
}
