package service

import (
	"context"

	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/events"
	"github.com/jobboard/jobboard-api/internal/repository"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// JobCreateInput describes a new posting.
type JobCreateInput struct {
	Title  string
	Salary int
	Equity float64
}

// JobService coordinates job postings.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
}

// NewJobService builds the service. dispatcher may be nil.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, dispatcher: dispatcher}
}

// Create posts a job for the authenticated company.
func (s *JobService) Create(ctx context.Context, company string, in JobCreateInput) (*domain.Job, error) {
	if err := validateJob(&in.Title, &in.Salary, &in.Equity); err != nil {
		return nil, err
	}
	job := &domain.Job{Title: in.Title, Salary: in.Salary, Equity: in.Equity, Company: company}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, companyReference(err)
	}

	s.publish(ctx, events.NewEvent(events.EventJobPosted,
		events.Actor{Type: domain.SubjectTypeCompany, ID: company},
		events.JobPostedPayload{JobID: job.ID, Title: job.Title, Company: company, Salary: job.Salary, Equity: job.Equity},
	))
	return job, nil
}

// List returns jobs matching the filter.
func (s *JobService) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

// Get returns a job by id.
func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Job")
	}
	return job, nil
}

// Update changes a job owned by company.
func (s *JobService) Update(ctx context.Context, company string, id int64, patch domain.JobPatch) (*domain.Job, error) {
	if _, err := s.owned(ctx, company, id); err != nil {
		return nil, err
	}
	if err := validateJob(patch.Title, patch.Salary, patch.Equity); err != nil {
		return nil, err
	}
	job, err := s.jobs.Update(ctx, id, patch)
	if err != nil {
		return nil, notFound(err, "Job")
	}
	return job, nil
}

// Delete removes a job owned by company.
func (s *JobService) Delete(ctx context.Context, company string, id int64) (*domain.Job, error) {
	if _, err := s.owned(ctx, company, id); err != nil {
		return nil, err
	}
	job, err := s.jobs.Delete(ctx, id)
	if err != nil {
		return nil, notFound(err, "Job")
	}
	return job, nil
}

// owned loads the job and checks it belongs to company.
func (s *JobService) owned(ctx context.Context, company string, id int64) (*domain.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Company != company {
		return nil, apperrors.NewForbidden(MsgNotAllowed)
	}
	return job, nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func validateJob(title *string, salary *int, equity *float64) error {
	details := map[string]any{}
	if title != nil && *title == "" {
		details["title"] = "must not be empty"
	}
	if salary != nil && *salary < 0 {
		details["salary"] = "must not be negative"
	}
	if equity != nil && (*equity < 0 || *equity > 1) {
		details["equity"] = "must be between 0 and 1"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Invalid job.", details)
	}
	return nil
}
