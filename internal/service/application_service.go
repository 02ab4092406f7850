package service

import (
	"context"
	"errors"

	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/events"
	"github.com/jobboard/jobboard-api/internal/repository"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// ApplicationService handles users applying to jobs.
type ApplicationService struct {
	apps       repository.ApplicationRepository
	jobs       *JobService
	dispatcher events.Dispatcher
}

// NewApplicationService builds the service. dispatcher may be nil.
func NewApplicationService(apps repository.ApplicationRepository, jobs *JobService, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, dispatcher: dispatcher}
}

// Apply records that username applied for the job.
func (s *ApplicationService) Apply(ctx context.Context, username string, jobID int64) (*domain.Application, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	app := &domain.Application{JobID: jobID, Username: username}
	if err := s.apps.Create(ctx, app); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.NewConflict(MsgAlreadyApplied, nil)
		case errors.Is(err, repository.ErrReferenceMissing):
			return nil, apperrors.NewNotFound("Job", nil)
		default:
			return nil, err
		}
	}

	s.publish(ctx, events.EventApplicationSubmitted, app, job.Company)
	return app, nil
}

// Withdraw removes the user's application for the job.
func (s *ApplicationService) Withdraw(ctx context.Context, username string, jobID int64) (*domain.Application, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	app, err := s.apps.Delete(ctx, jobID, username)
	if err != nil {
		return nil, notFound(err, "Application")
	}
	s.publish(ctx, events.EventApplicationWithdrawn, app, job.Company)
	return app, nil
}

// ListForJob returns applications to a job owned by company.
func (s *ApplicationService) ListForJob(ctx context.Context, company string, jobID int64) ([]domain.Application, error) {
	if _, err := s.jobs.owned(ctx, company, jobID); err != nil {
		return nil, err
	}
	return s.apps.ListByJob(ctx, jobID)
}

func (s *ApplicationService) publish(ctx context.Context, eventType events.EventType, app *domain.Application, company string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType,
		events.Actor{Type: domain.SubjectTypeUser, ID: app.Username},
		events.ApplicationPayload{
			ApplicationID: app.ID,
			JobID:         app.JobID,
			Company:       company,
			Username:      app.Username,
		},
	))
}
