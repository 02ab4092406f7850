package service

import (
	"context"
	"errors"

	"github.com/jobboard/jobboard-api/internal/auth"
	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/repository"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// CompanyCreateInput describes company registration payload.
type CompanyCreateInput struct {
	Handle   string
	Password string
	Name     string
	Logo     *string
	Email    string
}

// CompanyUpdateInput describes a partial company update.
type CompanyUpdateInput struct {
	Password *string
	Name     *string
	Logo     *string
	Email    *string
}

// CompanyDetail is a company with its postings.
type CompanyDetail struct {
	Company *domain.Company
	Jobs    []domain.Job
}

// CompanyService manages company accounts.
type CompanyService struct {
	companies  repository.CompanyRepository
	jobs       repository.JobRepository
	bcryptCost int
}

// NewCompanyService builds the service.
func NewCompanyService(companies repository.CompanyRepository, jobs repository.JobRepository, bcryptCost int) *CompanyService {
	return &CompanyService{companies: companies, jobs: jobs, bcryptCost: bcryptCost}
}

// Create registers a company.
func (s *CompanyService) Create(ctx context.Context, in CompanyCreateInput) (*domain.Company, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	company := &domain.Company{
		Handle:       in.Handle,
		PasswordHash: hash,
		Name:         in.Name,
		Logo:         in.Logo,
		Email:        in.Email,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict(MsgHandleExists, nil)
		}
		return nil, err
	}
	return company, nil
}

// List returns companies, optionally filtered by name.
func (s *CompanyService) List(ctx context.Context, filter repository.CompanyFilter) ([]domain.Company, error) {
	return s.companies.List(ctx, filter)
}

// Get returns a company together with its jobs.
func (s *CompanyService) Get(ctx context.Context, handle string) (*CompanyDetail, error) {
	company, err := s.companies.GetByHandle(ctx, handle)
	if err != nil {
		return nil, notFound(err, "Company")
	}
	jobs, err := s.jobs.List(ctx, domain.JobFilter{Company: &handle})
	if err != nil {
		return nil, err
	}
	return &CompanyDetail{Company: company, Jobs: jobs}, nil
}

// Update applies a partial update.
func (s *CompanyService) Update(ctx context.Context, handle string, in CompanyUpdateInput) (*domain.Company, error) {
	patch := domain.CompanyPatch{Name: in.Name, Logo: in.Logo, Email: in.Email}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}
	company, err := s.companies.Update(ctx, handle, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict(MsgEmailExists, nil)
		}
		return nil, notFound(err, "Company")
	}
	return company, nil
}

// Delete removes a company; its jobs and applications cascade.
func (s *CompanyService) Delete(ctx context.Context, handle string) (*domain.Company, error) {
	company, err := s.companies.Delete(ctx, handle)
	if err != nil {
		return nil, notFound(err, "Company")
	}
	return company, nil
}
