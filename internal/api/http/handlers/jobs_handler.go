package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobboard-api/internal/api/dto"
	"github.com/jobboard/jobboard-api/internal/auth"
	"github.com/jobboard/jobboard-api/internal/domain"
	"github.com/jobboard/jobboard-api/internal/service"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// JobsHandler exposes job postings and applications to them.
type JobsHandler struct {
	jobs *service.JobService
	apps *service.ApplicationService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobs *service.JobService, apps *service.ApplicationService) *JobsHandler {
	return &JobsHandler{jobs: jobs, apps: apps}
}

// Create handles POST /jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	company, ok := auth.CompanyFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgCompaniesOnly)
	}
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.jobs.Create(c.UserContext(), company, service.JobCreateInput{
		Title:  strings.TrimSpace(req.Title),
		Salary: req.Salary,
		Equity: req.Equity,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewJobResponse(job))
}

// List handles GET /jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	minSalary, err := optionalInt(c, "min_salary")
	if err != nil {
		return err
	}
	minEquity, err := optionalFloat(c, "min_equity")
	if err != nil {
		return err
	}
	limit, offset, err := page(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobs.List(c.UserContext(), domain.JobFilter{
		Search:    c.Query("search"),
		MinSalary: minSalary,
		MinEquity: minEquity,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobList(jobs))
}

// Get handles GET /jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}
	job, err := h.jobs.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Update handles PATCH /jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	company, ok := auth.CompanyFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgCompaniesOnly)
	}
	id, err := jobID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	patch := domain.JobPatch{Title: req.Title, Salary: req.Salary, Equity: req.Equity}
	if patch.Empty() {
		return apperrors.NewValidationError("no fields to update", nil)
	}

	job, err := h.jobs.Update(c.UserContext(), company, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Delete handles DELETE /jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	company, ok := auth.CompanyFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgCompaniesOnly)
	}
	id, err := jobID(c)
	if err != nil {
		return err
	}
	job, err := h.jobs.Delete(c.UserContext(), company, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Apply handles POST /jobs/:id/applications.
func (h *JobsHandler) Apply(c *fiber.Ctx) error {
	username, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgUsersOnly)
	}
	id, err := jobID(c)
	if err != nil {
		return err
	}
	app, err := h.apps.Apply(c.UserContext(), username, id)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewApplicationResponse(app))
}

// Withdraw handles DELETE /jobs/:id/applications.
func (h *JobsHandler) Withdraw(c *fiber.Ctx) error {
	username, ok := auth.UsernameFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgUsersOnly)
	}
	id, err := jobID(c)
	if err != nil {
		return err
	}
	app, err := h.apps.Withdraw(c.UserContext(), username, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationResponse(app))
}

// Applications handles GET /jobs/:id/applications.
func (h *JobsHandler) Applications(c *fiber.Ctx) error {
	company, ok := auth.CompanyFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgCompaniesOnly)
	}
	id, err := jobID(c)
	if err != nil {
		return err
	}
	apps, err := h.apps.ListForJob(c.UserContext(), company, id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicationList(apps))
}
