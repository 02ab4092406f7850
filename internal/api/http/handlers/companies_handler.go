package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jobboard/jobboard-api/internal/api/dto"
	"github.com/jobboard/jobboard-api/internal/repository"
	"github.com/jobboard/jobboard-api/internal/service"
	apperrors "github.com/jobboard/jobboard-api/pkg/errorutil"
)

// CompaniesHandler exposes company account endpoints.
type CompaniesHandler struct {
	companies *service.CompanyService
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(companies *service.CompanyService) *CompaniesHandler {
	return &CompaniesHandler{companies: companies}
}

// Create handles POST /companies.
func (h *CompaniesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if blank(req.Handle, req.Password, req.Name, req.Email) {
		return apperrors.NewValidationError("handle, password, name, email required", nil)
	}

	company, err := h.companies.Create(c.UserContext(), service.CompanyCreateInput{
		Handle:   req.Handle,
		Password: req.Password,
		Name:     req.Name,
		Logo:     req.Logo,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCompanyResponse(company))
}

// List handles GET /companies.
func (h *CompaniesHandler) List(c *fiber.Ctx) error {
	limit, offset, err := page(c)
	if err != nil {
		return err
	}
	companies, err := h.companies.List(c.UserContext(), repository.CompanyFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyList(companies))
}

// Get handles GET /companies/:handle.
func (h *CompaniesHandler) Get(c *fiber.Ctx) error {
	detail, err := h.companies.Get(c.UserContext(), c.Params("handle"))
	if err != nil {
		return err
	}
	resp := dto.NewCompanyResponse(detail.Company)
	resp.Jobs = dto.NewJobList(detail.Jobs)
	return c.JSON(resp)
}

// Update handles PATCH /companies/:handle.
func (h *CompaniesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	input := service.CompanyUpdateInput{
		Password: req.Password,
		Name:     req.Name,
		Logo:     req.Logo,
		Email:    req.Email,
	}
	if input == (service.CompanyUpdateInput{}) {
		return apperrors.NewValidationError("no fields to update", nil)
	}

	company, err := h.companies.Update(c.UserContext(), c.Params("handle"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyResponse(company))
}

// Delete handles DELETE /companies/:handle.
func (h *CompaniesHandler) Delete(c *fiber.Ctx) error {
	company, err := h.companies.Delete(c.UserContext(), c.Params("handle"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCompanyResponse(company))
}
