package dto

import "github.com/jobboard/jobboard-api/internal/domain"

// CreateCompanyRequest payload for POST /companies.
type CreateCompanyRequest struct {
	Handle   string  `json:"handle"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Logo     *string `json:"logo_url"`
	Email    string  `json:"email"`
}

// UpdateCompanyRequest payload for PATCH /companies/:handle.
type UpdateCompanyRequest struct {
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Logo     *string `json:"logo_url"`
	Email    *string `json:"email"`
}

// CompanyResponse is the public view of a company.
type CompanyResponse struct {
	Handle string        `json:"handle"`
	Name   string        `json:"name"`
	Logo   *string       `json:"logo_url"`
	Email  string        `json:"email"`
	Jobs   []JobResponse `json:"jobs,omitempty"`
}

// NewCompanyResponse maps a domain company.
func NewCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{Handle: c.Handle, Name: c.Name, Logo: c.Logo, Email: c.Email}
}

// NewCompanyList maps a slice of companies.
func NewCompanyList(companies []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, NewCompanyResponse(&companies[i]))
	}
	return out
}
