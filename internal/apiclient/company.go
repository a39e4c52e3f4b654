package apiclient

import (
	"context"
	"net/http"

	"jobportal_front/internal/models"
	"jobportal_front/internal/session"
)

type rolesEnvelope struct {
	Roles []models.CompanyRole `json:"roles"`
}

type imageBody struct {
	URL string `json:"url"`
}

// ListCompanies - GET /companies?page=
func (c *Client) ListCompanies(ctx context.Context, creds session.Credentials, page int) (models.CompanyPage, error) {
	var out models.CompanyPage
	err := c.get(ctx, creds, "company", "/companies", pageQuery(page), &out)
	return out, err
}

// GetCompany - GET /company/:id
func (c *Client) GetCompany(ctx context.Context, creds session.Credentials, id string) (models.Company, error) {
	out := envelope[models.Company]("company")
	if err := c.get(ctx, creds, "company", "/company/"+escape(id), nil, &out); err != nil {
		return models.Company{}, err
	}
	if out.Value.ID == "" {
		return models.Company{}, missingEntity("company", "company")
	}
	return out.Value, nil
}

// UpdateCompany - PUT /company/:id. Последняя запись побеждает, версий нет.
func (c *Client) UpdateCompany(ctx context.Context, creds session.Credentials, id string, upd models.CompanyProfileUpdate) (models.Company, error) {
	out := envelope[models.Company]("company")
	err := c.send(ctx, creds, "company", http.MethodPut, "/company/"+escape(id), upd, &out)
	return out.Value, err
}

// AddCompanyImage - POST /company/:id/images
func (c *Client) AddCompanyImage(ctx context.Context, creds session.Credentials, id, imageURL string) (models.Company, error) {
	out := envelope[models.Company]("company")
	err := c.send(ctx, creds, "company", http.MethodPost, "/company/"+escape(id)+"/images", imageBody{URL: imageURL}, &out)
	return out.Value, err
}

// RemoveCompanyImage - DELETE /company/:id/images
func (c *Client) RemoveCompanyImage(ctx context.Context, creds session.Credentials, id, imageURL string) (models.Company, error) {
	out := envelope[models.Company]("company")
	err := c.send(ctx, creds, "company", http.MethodDelete, "/company/"+escape(id)+"/images", imageBody{URL: imageURL}, &out)
	return out.Value, err
}

// CompanyRoles - GET /company-roles/:companyId
func (c *Client) CompanyRoles(ctx context.Context, creds session.Credentials, companyID string) ([]models.CompanyRole, error) {
	var out rolesEnvelope
	err := c.get(ctx, creds, "company_role", "/company-roles/"+escape(companyID), nil, &out)
	return out.Roles, err
}

// CreateCompanyRole - POST /company-roles
func (c *Client) CreateCompanyRole(ctx context.Context, creds session.Credentials, in models.CompanyRoleInput) (models.CompanyRole, error) {
	out := envelope[models.CompanyRole]("role")
	err := c.send(ctx, creds, "company_role", http.MethodPost, "/company-roles", in, &out)
	return out.Value, err
}

// UpdateCompanyRole - PUT /company-roles/:id
func (c *Client) UpdateCompanyRole(ctx context.Context, creds session.Credentials, id string, in models.CompanyRoleInput) (models.CompanyRole, error) {
	out := envelope[models.CompanyRole]("role")
	err := c.send(ctx, creds, "company_role", http.MethodPut, "/company-roles/"+escape(id), in, &out)
	return out.Value, err
}

// DeleteCompanyRole - DELETE /company-roles/:id
func (c *Client) DeleteCompanyRole(ctx context.Context, creds session.Credentials, id string) error {
	return c.send(ctx, creds, "company_role", http.MethodDelete, "/company-roles/"+escape(id), nil, nil)
}
