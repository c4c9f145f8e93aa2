package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// AuthResponse is the payload returned by login and registration.
type AuthResponse struct {
	OK    bool     `json:"ok"`
	Token string   `json:"token"`
	User  erp.User `json:"user"`
}

// AuthContextResponse carries the company memberships resolved for the
// current token. It is fetched once per session establishment and never
// persisted as a whole; its fields feed the session store.
type AuthContextResponse struct {
	OK            bool                 `json:"ok"`
	HasCompany    bool                 `json:"hasCompany"`
	Companies     []erp.CompanyContext `json:"companies"`
	ActiveCompany *erp.CompanyContext  `json:"activeCompany"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. The response carries a token, so the
// caller can continue straight into session establishment.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}

	var resp AuthResponse
	if err := c.post(ctx, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AuthContext fetches the company memberships for the current token.
func (c *Client) AuthContext(ctx context.Context) (*AuthContextResponse, error) {
	var resp AuthContextResponse
	if err := c.get(ctx, "/auth/context", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateCompanyResponse is the payload returned by company creation.
type CreateCompanyResponse struct {
	OK      bool        `json:"ok"`
	Company erp.Company `json:"company"`
}

// CreateCompany creates a tenant; the backend makes it the active company
// for the current user. Callers refresh the auth context afterwards.
func (c *Client) CreateCompany(ctx context.Context, name string) (*erp.Company, error) {
	var resp CreateCompanyResponse
	if err := c.post(ctx, "/companies", map[string]string{"name": name}, &resp); err != nil {
		return nil, err
	}
	return &resp.Company, nil
}
