package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
	"github.com/lumera-core/lumera-cli/internal/errors"
)

// ListUsers returns the memberships of the active company. Listing users
// has a hard precondition on an active company: without one the call fails
// fast and no request is made.
func (c *Client) ListUsers(ctx context.Context) ([]erp.CompanyUser, error) {
	company := c.store.ActiveCompany()
	if company == nil || company.CompanyID == "" {
		return nil, errors.NewNoActiveCompanyError()
	}

	var resp struct {
		Users []erp.CompanyUser `json:"users"`
	}
	if err := c.get(ctx, "/company-users/"+company.CompanyID, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// ChangeUserStatus activates or deactivates a company membership.
func (c *Client) ChangeUserStatus(ctx context.Context, companyUserID string, status erp.Status) error {
	var resp okResponse
	return c.patch(ctx, "/company-users/"+companyUserID+"/status", map[string]erp.Status{"status": status}, &resp)
}

// CreateUser invites a user into the active company.
func (c *Client) CreateUser(ctx context.Context, input erp.UserInput) error {
	var resp okResponse
	return c.post(ctx, "/users", input, &resp)
}

// UpdateUser edits a user's name and email.
func (c *Client) UpdateUser(ctx context.Context, id, name, email string) error {
	body := map[string]string{
		"name":  name,
		"email": email,
	}
	var resp okResponse
	return c.patch(ctx, "/users/"+id, body, &resp)
}
