package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// ListRoles returns the roles of the active company.
func (c *Client) ListRoles(ctx context.Context) ([]erp.Role, error) {
	var resp envelope[[]erp.Role]
	if err := c.get(ctx, "/roles", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, input erp.RoleInput) error {
	var resp okResponse
	return c.post(ctx, "/roles", input, &resp)
}

// AssignRole assigns a role to a company membership.
func (c *Client) AssignRole(ctx context.Context, companyUserID, roleID string) error {
	body := map[string]string{
		"companyUserId": companyUserID,
		"roleId":        roleID,
	}
	var resp okResponse
	return c.patch(ctx, "/roles/assign", body, &resp)
}

// RolePermissions returns the permissions granted to a role.
func (c *Client) RolePermissions(ctx context.Context, roleID string) ([]erp.Permission, error) {
	var resp envelope[[]erp.Permission]
	if err := c.get(ctx, "/roles/"+roleID+"/permissions", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
