package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// ListPermissions returns all permission keys of the active company.
func (c *Client) ListPermissions(ctx context.Context) ([]erp.Permission, error) {
	var resp envelope[[]erp.Permission]
	if err := c.get(ctx, "/permissions", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreatePermission registers a new permission key.
func (c *Client) CreatePermission(ctx context.Context, key string) (*erp.Permission, error) {
	var resp erp.Permission
	if err := c.post(ctx, "/permissions", map[string]string{"key": key}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AssignPermission grants a permission to a role.
func (c *Client) AssignPermission(ctx context.Context, roleID, permissionID string) error {
	body := map[string]string{
		"roleId":       roleID,
		"permissionId": permissionID,
	}
	var resp okResponse
	return c.post(ctx, "/permissions/assign", body, &resp)
}
