package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// ListEmployees returns the employees of the active company.
func (c *Client) ListEmployees(ctx context.Context) ([]erp.Employee, error) {
	var resp envelope[[]erp.Employee]
	if err := c.get(ctx, "/employees", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetEmployee returns one employee by ID.
func (c *Client) GetEmployee(ctx context.Context, id string) (*erp.Employee, error) {
	var resp envelope[erp.Employee]
	if err := c.get(ctx, "/employees/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateEmployee creates an employee and returns the new ID.
func (c *Client) CreateEmployee(ctx context.Context, input erp.EmployeeInput) (string, error) {
	var resp envelope[struct {
		ID string `json:"id"`
	}]
	if err := c.post(ctx, "/employees", input, &resp); err != nil {
		return "", err
	}
	return resp.Data.ID, nil
}

// UpdateEmployee replaces an employee's editable fields.
func (c *Client) UpdateEmployee(ctx context.Context, id string, input erp.EmployeeInput) error {
	var resp okResponse
	return c.put(ctx, "/employees/"+id, input, &resp)
}

// ChangeEmployeeStatus activates or deactivates an employee.
func (c *Client) ChangeEmployeeStatus(ctx context.Context, id string, status erp.Status) error {
	var resp okResponse
	return c.patch(ctx, "/employees/"+id+"/status", map[string]erp.Status{"status": status}, &resp)
}
