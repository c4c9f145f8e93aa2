package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// ListClients returns the clients of the active company.
func (c *Client) ListClients(ctx context.Context) ([]erp.Client, error) {
	var resp envelope[[]erp.Client]
	if err := c.get(ctx, "/clients", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetClient returns one client by ID.
func (c *Client) GetClient(ctx context.Context, id string) (*erp.Client, error) {
	var resp envelope[erp.Client]
	if err := c.get(ctx, "/clients/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateClient creates a client and returns the new ID.
func (c *Client) CreateClient(ctx context.Context, input erp.ClientInput) (string, error) {
	var resp envelope[struct {
		ID string `json:"id"`
	}]
	if err := c.post(ctx, "/clients", input, &resp); err != nil {
		return "", err
	}
	return resp.Data.ID, nil
}

// UpdateClient replaces a client's editable fields.
func (c *Client) UpdateClient(ctx context.Context, id string, input erp.ClientInput) error {
	var resp okResponse
	return c.put(ctx, "/clients/"+id, input, &resp)
}

// ChangeClientStatus activates or deactivates a client.
func (c *Client) ChangeClientStatus(ctx context.Context, id string, status erp.Status) error {
	var resp okResponse
	return c.patch(ctx, "/clients/"+id+"/status", map[string]erp.Status{"status": status}, &resp)
}
