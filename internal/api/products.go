package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// ListProducts returns the products of the active company.
func (c *Client) ListProducts(ctx context.Context) ([]erp.Product, error) {
	var resp envelope[[]erp.Product]
	if err := c.get(ctx, "/products", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetProduct returns one product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*erp.Product, error) {
	var resp envelope[erp.Product]
	if err := c.get(ctx, "/products/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateProduct creates a product and returns the new ID.
func (c *Client) CreateProduct(ctx context.Context, input erp.ProductInput) (string, error) {
	var resp envelope[struct {
		ID string `json:"id"`
	}]
	if err := c.post(ctx, "/products", input, &resp); err != nil {
		return "", err
	}
	return resp.Data.ID, nil
}

// UpdateProduct replaces a product's editable fields.
func (c *Client) UpdateProduct(ctx context.Context, id string, input erp.ProductInput) error {
	var resp okResponse
	return c.put(ctx, "/products/"+id, input, &resp)
}

// ChangeProductStatus activates or deactivates a product.
func (c *Client) ChangeProductStatus(ctx context.Context, id string, status erp.Status) error {
	var resp okResponse
	return c.patch(ctx, "/products/"+id+"/status", map[string]erp.Status{"status": status}, &resp)
}
