package api

import (
	"context"
	"net/url"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// ListCustomFields returns the field definitions for one entity
// ("employees", "clients", "products").
func (c *Client) ListCustomFields(ctx context.Context, entity string) ([]erp.CustomField, error) {
	var resp envelope[[]erp.CustomField]
	path := "/custom-fields?entity=" + url.QueryEscape(entity)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateCustomField creates a field definition.
func (c *Client) CreateCustomField(ctx context.Context, input erp.CustomFieldInput) error {
	var resp okResponse
	return c.post(ctx, "/custom-fields", input, &resp)
}
