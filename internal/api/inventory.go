package api

import (
	"context"

	"github.com/lumera-core/lumera-cli/internal/erp"
)

// Inventory endpoints use their own envelope field names rather than the
// standard `data` wrapper.

// ListInventory returns current stock levels for the active company.
func (c *Client) ListInventory(ctx context.Context) ([]erp.InventoryItem, error) {
	var resp struct {
		OK        bool                `json:"ok"`
		Inventory []erp.InventoryItem `json:"inventory"`
	}
	if err := c.get(ctx, "/inventory", &resp); err != nil {
		return nil, err
	}
	return resp.Inventory, nil
}

// GetInventory returns one stock record with its product embedded.
func (c *Client) GetInventory(ctx context.Context, id string) (*erp.InventoryDetail, error) {
	var resp struct {
		OK        bool                `json:"ok"`
		Inventory erp.InventoryDetail `json:"inventory"`
	}
	if err := c.get(ctx, "/inventory/"+id, &resp); err != nil {
		return nil, err
	}
	return &resp.Inventory, nil
}

// AdjustInventory records a manual stock movement.
func (c *Client) AdjustInventory(ctx context.Context, adjustment erp.InventoryAdjustment) error {
	var resp okResponse
	return c.post(ctx, "/inventory/adjust", adjustment, &resp)
}

// ListInventoryMovements returns all stock movements for the active company.
func (c *Client) ListInventoryMovements(ctx context.Context) ([]erp.InventoryMovement, error) {
	var resp struct {
		OK        bool                    `json:"ok"`
		Movements []erp.InventoryMovement `json:"movements"`
	}
	if err := c.get(ctx, "/inventory/movements", &resp); err != nil {
		return nil, err
	}
	return resp.Movements, nil
}

// ProductStock returns the current stock level of one product.
func (c *Client) ProductStock(ctx context.Context, productID string) (int, error) {
	var resp struct {
		OK    bool `json:"ok"`
		Stock int  `json:"stock"`
	}
	if err := c.get(ctx, "/inventory/stock/"+productID, &resp); err != nil {
		return 0, err
	}
	return resp.Stock, nil
}

// ProductHistory returns the movement history of one product.
func (c *Client) ProductHistory(ctx context.Context, productID string) ([]erp.InventoryMovement, error) {
	var resp struct {
		OK        bool                    `json:"ok"`
		Movements []erp.InventoryMovement `json:"movements"`
	}
	if err := c.get(ctx, "/inventory/history/"+productID, &resp); err != nil {
		return nil, err
	}
	return resp.Movements, nil
}
