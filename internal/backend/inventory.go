package backend

import (
	"context"
	"net/http"
	"net/url"
)

// InventoryListParams filters the stock-level list.
type InventoryListParams struct {
	Search   string
	StoreID  string
	LowStock *bool
	Page     int
	Limit    int
}

func (p InventoryListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "search", p.Search)
	setIfStr(q, "storeId", p.StoreID)
	setIf(q, "lowStock", p.LowStock)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListInventory(ctx context.Context, token string, p InventoryListParams) Result[[]InventoryItem] {
	return do[[]InventoryItem](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/inventory",
		query:  p.values(),
		token:  token,
	})
}

// AdjustInventory applies one signed stock delta.
func (c *Client) AdjustInventory(ctx context.Context, token string, in InventoryAdjustment) Result[InventoryItem] {
	return do[InventoryItem](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/inventory/adjust",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

// AdjustInventoryBatch applies several deltas in one backend
// transaction. The gateway adds no atomicity of its own.
func (c *Client) AdjustInventoryBatch(ctx context.Context, token string, in []InventoryAdjustment) Result[[]InventoryItem] {
	return do[[]InventoryItem](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/inventory/adjust/batch",
		token:       token,
		body:        map[string][]InventoryAdjustment{"adjustments": in},
		requireAuth: true,
	})
}

func (c *Client) TransferInventory(ctx context.Context, token string, in InventoryTransfer) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/inventory/transfer",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) LowStockAlerts(ctx context.Context, token string, storeID string) Result[[]LowStockAlert] {
	q := url.Values{}
	setIfStr(q, "storeId", storeID)
	return do[[]LowStockAlert](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/inventory/alerts/low-stock",
		query:  q,
		token:  token,
	})
}
