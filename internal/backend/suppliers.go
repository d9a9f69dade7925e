package backend

import (
	"context"
	"net/http"
	"net/url"
)

// SupplierListParams filters the supplier list. IsActive distinguishes
// "only inactive" (false) from "no filter" (nil).
type SupplierListParams struct {
	Search         string
	IsActive       *bool
	IncludeDeleted *bool
	Page           int
	Limit          int
}

func (p SupplierListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "search", p.Search)
	setIf(q, "isActive", p.IsActive)
	setIf(q, "includeDeleted", p.IncludeDeleted)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListSuppliers(ctx context.Context, token string, p SupplierListParams) Result[[]Supplier] {
	return do[[]Supplier](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/suppliers",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) GetSupplier(ctx context.Context, token, id string) Result[Supplier] {
	return do[Supplier](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/suppliers/" + url.PathEscape(id),
		token:  token,
	})
}

func (c *Client) CreateSupplier(ctx context.Context, token string, in SupplierInput) Result[Supplier] {
	return do[Supplier](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/suppliers",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) UpdateSupplier(ctx context.Context, token, id string, in SupplierInput) Result[Supplier] {
	return do[Supplier](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/suppliers/" + url.PathEscape(id),
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

// DeleteSupplier soft-deletes: the supplier stays recoverable via
// RestoreSupplier until a permanent delete.
func (c *Client) DeleteSupplier(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/suppliers/" + url.PathEscape(id),
		token:       token,
		requireAuth: true,
	})
}

func (c *Client) PermanentlyDeleteSupplier(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/suppliers/" + url.PathEscape(id) + "/permanent",
		token:       token,
		requireAuth: true,
	})
}

func (c *Client) RestoreSupplier(ctx context.Context, token, id string) Result[Supplier] {
	return do[Supplier](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/suppliers/" + url.PathEscape(id) + "/restore",
		token:       token,
		requireAuth: true,
	})
}
