package backend

import (
	"context"
	"net/http"
	"net/url"
)

// BrandListParams filters the brand list.
type BrandListParams struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

func (p BrandListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "search", p.Search)
	setIf(q, "isActive", p.IsActive)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListBrands(ctx context.Context, token string, p BrandListParams) Result[[]Brand] {
	return do[[]Brand](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/brands",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) BrandStats(ctx context.Context, token string) Result[BrandStats] {
	return do[BrandStats](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/brands/stats",
		token:  token,
	})
}

func (c *Client) CreateBrand(ctx context.Context, token string, in BrandInput) Result[Brand] {
	return do[Brand](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/brands",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) UpdateBrand(ctx context.Context, token, id string, in BrandInput) Result[Brand] {
	return do[Brand](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/brands/" + url.PathEscape(id),
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) DeleteBrand(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/brands/" + url.PathEscape(id),
		token:       token,
		requireAuth: true,
	})
}
