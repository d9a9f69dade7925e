package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ProductListParams filters the product list. Pointer fields are
// omitted from the query string when nil.
type ProductListParams struct {
	Search     string
	CategoryID string
	BrandID    string
	StoreID    string
	IsActive   *bool
	LowStock   *bool
	Page       int
	Limit      int
}

func (p ProductListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "search", p.Search)
	setIfStr(q, "categoryId", p.CategoryID)
	setIfStr(q, "brandId", p.BrandID)
	setIfStr(q, "storeId", p.StoreID)
	setIf(q, "isActive", p.IsActive)
	setIf(q, "lowStock", p.LowStock)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListProducts(ctx context.Context, token string, p ProductListParams) Result[[]Product] {
	return do[[]Product](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/products",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) GetProduct(ctx context.Context, token, id string) Result[Product] {
	return do[Product](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/products/" + url.PathEscape(id),
		token:  token,
	})
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ProductInput) Result[Product] {
	return do[Product](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/products",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

// CreateProductWithImage sends a multipart form so the backend receives
// the image bytes alongside the product fields.
func (c *Client) CreateProductWithImage(ctx context.Context, token string, form *Form) Result[Product] {
	return do[Product](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/products",
		token:       token,
		form:        form,
		requireAuth: true,
	})
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in ProductInput) Result[Product] {
	return do[Product](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/products/" + url.PathEscape(id),
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/products/" + url.PathEscape(id),
		token:       token,
		requireAuth: true,
	})
}
