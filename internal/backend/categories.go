package backend

import (
	"context"
	"net/http"
	"net/url"
)

// CategoryListParams filters the category list.
type CategoryListParams struct {
	Search string
	Page   int
	Limit  int
}

func (p CategoryListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "search", p.Search)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

// ListCategories tolerates anonymous access: the category tree backs
// public-facing filters, so the header is simply omitted without a
// token.
func (c *Client) ListCategories(ctx context.Context, token string, p CategoryListParams) Result[[]Category] {
	return do[[]Category](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/categories",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) GetCategory(ctx context.Context, token, id string) Result[Category] {
	return do[Category](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/categories/" + url.PathEscape(id),
		token:  token,
	})
}

// CategoryProducts lists the products filed under one category.
func (c *Client) CategoryProducts(ctx context.Context, token, id string, p ProductListParams) Result[[]Product] {
	return do[[]Product](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/categories/" + url.PathEscape(id) + "/products",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) CreateCategory(ctx context.Context, token string, in CategoryInput) Result[Category] {
	return do[Category](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/categories",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) UpdateCategory(ctx context.Context, token, id string, in CategoryInput) Result[Category] {
	return do[Category](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/categories/" + url.PathEscape(id),
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/categories/" + url.PathEscape(id),
		token:       token,
		requireAuth: true,
	})
}
