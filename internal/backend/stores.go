package backend

import (
	"context"
	"net/http"
	"net/url"
)

// ListStores returns every store. The stores endpoint is the one list
// that answers with a bare JSON array instead of the {data, pagination}
// wrapper; the shared decoder handles both.
func (c *Client) ListStores(ctx context.Context, token string) Result[[]Store] {
	return do[[]Store](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/stores",
		token:  token,
	})
}

func (c *Client) GetStore(ctx context.Context, token, id string) Result[Store] {
	return do[Store](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/stores/" + url.PathEscape(id),
		token:  token,
	})
}

func (c *Client) CreateStore(ctx context.Context, token string, in StoreInput) Result[Store] {
	return do[Store](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/stores",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) UpdateStore(ctx context.Context, token, id string, in StoreInput) Result[Store] {
	return do[Store](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/stores/" + url.PathEscape(id),
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) DeleteStore(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/stores/" + url.PathEscape(id),
		token:       token,
		requireAuth: true,
	})
}
