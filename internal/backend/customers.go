package backend

import (
	"context"
	"net/http"
	"net/url"
)

// CustomerListParams filters the customer list. Search is remapped to
// the backend's phone parameter: the console's customer lookup is a
// phone-number search.
type CustomerListParams struct {
	Search string
	Page   int
	Limit  int
}

func (p CustomerListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "phone", p.Search)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListCustomers(ctx context.Context, token string, p CustomerListParams) Result[[]Customer] {
	return do[[]Customer](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/customers",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) GetCustomer(ctx context.Context, token, id string) Result[Customer] {
	return do[Customer](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/customers/" + url.PathEscape(id),
		token:  token,
	})
}

// CustomerByPhone looks a customer up by exact phone number, the
// cashier's fast path at the register.
func (c *Client) CustomerByPhone(ctx context.Context, token, phone string) Result[Customer] {
	return do[Customer](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/customers/phone/" + url.PathEscape(phone),
		token:  token,
	})
}

func (c *Client) CreateCustomer(ctx context.Context, token string, in CustomerInput) Result[Customer] {
	return do[Customer](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/customers",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) UpdateCustomer(ctx context.Context, token, id string, in CustomerInput) Result[Customer] {
	return do[Customer](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/customers/" + url.PathEscape(id),
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) DeleteCustomer(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/customers/" + url.PathEscape(id),
		token:       token,
		requireAuth: true,
	})
}
