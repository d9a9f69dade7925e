package backend

import (
	"context"
	"net/http"
	"net/url"
)

// SaleListParams filters the sales list.
type SaleListParams struct {
	CustomerID string
	StoreID    string
	Status     string
	DateFrom   string
	DateTo     string
	Page       int
	Limit      int
}

func (p SaleListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "customerId", p.CustomerID)
	setIfStr(q, "storeId", p.StoreID)
	setIfStr(q, "status", p.Status)
	setIfStr(q, "dateFrom", p.DateFrom)
	setIfStr(q, "dateTo", p.DateTo)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListSales(ctx context.Context, token string, p SaleListParams) Result[[]Sale] {
	return do[[]Sale](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/sales",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) GetSale(ctx context.Context, token, id string) Result[Sale] {
	return do[Sale](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/sales/" + url.PathEscape(id),
		token:  token,
	})
}

func (c *Client) CreateSale(ctx context.Context, token string, in SaleInput) Result[Sale] {
	return do[Sale](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/sales",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}
