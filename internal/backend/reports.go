package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Report kinds the backend exposes under /api/reports.
const (
	ReportSales     = "sales"
	ReportInventory = "inventory"
	ReportCustomers = "customers"
	ReportFinancial = "financial"
)

// ReportParams bound every report query. Dates are passed through as
// the backend's expected YYYY-MM-DD strings.
type ReportParams struct {
	DateFrom string
	DateTo   string
	StoreID  string
}

func (p ReportParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "dateFrom", p.DateFrom)
	setIfStr(q, "dateTo", p.DateTo)
	setIfStr(q, "storeId", p.StoreID)
	return q
}

// Report fetches one report by kind. Report payloads differ per kind
// and are rendered client-side, so they stay untyped here.
func (c *Client) Report(ctx context.Context, token, kind string, p ReportParams) Result[json.RawMessage] {
	return do[json.RawMessage](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/reports/" + url.PathEscape(kind),
		query:  p.values(),
		token:  token,
	})
}
