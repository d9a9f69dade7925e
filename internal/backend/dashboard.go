package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) DashboardOverview(ctx context.Context, token string) Result[DashboardOverview] {
	return do[DashboardOverview](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/dashboard/overview",
		token:  token,
	})
}

// DashboardStats returns the chart series for the console home. The
// shape varies with the requested period, so the payload is passed
// through untyped.
func (c *Client) DashboardStats(ctx context.Context, token, period string) Result[json.RawMessage] {
	q := url.Values{}
	setIfStr(q, "period", period)
	return do[json.RawMessage](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/dashboard/stats",
		query:  q,
		token:  token,
	})
}
