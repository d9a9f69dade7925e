package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
)

// Report kinds the console can request. Anything else is rejected here
// rather than bounced off the backend.
var reportKinds = map[string]bool{
	backend.ReportSales:     true,
	backend.ReportInventory: true,
	backend.ReportCustomers: true,
	backend.ReportFinancial: true,
}

// DashboardHandler proxies the console home metrics and the report
// endpoints. Report payloads differ per kind and are rendered by the
// UI, so they pass through untyped.
type DashboardHandler struct {
	client *backend.Client
}

func NewDashboardHandler(client *backend.Client) *DashboardHandler {
	return &DashboardHandler{client: client}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	return respond(c, h.client.DashboardOverview(c.Request().Context(), token(c)))
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	return respond(c, h.client.DashboardStats(c.Request().Context(), token(c), c.QueryParam("period")))
}

// Report serves /reports/:kind for the known report kinds.
func (h *DashboardHandler) Report(c echo.Context) error {
	kind := c.Param("kind")
	if !reportKinds[kind] {
		return echo.NewHTTPError(http.StatusNotFound, "unknown report")
	}
	p := backend.ReportParams{
		DateFrom: c.QueryParam("dateFrom"),
		DateTo:   c.QueryParam("dateTo"),
		StoreID:  c.QueryParam("storeId"),
	}
	return respond(c, h.client.Report(c.Request().Context(), token(c), kind, p))
}
