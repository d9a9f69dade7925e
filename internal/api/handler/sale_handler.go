package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// SaleHandler proxies the sales ledger. Sales are append-only: there
// is no update or delete route.
type SaleHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewSaleHandler(client *backend.Client, sink ports.AuditSink) *SaleHandler {
	return &SaleHandler{client: client, sink: sink}
}

func (h *SaleHandler) List(c echo.Context) error {
	p := backend.SaleListParams{
		CustomerID: c.QueryParam("customerId"),
		StoreID:    c.QueryParam("storeId"),
		Status:     c.QueryParam("status"),
		DateFrom:   c.QueryParam("dateFrom"),
		DateTo:     c.QueryParam("dateTo"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}
	return respond(c, h.client.ListSales(c.Request().Context(), token(c), p))
}

func (h *SaleHandler) Get(c echo.Context) error {
	return respond(c, h.client.GetSale(c.Request().Context(), token(c), c.Param("id")))
}

func (h *SaleHandler) Create(c echo.Context) error {
	var in backend.SaleInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateSale(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "sale", "", res.Success)
	return respond(c, res)
}
