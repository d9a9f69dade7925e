package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// InventoryHandler proxies stock levels, adjustments and transfers.
type InventoryHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewInventoryHandler(client *backend.Client, sink ports.AuditSink) *InventoryHandler {
	return &InventoryHandler{client: client, sink: sink}
}

func (h *InventoryHandler) List(c echo.Context) error {
	p := backend.InventoryListParams{
		Search:   c.QueryParam("search"),
		StoreID:  c.QueryParam("storeId"),
		LowStock: queryBool(c, "lowStock"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	return respond(c, h.client.ListInventory(c.Request().Context(), token(c), p))
}

// Adjust applies one manual stock correction.
func (h *InventoryHandler) Adjust(c echo.Context) error {
	var in backend.InventoryAdjustment
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.AdjustInventory(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditUpdate, "inventory", in.ProductID, res.Success)
	return respond(c, res)
}

// AdjustBatch applies a set of corrections in one backend call, used
// after a stock count.
func (h *InventoryHandler) AdjustBatch(c echo.Context) error {
	var req struct {
		Adjustments []backend.InventoryAdjustment `json:"adjustments" validate:"required,min=1,dive"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.AdjustInventoryBatch(c.Request().Context(), token(c), req.Adjustments)
	audit(c, h.sink, domain.AuditUpdate, "inventory", "", res.Success)
	return respond(c, res)
}

// Transfer moves stock between stores.
func (h *InventoryHandler) Transfer(c echo.Context) error {
	var in backend.InventoryTransfer
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.TransferInventory(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditUpdate, "inventory", in.ProductID, res.Success)
	return respond(c, res)
}

// LowStock lists items at or under their reorder threshold.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	return respond(c, h.client.LowStockAlerts(c.Request().Context(), token(c), c.QueryParam("storeId")))
}
