package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// StoreHandler proxies store (branch) management.
type StoreHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewStoreHandler(client *backend.Client, sink ports.AuditSink) *StoreHandler {
	return &StoreHandler{client: client, sink: sink}
}

func (h *StoreHandler) List(c echo.Context) error {
	return respond(c, h.client.ListStores(c.Request().Context(), token(c)))
}

func (h *StoreHandler) Get(c echo.Context) error {
	return respond(c, h.client.GetStore(c.Request().Context(), token(c), c.Param("id")))
}

func (h *StoreHandler) Create(c echo.Context) error {
	var in backend.StoreInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateStore(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "store", "", res.Success)
	return respond(c, res)
}

func (h *StoreHandler) Update(c echo.Context) error {
	var in backend.StoreInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	res := h.client.UpdateStore(c.Request().Context(), token(c), id, in)
	audit(c, h.sink, domain.AuditUpdate, "store", id, res.Success)
	return respond(c, res)
}

func (h *StoreHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.DeleteStore(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "store", id, res.Success)
	return respond(c, res)
}
