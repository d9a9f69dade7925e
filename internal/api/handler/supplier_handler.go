package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// SupplierHandler proxies supplier management. Deletes are soft on the
// backend; the permanent variant and restore are separate endpoints.
type SupplierHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewSupplierHandler(client *backend.Client, sink ports.AuditSink) *SupplierHandler {
	return &SupplierHandler{client: client, sink: sink}
}

func (h *SupplierHandler) List(c echo.Context) error {
	p := backend.SupplierListParams{
		Search:         c.QueryParam("search"),
		IsActive:       queryBool(c, "isActive"),
		IncludeDeleted: queryBool(c, "includeDeleted"),
		Page:           queryInt(c, "page"),
		Limit:          queryInt(c, "limit"),
	}
	return respond(c, h.client.ListSuppliers(c.Request().Context(), token(c), p))
}

func (h *SupplierHandler) Get(c echo.Context) error {
	return respond(c, h.client.GetSupplier(c.Request().Context(), token(c), c.Param("id")))
}

func (h *SupplierHandler) Create(c echo.Context) error {
	var in backend.SupplierInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateSupplier(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "supplier", "", res.Success)
	return respond(c, res)
}

func (h *SupplierHandler) Update(c echo.Context) error {
	var in backend.SupplierInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	res := h.client.UpdateSupplier(c.Request().Context(), token(c), id, in)
	audit(c, h.sink, domain.AuditUpdate, "supplier", id, res.Success)
	return respond(c, res)
}

func (h *SupplierHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.DeleteSupplier(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "supplier", id, res.Success)
	return respond(c, res)
}

// PermanentDelete removes a soft-deleted supplier for good.
func (h *SupplierHandler) PermanentDelete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.PermanentlyDeleteSupplier(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "supplier", id, res.Success)
	return respond(c, res)
}

// Restore brings a soft-deleted supplier back.
func (h *SupplierHandler) Restore(c echo.Context) error {
	id := c.Param("id")
	res := h.client.RestoreSupplier(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditUpdate, "supplier", id, res.Success)
	return respond(c, res)
}
