package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// BrandHandler proxies brand management.
type BrandHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewBrandHandler(client *backend.Client, sink ports.AuditSink) *BrandHandler {
	return &BrandHandler{client: client, sink: sink}
}

func (h *BrandHandler) List(c echo.Context) error {
	p := backend.BrandListParams{
		Search:   c.QueryParam("search"),
		IsActive: queryBool(c, "isActive"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	return respond(c, h.client.ListBrands(c.Request().Context(), token(c), p))
}

// Stats returns aggregate counts per brand.
func (h *BrandHandler) Stats(c echo.Context) error {
	return respond(c, h.client.BrandStats(c.Request().Context(), token(c)))
}

func (h *BrandHandler) Create(c echo.Context) error {
	var in backend.BrandInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateBrand(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "brand", "", res.Success)
	return respond(c, res)
}

func (h *BrandHandler) Update(c echo.Context) error {
	var in backend.BrandInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	res := h.client.UpdateBrand(c.Request().Context(), token(c), id, in)
	audit(c, h.sink, domain.AuditUpdate, "brand", id, res.Success)
	return respond(c, res)
}

func (h *BrandHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.DeleteBrand(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "brand", id, res.Success)
	return respond(c, res)
}
