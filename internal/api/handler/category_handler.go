package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// CategoryHandler proxies the category tree.
type CategoryHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewCategoryHandler(client *backend.Client, sink ports.AuditSink) *CategoryHandler {
	return &CategoryHandler{client: client, sink: sink}
}

// List works for anonymous callers too: categories back public-facing
// filters.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  backend.Result[[]backend.Category]
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	p := backend.CategoryListParams{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	return respond(c, h.client.ListCategories(c.Request().Context(), token(c), p))
}

func (h *CategoryHandler) Get(c echo.Context) error {
	return respond(c, h.client.GetCategory(c.Request().Context(), token(c), c.Param("id")))
}

// Products lists the products filed under one category.
func (h *CategoryHandler) Products(c echo.Context) error {
	p := backend.ProductListParams{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	return respond(c, h.client.CategoryProducts(c.Request().Context(), token(c), c.Param("id"), p))
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var in backend.CategoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateCategory(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "category", "", res.Success)
	return respond(c, res)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var in backend.CategoryInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	res := h.client.UpdateCategory(c.Request().Context(), token(c), id, in)
	audit(c, h.sink, domain.AuditUpdate, "category", id, res.Success)
	return respond(c, res)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.DeleteCategory(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "category", id, res.Success)
	return respond(c, res)
}
