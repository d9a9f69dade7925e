package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// ProductHandler proxies the product catalog.
type ProductHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewProductHandler(client *backend.Client, sink ports.AuditSink) *ProductHandler {
	return &ProductHandler{client: client, sink: sink}
}

// List returns products matching the query filters.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        search      query  string  false  "Name or SKU search"
// @Param        categoryId  query  string  false  "Category filter"
// @Param        brandId     query  string  false  "Brand filter"
// @Param        storeId     query  string  false  "Store filter"
// @Param        isActive    query  bool    false  "Active filter"
// @Param        lowStock    query  bool    false  "Low stock filter"
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Page size"
// @Success      200  {object}  backend.Result[[]backend.Product]
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	p := backend.ProductListParams{
		Search:     c.QueryParam("search"),
		CategoryID: c.QueryParam("categoryId"),
		BrandID:    c.QueryParam("brandId"),
		StoreID:    c.QueryParam("storeId"),
		IsActive:   queryBool(c, "isActive"),
		LowStock:   queryBool(c, "lowStock"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}
	return respond(c, h.client.ListProducts(c.Request().Context(), token(c), p))
}

// Get returns one product by id.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  backend.Result[backend.Product]
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	return respond(c, h.client.GetProduct(c.Request().Context(), token(c), c.Param("id")))
}

// Create makes a new product. A multipart body carries an optional
// image alongside the fields; a JSON body is forwarded as-is.
//
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      backend.ProductInput  true  "Product fields"
// @Success      201   {object}  backend.Result[backend.Product]
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		form, err := multipartForm(c, "image")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
		}
		res := h.client.CreateProductWithImage(ctx, token(c), form)
		audit(c, h.sink, domain.AuditCreate, "product", "", res.Success)
		return respond(c, res)
	}

	var in backend.ProductInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateProduct(ctx, token(c), in)
	audit(c, h.sink, domain.AuditCreate, "product", "", res.Success)
	return respond(c, res)
}

// Update replaces a product's fields.
//
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Product id"
// @Param        body  body      backend.ProductInput  true  "Product fields"
// @Success      200   {object}  backend.Result[backend.Product]
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var in backend.ProductInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	res := h.client.UpdateProduct(c.Request().Context(), token(c), id, in)
	audit(c, h.sink, domain.AuditUpdate, "product", id, res.Success)
	return respond(c, res)
}

// Delete removes a product.
//
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product id"
// @Success      200  {object}  backend.Result[any]
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.DeleteProduct(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "product", id, res.Success)
	return respond(c, res)
}

// multipartForm collects the text fields and the named file (if any)
// from a multipart request into the backend's form shape.
func multipartForm(c echo.Context, fileField string) (*backend.Form, error) {
	mf, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	form := &backend.Form{
		Fields:    map[string]string{},
		FileField: fileField,
	}
	for name, vals := range mf.Value {
		if len(vals) > 0 {
			form.Fields[name] = vals[0]
		}
	}
	if files := mf.File[fileField]; len(files) > 0 {
		f, err := files[0].Open()
		if err != nil {
			return nil, err
		}
		form.File = f
		form.FileName = files[0].Filename
	}
	return form, nil
}
