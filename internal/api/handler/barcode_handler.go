package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// BarcodeHandler proxies barcode management and lookup.
type BarcodeHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewBarcodeHandler(client *backend.Client, sink ports.AuditSink) *BarcodeHandler {
	return &BarcodeHandler{client: client, sink: sink}
}

func (h *BarcodeHandler) List(c echo.Context) error {
	p := backend.BarcodeListParams{
		ProductID: c.QueryParam("productId"),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	}
	return respond(c, h.client.ListBarcodes(c.Request().Context(), token(c), p))
}

func (h *BarcodeHandler) Create(c echo.Context) error {
	var in backend.Barcode
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	res := h.client.CreateBarcode(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "barcode", in.Code, res.Success)
	return respond(c, res)
}

// Generate mints fresh codes for a product.
func (h *BarcodeHandler) Generate(c echo.Context) error {
	var in backend.BarcodeGenerateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.GenerateBarcodes(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "barcode", in.ProductID, res.Success)
	return respond(c, res)
}

// Check answers whether a scanned code is already assigned.
func (h *BarcodeHandler) Check(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}
	return respond(c, h.client.CheckBarcode(c.Request().Context(), token(c), code))
}
