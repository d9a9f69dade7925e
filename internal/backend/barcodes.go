package backend

import (
	"context"
	"net/http"
	"net/url"
)

// BarcodeListParams filters the barcode list.
type BarcodeListParams struct {
	ProductID string
	Page      int
	Limit     int
}

func (p BarcodeListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "productId", p.ProductID)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListBarcodes(ctx context.Context, token string, p BarcodeListParams) Result[[]Barcode] {
	return do[[]Barcode](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/barcodes",
		query:  p.values(),
		token:  token,
	})
}

func (c *Client) CreateBarcode(ctx context.Context, token string, in Barcode) Result[Barcode] {
	return do[Barcode](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/barcodes",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

// GenerateBarcodes asks the backend to mint fresh codes for a product.
func (c *Client) GenerateBarcodes(ctx context.Context, token string, in BarcodeGenerateInput) Result[[]Barcode] {
	return do[[]Barcode](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/barcodes/generate",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

// CheckBarcode reports whether a code is already taken.
func (c *Client) CheckBarcode(ctx context.Context, token, code string) Result[BarcodeCheck] {
	q := url.Values{}
	setIfStr(q, "code", code)
	return do[BarcodeCheck](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/barcodes/check",
		query:  q,
		token:  token,
	})
}
