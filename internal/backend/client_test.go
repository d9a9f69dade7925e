package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/core/domain"
)

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// fakeBackend records every request and plays back a canned response.
func fakeBackend(t *testing.T, status int, body string) (*Client, *[]captured) {
	t.Helper()
	var reqs []captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		reqs = append(reqs, captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   buf,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, zerolog.Nop()), &reqs
}

func TestListProducts_NoFiltersNoQueryString(t *testing.T) {
	c, reqs := fakeBackend(t, http.StatusOK, `{"data":[]}`)

	res := c.ListProducts(context.Background(), "tok", ProductListParams{})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if len(*reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(*reqs))
	}
	got := (*reqs)[0]
	if got.path != "/api/products" {
		t.Fatalf("path: %s", got.path)
	}
	if got.query != "" {
		t.Fatalf("expected empty query string, got %q", got.query)
	}
}

func TestRequestHeaders(t *testing.T) {
	c, reqs := fakeBackend(t, http.StatusOK, `{"data":{"id":"p1","name":"Cola"}}`)

	res := c.CreateProduct(context.Background(), "tok123", ProductInput{Name: "Cola", SKU: "C1", Price: 2})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}

	h := (*reqs)[0].header
	if got := h.Get("Authorization"); got != "Bearer tok123" {
		t.Fatalf("authorization header: %q", got)
	}
	if got := h.Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type: %q", got)
	}
	if got := h.Get("Cache-Control"); got != "no-store" {
		t.Fatalf("cache control: %q", got)
	}
}

func TestSupplierFilter_InactiveOnly(t *testing.T) {
	c, reqs := fakeBackend(t, http.StatusOK, `{"data":[]}`)

	inactive := false
	res := c.ListSuppliers(context.Background(), "tok", SupplierListParams{IsActive: &inactive})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if got := (*reqs)[0].query; got != "isActive=false" {
		t.Fatalf("expected isActive=false and nothing else, got %q", got)
	}
}

func TestCustomerSearch_RemapsToPhone(t *testing.T) {
	c, reqs := fakeBackend(t, http.StatusOK, `{"data":[]}`)

	res := c.ListCustomers(context.Background(), "tok", CustomerListParams{Search: "555-0101"})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if got := (*reqs)[0].query; got != "phone=555-0101" {
		t.Fatalf("expected phone param, got %q", got)
	}
}

func TestMutationWithoutToken_NoNetworkCall(t *testing.T) {
	c, reqs := fakeBackend(t, http.StatusOK, `{}`)

	res := c.DeleteProduct(context.Background(), "", "p1")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != domain.ErrAuthRequired.Error() {
		t.Fatalf("expected authentication-required error, got %q", res.Error)
	}
	if res.Status != http.StatusUnauthorized {
		t.Fatalf("status: %d", res.Status)
	}
	if len(*reqs) != 0 {
		t.Fatalf("no network call expected, saw %d", len(*reqs))
	}
}

func TestReadWithoutToken_OmitsAuthorizationHeader(t *testing.T) {
	c, reqs := fakeBackend(t, http.StatusOK, `{"data":[]}`)

	res := c.ListCategories(context.Background(), "", CategoryListParams{})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if got := (*reqs)[0].header.Get("Authorization"); got != "" {
		t.Fatalf("anonymous read must not send Authorization, got %q", got)
	}
}

func TestBackendError_MessagePassedThrough(t *testing.T) {
	c, _ := fakeBackend(t, http.StatusConflict, `{"message":"SKU already exists"}`)

	res := c.CreateProduct(context.Background(), "tok", ProductInput{Name: "X", SKU: "S", Price: 1})
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "SKU already exists" {
		t.Fatalf("backend message must pass through verbatim, got %q", res.Error)
	}
	if res.Status != http.StatusConflict {
		t.Fatalf("status: %d", res.Status)
	}
}

func TestBackendError_NonJSONBodySynthesizesMessage(t *testing.T) {
	c, _ := fakeBackend(t, http.StatusInternalServerError, `<html>boom</html>`)

	res := c.GetProduct(context.Background(), "tok", "p1")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(res.Error, "500") {
		t.Fatalf("synthesized message must embed the status code, got %q", res.Error)
	}
}

func TestSuccessBody_NotJSON_IsParseFailure(t *testing.T) {
	c, _ := fakeBackend(t, http.StatusOK, `not json at all`)

	res := c.GetProduct(context.Background(), "tok", "p1")
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != domain.ErrUnparsableResponse.Error() {
		t.Fatalf("expected parse-failure classification, got %q", res.Error)
	}
}

func TestStoresList_BareArrayShape(t *testing.T) {
	c, _ := fakeBackend(t, http.StatusOK, `[{"id":"s1","name":"Main","isActive":true}]`)

	res := c.ListStores(context.Background(), "tok")
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if len(res.Data) != 1 || res.Data[0].ID != "s1" {
		t.Fatalf("unexpected data: %+v", res.Data)
	}
}

func TestPaginatedShape(t *testing.T) {
	c, _ := fakeBackend(t, http.StatusOK,
		`{"data":[{"id":"p1","name":"Cola"}],"pagination":{"page":2,"limit":10,"total":25,"total_pages":3}}`)

	res := c.ListProducts(context.Background(), "tok", ProductListParams{Page: 2, Limit: 10})
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if res.Pagination == nil || res.Pagination.Page != 2 || res.Pagination.Total != 25 {
		t.Fatalf("pagination not carried: %+v", res.Pagination)
	}
}

func TestDirectObjectShape(t *testing.T) {
	// Some endpoints return the resource itself with no data wrapper.
	c, _ := fakeBackend(t, http.StatusOK, `{"id":"c9","name":"Drinks"}`)

	res := c.GetCategory(context.Background(), "tok", "c9")
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}
	if res.Data.ID != "c9" {
		t.Fatalf("unexpected data: %+v", res.Data)
	}
}

func TestWrappedFailure_With2xxStatus(t *testing.T) {
	c, _ := fakeBackend(t, http.StatusOK, `{"success":false,"error":"insufficient stock"}`)

	res := c.AdjustInventory(context.Background(), "tok", InventoryAdjustment{ProductID: "p1", Delta: -5})
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != "insufficient stock" {
		t.Fatalf("wrapped error must pass through, got %q", res.Error)
	}
}

func TestEnvelopeInvariant(t *testing.T) {
	c, _ := fakeBackend(t, http.StatusOK, `{"data":{"id":"p1","name":"Cola"},"message":"created"}`)

	ok := c.GetProduct(context.Background(), "tok", "p1")
	if !ok.Success || ok.Error != "" || ok.Data.ID == "" {
		t.Fatalf("success envelope must have data and no error: %+v", ok)
	}

	bad := c.DeleteProduct(context.Background(), "", "p1")
	if bad.Success || bad.Error == "" {
		t.Fatalf("failure envelope must have error and no success: %+v", bad)
	}
}

func TestConnectionRefused_IsConnectivityFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url, zerolog.Nop())
	res := c.ListProducts(context.Background(), "tok", ProductListParams{})
	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.Error != domain.ErrBackendUnreachable.Error() {
		t.Fatalf("expected connectivity classification, got %q", res.Error)
	}
	if res.Status != http.StatusBadGateway {
		t.Fatalf("status: %d", res.Status)
	}
}

func TestMultipartUpload_BoundaryContentType(t *testing.T) {
	c, reqs := fakeBackend(t, http.StatusCreated, `{"data":{"id":"p2","name":"Tea"}}`)

	form := &Form{
		Fields:    map[string]string{"name": "Tea", "sku": "T1", "price": "3.50"},
		FileField: "image",
		FileName:  "tea.png",
		File:      strings.NewReader("png-bytes"),
	}
	res := c.CreateProductWithImage(context.Background(), "tok", form)
	if !res.Success {
		t.Fatalf("expected success, got %q", res.Error)
	}

	ct := (*reqs)[0].header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data; boundary=") {
		t.Fatalf("multipart boundary must be set by the writer, got %q", ct)
	}
}
