package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// CustomerHandler proxies the customer directory. The console's free
// text "search" is a phone-number lookup on the backend; the remap
// happens in the backend client.
type CustomerHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewCustomerHandler(client *backend.Client, sink ports.AuditSink) *CustomerHandler {
	return &CustomerHandler{client: client, sink: sink}
}

func (h *CustomerHandler) List(c echo.Context) error {
	p := backend.CustomerListParams{
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	return respond(c, h.client.ListCustomers(c.Request().Context(), token(c), p))
}

func (h *CustomerHandler) Get(c echo.Context) error {
	return respond(c, h.client.GetCustomer(c.Request().Context(), token(c), c.Param("id")))
}

// ByPhone resolves a customer by exact phone number, used at the POS
// when a walk-in gives their number.
func (h *CustomerHandler) ByPhone(c echo.Context) error {
	return respond(c, h.client.CustomerByPhone(c.Request().Context(), token(c), c.Param("phone")))
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var in backend.CustomerInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateCustomer(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "customer", "", res.Success)
	return respond(c, res)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	var in backend.CustomerInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	res := h.client.UpdateCustomer(c.Request().Context(), token(c), id, in)
	audit(c, h.sink, domain.AuditUpdate, "customer", id, res.Success)
	return respond(c, res)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.DeleteCustomer(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "customer", id, res.Success)
	return respond(c, res)
}
