package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// UserHandler proxies staff account management.
type UserHandler struct {
	client *backend.Client
	sink   ports.AuditSink
}

func NewUserHandler(client *backend.Client, sink ports.AuditSink) *UserHandler {
	return &UserHandler{client: client, sink: sink}
}

func (h *UserHandler) List(c echo.Context) error {
	p := backend.UserListParams{
		Search:   c.QueryParam("search"),
		Role:     c.QueryParam("role"),
		IsActive: queryBool(c, "isActive"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	return respond(c, h.client.ListUsers(c.Request().Context(), token(c), p))
}

// Me returns the backend's view of the signed-in user, fresher than
// the session snapshot.
func (h *UserHandler) Me(c echo.Context) error {
	return respond(c, h.client.CurrentUser(c.Request().Context(), token(c)))
}

func (h *UserHandler) Get(c echo.Context) error {
	return respond(c, h.client.GetUser(c.Request().Context(), token(c), c.Param("id")))
}

func (h *UserHandler) Create(c echo.Context) error {
	var in backend.UserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res := h.client.CreateUser(c.Request().Context(), token(c), in)
	audit(c, h.sink, domain.AuditCreate, "user", "", res.Success)
	return respond(c, res)
}

func (h *UserHandler) Update(c echo.Context) error {
	var in backend.UserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	id := c.Param("id")
	res := h.client.UpdateUser(c.Request().Context(), token(c), id, in)
	audit(c, h.sink, domain.AuditUpdate, "user", id, res.Success)
	return respond(c, res)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	res := h.client.DeleteUser(c.Request().Context(), token(c), id)
	audit(c, h.sink, domain.AuditDelete, "user", id, res.Success)
	return respond(c, res)
}
