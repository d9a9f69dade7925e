package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openretail/pos-gateway/internal/api/middleware"
	"github.com/openretail/pos-gateway/internal/backend"
	"github.com/openretail/pos-gateway/internal/core/domain"
	"github.com/openretail/pos-gateway/internal/core/ports"
)

// respond writes a backend result to the client, preserving the
// upstream status code. Failures arrive inside the envelope rather than
// as Go errors, so this is the single exit for proxied calls.
func respond[T any](c echo.Context, res backend.Result[T]) error {
	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, res)
}

// token returns the current session's backend bearer token, empty for
// anonymous requests. The backend client refuses unauthenticated
// mutations on its own.
func token(c echo.Context) string {
	return middleware.TokenFrom(c)
}

// audit records a mutation on the activity trail. Reads are not
// audited.
func audit(c echo.Context, sink ports.AuditSink, action, resource, resourceID string, success bool) {
	if sink == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	e := domain.AuditEntry{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Outcome:    outcome,
		RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
		At:         time.Now(),
	}
	if s := middleware.SessionFrom(c); s != nil {
		e.ActorID = s.Principal.ID
		e.ActorEmail = s.Principal.Email
		e.ActorRole = s.Principal.Role
	}
	sink.Record(e)
}
