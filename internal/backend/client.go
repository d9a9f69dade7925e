// Package backend implements the authorized request proxy against the
// POS backend API. One generic core builds the URL, attaches the bearer
// token, issues the call and normalizes the reply into the uniform
// Result envelope; every resource file instantiates it with its own
// paths and parameter mappings.
//
// Proxy calls never panic and never surface raw transport errors: all
// failure modes are classified into the envelope so callers can branch
// on Success alone.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/openretail/pos-gateway/internal/api/metrics"
	"github.com/openretail/pos-gateway/internal/core/domain"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 8 << 20
)

// Client talks to the backend API at a fixed base URL. It holds no
// per-user state: the bearer token travels with every call.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client for the given base URL. A default timeout is
// applied when the original console left hung calls dangling; an
// unbounded wait is not reproducible here.
func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// Pagination mirrors the backend's list pagination block.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// Result is the uniform envelope every proxy call returns. Exactly one
// of Data/Error is meaningful: Success true ⇔ Data is populated and
// Error is empty.
type Result[T any] struct {
	Success    bool        `json:"success"`
	Data       T           `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`

	// Status carries the HTTP status the gateway should answer with.
	// It is transport metadata, not part of the envelope body.
	Status int `json:"-"`
}

func failure[T any](status int, msg string) Result[T] {
	return Result[T]{Success: false, Error: msg, Status: status}
}

// request describes one backend call before it is issued.
type request struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
	form   *Form

	// requireAuth short-circuits with an authentication-required failure
	// when no token is held. All mutating calls set it; a few read-only
	// metadata endpoints tolerate anonymous access and leave it unset.
	requireAuth bool
}

// Form is a multipart payload, used by resources that accept image
// uploads. When set, the JSON content type is not forced so the
// multipart boundary ends up on the wire.
type Form struct {
	Fields   map[string]string
	FileName string
	File     io.Reader
	// FileField is the form field the file is attached under.
	FileField string
}

// do executes one backend call and normalizes the response. The steps
// run strictly in sequence: auth precondition, URL, headers, call,
// classification, decode.
func do[T any](ctx context.Context, c *Client, req request) Result[T] {
	resource := resourceLabel(req.path)

	if req.requireAuth && req.token == "" {
		metrics.BackendRequestsTotal.WithLabelValues(resource, req.method, "auth_required").Inc()
		return failure[T](http.StatusUnauthorized, domain.ErrAuthRequired.Error())
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := c.newRequest(ctx, req, target)
	if err != nil {
		return failure[T](http.StatusInternalServerError, "failed to build request")
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	metrics.BackendRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Warn().Err(err).Str("url", target).Msg("backend unreachable")
		metrics.BackendRequestsTotal.WithLabelValues(resource, req.method, "unreachable").Inc()
		return failure[T](http.StatusBadGateway, domain.ErrBackendUnreachable.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(resource, req.method, "unreachable").Inc()
		return failure[T](http.StatusBadGateway, domain.ErrBackendUnreachable.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.BackendRequestsTotal.WithLabelValues(resource, req.method, "backend_error").Inc()
		return failure[T](resp.StatusCode, errorMessage(body, resp.StatusCode))
	}

	res := decode[T](body)
	if res.Success {
		// Preserve the upstream status so 201s survive the proxy.
		res.Status = resp.StatusCode
		metrics.BackendRequestsTotal.WithLabelValues(resource, req.method, "ok").Inc()
	} else {
		metrics.BackendRequestsTotal.WithLabelValues(resource, req.method, "parse_error").Inc()
	}
	return res
}

func (c *Client) newRequest(ctx context.Context, req request, target string) (*http.Request, error) {
	var (
		reader      io.Reader
		contentType string
	)

	switch {
	case req.form != nil:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for k, v := range req.form.Fields {
			if err := w.WriteField(k, v); err != nil {
				return nil, err
			}
		}
		if req.form.File != nil {
			field := req.form.FileField
			if field == "" {
				field = "image"
			}
			part, err := w.CreateFormFile(field, req.form.FileName)
			if err != nil {
				return nil, err
			}
			if _, err := io.Copy(part, req.form.File); err != nil {
				return nil, err
			}
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		reader = buf
		contentType = w.FormDataContentType()
	case req.body != nil:
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	// Every call must reflect current backend state; ask intermediaries
	// not to serve anything stale.
	httpReq.Header.Set("Cache-Control", "no-store")
	return httpReq, nil
}

// errorMessage extracts the backend's message field from an error body,
// falling back to a synthesized string carrying the status code.
func errorMessage(body []byte, status int) string {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// envelope covers the three success shapes backend endpoints use:
// a bare array, a wrapped object {data, message}, or a paginated list
// {data, pagination}. Anything without a data key is taken as the
// resource itself.
type envelope struct {
	Success    *bool           `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Error      string          `json:"error"`
	Pagination *Pagination     `json:"pagination"`
}

// decode normalizes a 2xx body into Result[T]. Parse failures yield a
// distinct failed-to-parse classification instead of a panic or a raw
// unmarshal error.
func decode[T any](body []byte) Result[T] {
	trimmed := bytes.TrimSpace(body)

	// Bare-array endpoints (notably the stores list) skip the wrapper.
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var out T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return failure[T](http.StatusBadGateway, domain.ErrUnparsableResponse.Error())
		}
		return Result[T]{Success: true, Data: out, Status: http.StatusOK}
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return failure[T](http.StatusBadGateway, domain.ErrUnparsableResponse.Error())
	}

	// A wrapped body can itself report failure with a 2xx status.
	if env.Success != nil && !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		if msg == "" {
			msg = "backend reported failure"
		}
		return failure[T](http.StatusBadGateway, msg)
	}

	payload := env.Data
	if payload == nil {
		payload = trimmed
	}

	var out T
	if len(payload) > 0 && !bytes.Equal(payload, []byte("null")) {
		if err := json.Unmarshal(payload, &out); err != nil {
			return failure[T](http.StatusBadGateway, domain.ErrUnparsableResponse.Error())
		}
	}
	return Result[T]{
		Success:    true,
		Data:       out,
		Message:    env.Message,
		Pagination: env.Pagination,
		Status:     http.StatusOK,
	}
}

// resourceLabel reduces a request path to its leading resource segment
// for metric labels, keeping cardinality bounded.
func resourceLabel(path string) string {
	p := strings.TrimPrefix(path, "/api/")
	if i := strings.IndexByte(p, '/'); i > 0 {
		return p[:i]
	}
	return p
}

// setIf appends a query parameter only when the optional value is set.
// Pointer arguments distinguish "absent" from a zero value so filters
// like isActive=false survive the trip.
func setIf[V any](q url.Values, key string, v *V) {
	if v == nil {
		return
	}
	q.Set(key, fmt.Sprintf("%v", *v))
}

func setIfStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func setIfInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, fmt.Sprintf("%d", v))
	}
}
