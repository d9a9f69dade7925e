package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/openretail/pos-gateway/internal/core/domain"
)

// AuthFailure is a backend-rejected credential exchange. Error() carries
// the backend's message verbatim so the UI can show it unchanged;
// Unwrap lets callers branch on the sentinel taxonomy.
type AuthFailure struct {
	StatusCode int
	Message    string
}

func (e *AuthFailure) Error() string { return e.Message }

func (e *AuthFailure) Unwrap() error {
	if e.StatusCode == http.StatusLocked {
		return domain.ErrAccountLocked
	}
	return domain.ErrInvalidCredentials
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"accessToken"`
}

// ExchangeCredentials performs the login call. Classification order:
// backend-provided message on non-2xx, connectivity for non-JSON bodies
// and network-level failures, incomplete-data when a 2xx reply is
// missing the user or the token. Exactly one attempt is made.
func (c *Client) ExchangeCredentials(ctx context.Context, email, password string) (*User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingCredentials
	}

	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err)
	}

	if !json.Valid(body) {
		// A proxy error page or an empty reply: the backend itself is
		// not answering, which is a connectivity problem, not a
		// credential one.
		return nil, "", fmt.Errorf("%w: non-JSON response (status %d)", domain.ErrBackendUnreachable, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(body, resp.StatusCode)
		if resp.StatusCode == http.StatusUnauthorized && msg == fmt.Sprintf("request failed with status %d", resp.StatusCode) {
			msg = domain.ErrInvalidCredentials.Error()
		}
		return nil, "", &AuthFailure{StatusCode: resp.StatusCode, Message: msg}
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrUnparsableResponse, err)
	}
	if lr.User == nil || lr.AccessToken == "" {
		return nil, "", domain.ErrIncompleteLogin
	}
	return lr.User, lr.AccessToken, nil
}

// RevokeToken asks the backend to invalidate the bearer token. Logout
// proceeds locally whatever happens here, so callers treat the error as
// advisory.
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("logout returned status %d", resp.StatusCode)
	}
	return nil
}
