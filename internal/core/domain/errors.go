package domain

import "errors"

// Sentinel errors shared across services, handlers and middleware. The
// central HTTP error handler maps each of these to a deterministic
// status code; everything else becomes a 500.
var (
	// ErrMissingCredentials is returned before any network call when the
	// login payload has an empty email or password.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidCredentials signals a backend-rejected login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountLocked signals the backend refused the login because the
	// account is locked (HTTP 423).
	ErrAccountLocked = errors.New("account is locked")

	// ErrAuthRequired is returned when a mutating operation is attempted
	// without a bearer token. No network call is made.
	ErrAuthRequired = errors.New("authentication required")

	// ErrSessionExpired marks a session older than SessionLifetime.
	ErrSessionExpired = errors.New("session expired")

	// ErrForbidden signals a role or permission check failure.
	ErrForbidden = errors.New("access forbidden")

	// ErrBackendUnreachable covers connection refused, DNS failures,
	// timeouts and non-JSON replies from intermediaries. It is kept
	// distinct from credential errors so the UI can suggest checking the
	// backend rather than the password.
	ErrBackendUnreachable = errors.New("cannot reach backend service")

	// ErrUnparsableResponse is returned when a 2xx response body is not
	// valid JSON.
	ErrUnparsableResponse = errors.New("failed to parse backend response")

	// ErrIncompleteLogin is returned when a 2xx login response is missing
	// the user record or the access token.
	ErrIncompleteLogin = errors.New("login response missing user or token")
)
