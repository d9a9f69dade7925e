package backend

import (
	"context"
	"net/http"
	"net/url"
)

// UserListParams filters the staff user list.
type UserListParams struct {
	Search   string
	Role     string
	IsActive *bool
	Page     int
	Limit    int
}

func (p UserListParams) values() url.Values {
	q := url.Values{}
	setIfStr(q, "search", p.Search)
	setIfStr(q, "role", p.Role)
	setIf(q, "isActive", p.IsActive)
	setIfInt(q, "page", p.Page)
	setIfInt(q, "limit", p.Limit)
	return q
}

func (c *Client) ListUsers(ctx context.Context, token string, p UserListParams) Result[[]User] {
	return do[[]User](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/users",
		query:  p.values(),
		token:  token,
	})
}

// CurrentUser fetches the profile of the token's owner.
func (c *Client) CurrentUser(ctx context.Context, token string) Result[User] {
	return do[User](ctx, c, request{
		method:      http.MethodGet,
		path:        "/api/users/me",
		token:       token,
		requireAuth: true,
	})
}

func (c *Client) GetUser(ctx context.Context, token, id string) Result[User] {
	return do[User](ctx, c, request{
		method: http.MethodGet,
		path:   "/api/users/" + url.PathEscape(id),
		token:  token,
	})
}

func (c *Client) CreateUser(ctx context.Context, token string, in UserInput) Result[User] {
	return do[User](ctx, c, request{
		method:      http.MethodPost,
		path:        "/api/users",
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, in UserInput) Result[User] {
	return do[User](ctx, c, request{
		method:      http.MethodPut,
		path:        "/api/users/" + url.PathEscape(id),
		token:       token,
		body:        in,
		requireAuth: true,
	})
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) Result[any] {
	return do[any](ctx, c, request{
		method:      http.MethodDelete,
		path:        "/api/users/" + url.PathEscape(id),
		token:       token,
		requireAuth: true,
	})
}
