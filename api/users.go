package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Rolamaalouf/Mishatote-front/models"
)

type userEnvelope struct {
	User models.User `json:"user"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Address  models.Address `json:"address"`
}

// Me returns the user bound to the session cookie, or an error (401 when
// the cookie is absent or expired).
func (c *Client) Me(ctx context.Context, cookie string) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/users/me", cookie, nil, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// Login exchanges credentials for a session. The upstream Set-Cookie
// headers are returned so the gateway can relay them to the browser.
func (c *Client) Login(ctx context.Context, creds Credentials) (*models.User, []string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/users/login", "", creds)
	if err != nil {
		return nil, nil, err
	}
	var env userEnvelope
	res, err := c.send(req, &env)
	if err != nil {
		return nil, nil, err
	}
	return &env.User, res.Header.Values("Set-Cookie"), nil
}

// Logout invalidates the upstream session. Set-Cookie headers (the
// clearing cookie) are relayed back on success.
func (c *Client) Logout(ctx context.Context, cookie string) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/users/logout", cookie, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.send(req, nil)
	if err != nil {
		return nil, err
	}
	return res.Header.Values("Set-Cookie"), nil
}

func (c *Client) Register(ctx context.Context, in RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/users/register", "", in, nil)
}

// ───────────────── Admin: user management ─────────────────

func (c *Client) Users(ctx context.Context, cookie string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", cookie, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) CreateUser(ctx context.Context, cookie string, in RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/users", cookie, in, nil)
}

func (c *Client) UpdateUser(ctx context.Context, cookie string, id uint, in models.User) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), cookie, in, nil)
}

func (c *Client) DeleteUser(ctx context.Context, cookie string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), cookie, nil, nil)
}
