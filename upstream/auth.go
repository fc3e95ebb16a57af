package upstream

import (
	"context"
	"net/http"

	"github.com/eassylife/b2bportal/models"
)

type loginEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    *struct {
		User models.B2BUser `json:"user"`
	} `json:"data"`
}

// Login exchanges credentials for the upstream identity token. The upstream
// issues the authenticated user's ID as the identity token.
func (c *Client) Login(ctx context.Context, email, password string) (token string, err error) {
	var env loginEnvelope
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, "", http.MethodPost, "b2b/login", nil, req, &env); err != nil {
		return "", err
	}
	if !env.Status || env.Data == nil || env.Data.User.ID == "" {
		return "", &Rejection{Message: env.Message}
	}
	return env.Data.User.ID, nil
}

// Logout invalidates the server-side session. Callers treat failures as
// best-effort only.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, token, http.MethodPost, "b2b/logout", nil, nil, nil)
}

type currentUserEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    *models.B2BUser `json:"data"`
}

// CurrentUser fetches the full authenticated profile for the token.
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.B2BUser, error) {
	var env currentUserEnvelope
	if err := c.do(ctx, token, http.MethodGet, "b2b/get-current-token", nil, nil, &env); err != nil {
		return nil, err
	}
	if !env.Status || env.Data == nil {
		return nil, &Rejection{Message: env.Message}
	}
	return env.Data, nil
}
