package backend

import (
	"context"
	"net/http"

	"ClinicaAdmin/models"
)

// LoginResult is the backend's answer to a successful login: the bearer
// token every subsequent call must carry plus the authenticated user.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login is the only call issued without a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var result LoginResult
	payload := loginPayload{Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
