package api

import (
	"context"

	"github.com/tourmate-app/tourmate-cli/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	Code string `json:"code"`
}

type authData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a session. The caller decides whether and
// where to persist it.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	env, err := c.postJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	data, err := decodeData[authData](env)
	if err != nil {
		return nil, err
	}
	return &models.Session{Token: data.Token, User: data.User}, nil
}

// Register creates an account. It deliberately does not authenticate: the
// caller switches to the login flow with the email pre-filled.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	_, err := c.postJSON(ctx, "/auth/register", registerRequest{Name: name, Email: email, Password: password})
	return err
}

// GoogleLogin exchanges a provider authorization code for a session.
func (c *Client) GoogleLogin(ctx context.Context, code string) (*models.Session, error) {
	env, err := c.postJSON(ctx, "/auth/google-login", googleLoginRequest{Code: code})
	if err != nil {
		return nil, err
	}
	data, err := decodeData[authData](env)
	if err != nil {
		return nil, err
	}
	return &models.Session{Token: data.Token, User: data.User}, nil
}
