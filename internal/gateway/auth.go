package gateway

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/models"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

// Me returns the current authenticated identity. Callers treat any error as
// "not authenticated".
func (c *Client) Me(ctx context.Context) (*models.Identity, error) {
	var identity models.Identity
	if err := c.getJSON(ctx, "auth", "/auth/me", &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Login posts the form-encoded credentials and verifies the resulting session
// with a who-am-I call. The backend answers the form POST with a redirect
// either way, so only the follow-up identity check distinguishes success.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	if err := c.sendForm(ctx, "auth", "/auth/login", form.Encode()); err != nil {
		return nil, err
	}

	identity, err := c.Me(ctx)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "invalid email or password")
	}
	return identity, nil
}

// Logout clears the server-side session. The panel redirects to the login
// page regardless of the outcome, so failures are only logged.
func (c *Client) Logout(ctx context.Context) {
	if err := c.sendJSON(ctx, "auth", "POST", "/auth/logout", nil, nil); err != nil {
		c.logger.Warn("logout request failed", zap.Error(err))
	}
}
