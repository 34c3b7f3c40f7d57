package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

// ListProfessors returns users with the PROFESSOR role.
func (c *Client) ListProfessors(ctx context.Context) ([]models.Teacher, error) {
	var professors []models.Teacher
	if err := c.getJSON(ctx, "usuarios", "/usuarios/professores", &professors); err != nil {
		return nil, err
	}
	return professors, nil
}

// ListUsers returns every user account.
func (c *Client) ListUsers(ctx context.Context) ([]models.Identity, error) {
	var users []models.Identity
	if err := c.getJSON(ctx, "usuarios", "/usuarios", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user account (teacher management).
func (c *Client) CreateUser(ctx context.Context, payload models.UserPayload) (*models.Identity, error) {
	var user models.Identity
	if err := c.sendJSON(ctx, "usuarios", http.MethodPost, "/usuarios", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user account.
func (c *Client) UpdateUser(ctx context.Context, id int64, payload models.UserPayload) (*models.Identity, error) {
	var user models.Identity
	if err := c.sendJSON(ctx, "usuarios", http.MethodPut, fmt.Sprintf("/usuarios/%d", id), payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "usuarios", http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil, nil)
}
