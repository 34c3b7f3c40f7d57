package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

// ListStudents returns every student.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.getJSON(ctx, "alunos", "/alunos", &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent returns a single student by id.
func (c *Client) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := c.getJSON(ctx, "alunos", fmt.Sprintf("/alunos/%d", id), &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent creates a student.
func (c *Client) CreateStudent(ctx context.Context, payload models.StudentPayload) (*models.Student, error) {
	var student models.Student
	if err := c.sendJSON(ctx, "alunos", http.MethodPost, "/alunos", payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent updates a student.
func (c *Client) UpdateStudent(ctx context.Context, id int64, payload models.StudentPayload) (*models.Student, error) {
	var student models.Student
	if err := c.sendJSON(ctx, "alunos", http.MethodPut, fmt.Sprintf("/alunos/%d", id), payload, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "alunos", http.MethodDelete, fmt.Sprintf("/alunos/%d", id), nil, nil)
}
