package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

// ListCourses returns every course.
func (c *Client) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.getJSON(ctx, "cursos", "/cursos", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// AvailableCourses returns active courses with at least one open seat.
func (c *Client) AvailableCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.getJSON(ctx, "cursos", "/cursos/disponiveis", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse returns a single course by id.
func (c *Client) GetCourse(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	if err := c.getJSON(ctx, "cursos", fmt.Sprintf("/cursos/%d", id), &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse creates a course.
func (c *Client) CreateCourse(ctx context.Context, payload models.CoursePayload) (*models.Course, error) {
	var course models.Course
	if err := c.sendJSON(ctx, "cursos", http.MethodPost, "/cursos", payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse updates a course.
func (c *Client) UpdateCourse(ctx context.Context, id int64, payload models.CoursePayload) (*models.Course, error) {
	var course models.Course
	if err := c.sendJSON(ctx, "cursos", http.MethodPut, fmt.Sprintf("/cursos/%d", id), payload, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "cursos", http.MethodDelete, fmt.Sprintf("/cursos/%d", id), nil, nil)
}
