package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

type enrollmentCreateBody struct {
	StudentID int64 `json:"alunoId"`
	CourseID  int64 `json:"cursoId"`
}

type progressBody struct {
	Progress float64 `json:"progresso"`
}

// ListEnrollments returns every enrollment.
func (c *Client) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := c.getJSON(ctx, "matriculas", "/matriculas", &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListEnrollmentsByStudent returns a student's enrollments.
func (c *Client) ListEnrollmentsByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := c.getJSON(ctx, "matriculas", fmt.Sprintf("/matriculas/aluno/%d", studentID), &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// ListEnrollmentsByCourse returns a course's enrollments.
func (c *Client) ListEnrollmentsByCourse(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := c.getJSON(ctx, "matriculas", fmt.Sprintf("/matriculas/curso/%d", courseID), &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// CreateEnrollment enrolls a student into a course. Seat availability is
// validated by the backend; its rejection message is carried back verbatim.
func (c *Client) CreateEnrollment(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	body := enrollmentCreateBody{StudentID: studentID, CourseID: courseID}
	if err := c.sendJSON(ctx, "matriculas", http.MethodPost, "/matriculas", body, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// UpdateEnrollmentProgress sends the raw progress value. The backend owns the
// [0,100] range check; the client never clamps.
func (c *Client) UpdateEnrollmentProgress(ctx context.Context, id int64, progress float64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	path := fmt.Sprintf("/matriculas/%d/progresso", id)
	if err := c.sendJSON(ctx, "matriculas", http.MethodPatch, path, progressBody{Progress: progress}, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// CancelEnrollment cancels an active enrollment.
func (c *Client) CancelEnrollment(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "matriculas", http.MethodDelete, fmt.Sprintf("/matriculas/%d", id), nil, nil)
}

// ReactivateEnrollment returns a canceled enrollment to the active state.
func (c *Client) ReactivateEnrollment(ctx context.Context, id int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	path := fmt.Sprintf("/matriculas/%d/reativar", id)
	if err := c.sendJSON(ctx, "matriculas", http.MethodPatch, path, nil, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}
