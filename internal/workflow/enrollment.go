// Package workflow orchestrates the enrollment lifecycle. Every mutation is
// pessimistic: local state changes only through the post-mutation re-fetch,
// never through the assumption that the mutation succeeded.
package workflow

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/models"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

type enrollmentGateway interface {
	CreateEnrollment(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	UpdateEnrollmentProgress(ctx context.Context, id int64, progress float64) (*models.Enrollment, error)
	CancelEnrollment(ctx context.Context, id int64) error
	ReactivateEnrollment(ctx context.Context, id int64) (*models.Enrollment, error)
}

// Refresher re-derives the dependent views from the backend after a
// successful mutation.
type Refresher interface {
	ReloadEnrollments(ctx context.Context) error
	ReloadDashboard(ctx context.Context) error
}

// Confirmer answers whether a destructive transition may proceed.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// EnrollRequest carries an enrollment creation.
type EnrollRequest struct {
	StudentID int64 `json:"alunoId" validate:"required"`
	CourseID  int64 `json:"cursoId" validate:"required"`
}

// Service drives enrollment state transitions: ATIVA may move to CANCELADA,
// CONCLUIDA or TRANCADA on the backend; CANCELADA back to ATIVA is the one
// reverse transition this client issues.
type Service struct {
	gw        enrollmentGateway
	refresh   Refresher
	validator *validator.Validate
	logger    *zap.Logger
}

// NewService constructs the workflow Service.
func NewService(gw enrollmentGateway, refresh Refresher, validate *validator.Validate, logger *zap.Logger) *Service {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gw: gw, refresh: refresh, validator: validate, logger: logger}
}

// Enroll creates an enrollment and, on success, reloads the enrollment list
// and the dashboard counters. On failure no local state is touched and the
// server's message travels back to the caller.
func (s *Service) Enroll(ctx context.Context, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "student and course are required")
	}
	enrollment, err := s.gw.CreateEnrollment(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("enrollment created",
		zap.Int64("enrollment_id", enrollment.ID),
		zap.Int64("student_id", req.StudentID),
		zap.Int64("course_id", req.CourseID),
	)
	s.reload(ctx, true)
	return enrollment, nil
}

// UpdateProgress forwards the raw progress value; range checking belongs to
// the backend and the client never clamps or corrects it. Success reloads the
// enrollment list only, since progress does not move dashboard counters.
func (s *Service) UpdateProgress(ctx context.Context, id int64, progress float64) (*models.Enrollment, error) {
	enrollment, err := s.gw.UpdateEnrollmentProgress(ctx, id, progress)
	if err != nil {
		return nil, err
	}
	s.logger.Info("enrollment progress updated",
		zap.Int64("enrollment_id", id),
		zap.Float64("progress", progress),
	)
	s.reload(ctx, false)
	return enrollment, nil
}

// Cancel requires confirmation before issuing the cancellation. A declined
// confirmation aborts without any request.
func (s *Service) Cancel(ctx context.Context, id int64, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm("cancelar matrícula") {
		return appErrors.ErrNotConfirmed
	}
	if err := s.gw.CancelEnrollment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("enrollment canceled", zap.Int64("enrollment_id", id))
	s.reload(ctx, true)
	return nil
}

// Reactivate returns a canceled enrollment to ATIVA, confirmation-gated like
// Cancel. Progress is untouched by the round-trip.
func (s *Service) Reactivate(ctx context.Context, id int64, confirm Confirmer) (*models.Enrollment, error) {
	if confirm == nil || !confirm.Confirm("reativar matrícula") {
		return nil, appErrors.ErrNotConfirmed
	}
	enrollment, err := s.gw.ReactivateEnrollment(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("enrollment reactivated", zap.Int64("enrollment_id", id))
	s.reload(ctx, true)
	return enrollment, nil
}

// reload re-fetches the views a successful mutation invalidated. A failed
// reload is a load failure, not a mutation failure: the mutation stands and
// the stale-but-available policy covers the views.
func (s *Service) reload(ctx context.Context, dashboard bool) {
	if s.refresh == nil {
		return
	}
	if err := s.refresh.ReloadEnrollments(ctx); err != nil {
		s.logger.Warn("enrollment reload after mutation failed", zap.Error(err))
	}
	if !dashboard {
		return
	}
	if err := s.refresh.ReloadDashboard(ctx); err != nil {
		s.logger.Warn("dashboard reload after mutation failed", zap.Error(err))
	}
}
