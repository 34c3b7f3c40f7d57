package models

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// Possible enrollment statuses.
const (
	EnrollmentStatusActive    EnrollmentStatus = "ATIVA"
	EnrollmentStatusCompleted EnrollmentStatus = "CONCLUIDA"
	EnrollmentStatusCanceled  EnrollmentStatus = "CANCELADA"
	EnrollmentStatusLocked    EnrollmentStatus = "TRANCADA"
)

// Enrollment binds a student to a course with a lifecycle status and a
// completion progress percentage. StudentName/CourseName are denormalised by
// the backend and may be absent; callers fall back to the raw ids.
type Enrollment struct {
	ID          int64            `json:"id"`
	StudentID   int64            `json:"alunoId"`
	CourseID    int64            `json:"cursoId"`
	StudentName string           `json:"alunoNome,omitempty"`
	CourseName  string           `json:"cursoNome,omitempty"`
	Status      EnrollmentStatus `json:"status"`
	Progress    float64          `json:"progresso"`
	EnrolledAt  string           `json:"dataMatricula"`
}

// Active reports whether the enrollment is in the ATIVA state.
func (e Enrollment) Active() bool {
	return e.Status == EnrollmentStatusActive
}
