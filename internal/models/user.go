package models

// Role represents the available roles for UI gating. The backend is the
// authorization authority; the panel only decides what to render.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleProfessor Role = "PROFESSOR"
	RoleAluno     Role = "ALUNO"
)

// Identity is the authenticated user returned by GET /auth/me. It is fetched
// once per session bootstrap and discarded on logout.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Role  Role   `json:"tipo"`
}

// Teacher is an Identity-shaped record with Role = PROFESSOR; the backend
// serves teachers from the users resource.
type Teacher = Identity

// UserPayload is the create/update body for the users resource.
type UserPayload struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha,omitempty"`
	Role     Role   `json:"tipo" validate:"required"`
}
