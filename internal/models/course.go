package models

// Course mirrors the backend's curso resource. SeatsAvailable never exceeds
// Seats; only active courses with open seats are enrollment targets.
type Course struct {
	ID               int64  `json:"id"`
	Name             string `json:"nome"`
	Description      string `json:"descricao"`
	Workload         int    `json:"cargaHoraria"`
	Seats            int    `json:"vagas"`
	SeatsAvailable   int    `json:"vagasDisponiveis"`
	ProfessorID      int64  `json:"professorId"`
	ProfessorName    string `json:"professorNome,omitempty"`
	Active           bool   `json:"ativo"`
	TotalEnrollments int    `json:"totalMatriculas"`
}

// Enrollable reports whether the course is a valid enrollment target.
func (c Course) Enrollable() bool {
	return c.Active && c.SeatsAvailable > 0
}

// CoursePayload is the create/update body for the courses resource.
type CoursePayload struct {
	Name        string `json:"nome" validate:"required"`
	Description string `json:"descricao"`
	Workload    int    `json:"cargaHoraria" validate:"required,gt=0"`
	Seats       int    `json:"vagas" validate:"required,gt=0"`
	ProfessorID int64  `json:"professorId" validate:"required"`
}
