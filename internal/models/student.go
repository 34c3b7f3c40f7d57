package models

// Student mirrors the backend's aluno resource.
type Student struct {
	ID     int64  `json:"id"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
	CPF    string `json:"cpf"`
	Phone  string `json:"telefone"`
	Active bool   `json:"ativo"`
}

// StudentPayload is the create/update body for the students resource.
type StudentPayload struct {
	Name  string `json:"nome" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	CPF   string `json:"cpf" validate:"required"`
	Phone string `json:"telefone"`
}
