package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gerenciamento-cursos/painel/internal/models"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "123.456.789-01", formatCPF("12345678901"))
	assert.Equal(t, "-", formatCPF(""))
	assert.Equal(t, "123", formatCPF("123"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15/03/2026", formatDate("2026-03-15T10:30:00"))
	assert.Equal(t, "15/03/2026", formatDate("2026-03-15T10:30:00Z"))
	assert.Equal(t, "15/03/2026", formatDate("2026-03-15"))
	assert.Equal(t, "-", formatDate(""))
	assert.Equal(t, "not a date", formatDate("not a date"))
}

func TestStatusBadge(t *testing.T) {
	assert.Equal(t, "badge-success", statusBadge(models.EnrollmentStatusActive))
	assert.Equal(t, "badge-danger", statusBadge(models.EnrollmentStatusCanceled))
	assert.Equal(t, "badge-warning", statusBadge(models.EnrollmentStatusLocked))
	assert.Equal(t, "badge-info", statusBadge(models.EnrollmentStatusCompleted))
}

func TestErrorNoticePrefersServerMessage(t *testing.T) {
	err := appErrors.Clone(appErrors.ErrMutationRejected, "Aluno já matriculado neste curso")

	assert.Equal(t, "Aluno já matriculado neste curso", errorNotice(err, "Erro genérico"))
}

func TestErrorNoticeFallsBack(t *testing.T) {
	err := appErrors.Clone(appErrors.ErrLoadFailed, "")
	err.Message = ""

	assert.Equal(t, "Erro genérico", errorNotice(err, "Erro genérico"))
}
