package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

func TestStudentOptionsProjection(t *testing.T) {
	students := []models.Student{
		{ID: 7, Name: "Ana Silva", Email: "ana@x.com"},
		{ID: 9, Name: "Bruno Costa", Email: "bruno@x.com"},
	}

	options := StudentOptions(students)

	require.Len(t, options, 2)
	assert.Equal(t, int64(7), options[0].Value)
	assert.Equal(t, "Ana Silva - ana@x.com", options[0].Text)
	assert.Equal(t, "ana silva ana@x.com 7", options[0].SearchText)
}

func TestCourseOptionsOnlyEnrollable(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Name: "Go Básico", Active: true, SeatsAvailable: 5},
		{ID: 2, Name: "Curso Cheio", Active: true, SeatsAvailable: 0},
		{ID: 3, Name: "Curso Inativo", Active: false, SeatsAvailable: 10},
	}

	options := CourseOptions(courses)

	require.Len(t, options, 1)
	assert.Equal(t, int64(1), options[0].Value)
	assert.Equal(t, "Go Básico (5 vagas)", options[0].Text)
}

func TestFilterEmptyQueryReturnsAllInOrder(t *testing.T) {
	options := []models.SelectOption{
		{Value: 1, SearchText: "ana"},
		{Value: 2, SearchText: "bruno"},
		{Value: 3, SearchText: "carla"},
	}

	filtered := Filter(options, "")

	require.Len(t, filtered, 3)
	assert.Equal(t, int64(1), filtered[0].Value)
	assert.Equal(t, int64(2), filtered[1].Value)
	assert.Equal(t, int64(3), filtered[2].Value)
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	options := StudentOptions([]models.Student{
		{ID: 7, Name: "Ana Silva", Email: "ana@x.com"},
		{ID: 9, Name: "Bruno Costa", Email: "bruno@x.com"},
	})

	filtered := Filter(options, "ANA@X")

	require.Len(t, filtered, 1)
	assert.Equal(t, int64(7), filtered[0].Value)
}

func TestFilterMatchesByID(t *testing.T) {
	options := StudentOptions([]models.Student{
		{ID: 42, Name: "Ana", Email: "ana@x.com"},
		{ID: 7, Name: "Bruno", Email: "bruno@x.com"},
	})

	filtered := Filter(options, "42")

	require.Len(t, filtered, 1)
	assert.Equal(t, int64(42), filtered[0].Value)
}

func TestFilterNoMatches(t *testing.T) {
	options := []models.SelectOption{{Value: 1, SearchText: "ana"}}

	filtered := Filter(options, "zzz")

	assert.Empty(t, filtered)
}
