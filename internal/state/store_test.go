package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerenciamento-cursos/painel/internal/models"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

type fakeTeacherSource struct {
	teachers []models.Teacher
	err      error
	calls    int
}

func (f *fakeTeacherSource) ListProfessors(context.Context) ([]models.Teacher, error) {
	f.calls++
	return f.teachers, f.err
}

type fakeCourseSource struct {
	courses []models.Course
	err     error
}

func (f *fakeCourseSource) ListCourses(context.Context) ([]models.Course, error) {
	return f.courses, f.err
}

func TestReplaceTeachersIsWholesale(t *testing.T) {
	store := NewStore(nil)
	store.ReplaceTeachers([]models.Teacher{{ID: 1, Name: "Maria"}, {ID: 2, Name: "José"}})
	store.ReplaceTeachers([]models.Teacher{{ID: 3, Name: "Clara"}})

	teachers := store.Teachers()
	require.Len(t, teachers, 1)
	assert.Equal(t, "Clara", teachers[0].Name)

	_, ok := store.Teacher(1)
	assert.False(t, ok)
}

func TestRefreshKeepsPreviousSnapshotOnFailure(t *testing.T) {
	store := NewStore(nil)
	store.ReplaceTeachers([]models.Teacher{{ID: 1, Name: "Maria"}})

	src := &fakeTeacherSource{err: appErrors.ErrLoadFailed}
	teachers, err := store.RefreshTeachers(context.Background(), src)

	require.Error(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, "Maria", teachers[0].Name)

	kept := store.Teachers()
	require.Len(t, kept, 1)
	assert.Equal(t, "Maria", kept[0].Name)
}

func TestRefreshReplacesSnapshotOnSuccess(t *testing.T) {
	store := NewStore(nil)
	store.ReplaceCourses([]models.Course{{ID: 1, Name: "Antigo"}})

	src := &fakeCourseSource{courses: []models.Course{{ID: 2, Name: "Novo"}}}
	courses, err := store.RefreshCourses(context.Background(), src)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Novo", courses[0].Name)

	_, ok := store.Course(1)
	assert.False(t, ok)
}

func TestTeacherNameFallsBackToRawID(t *testing.T) {
	store := NewStore(nil)
	store.ReplaceTeachers([]models.Teacher{{ID: 1, Name: "Maria"}})

	assert.Equal(t, "Maria", store.TeacherName(1))
	assert.Equal(t, "ID: 99", store.TeacherName(99))
}

func TestSnapshotsPreserveLoadOrder(t *testing.T) {
	store := NewStore(nil)
	store.ReplaceStudents([]models.Student{{ID: 3}, {ID: 1}, {ID: 2}})

	students := store.Students()
	require.Len(t, students, 3)
	assert.Equal(t, int64(3), students[0].ID)
	assert.Equal(t, int64(1), students[1].ID)
	assert.Equal(t, int64(2), students[2].ID)
}

func TestAccessorsReturnCopies(t *testing.T) {
	store := NewStore(nil)
	store.ReplaceStudents([]models.Student{{ID: 1, Name: "Ana"}})

	students := store.Students()
	students[0].Name = "mutated"

	assert.Equal(t, "Ana", store.Students()[0].Name)
}

func TestResetDropsEverySnapshot(t *testing.T) {
	store := NewStore(nil)
	store.ReplaceTeachers([]models.Teacher{{ID: 1}})
	store.ReplaceStudents([]models.Student{{ID: 1}})
	store.ReplaceCourses([]models.Course{{ID: 1}})
	store.ReplaceEnrollments([]models.Enrollment{{ID: 1}})

	store.Reset()

	assert.Empty(t, store.Teachers())
	assert.Empty(t, store.Students())
	assert.Empty(t, store.Courses())
	assert.Empty(t, store.Enrollments())
}
