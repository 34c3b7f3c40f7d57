package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerenciamento-cursos/painel/internal/models"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

type fakeCourseLister struct {
	courses []models.Course
	err     error
}

func (f *fakeCourseLister) ListCourses(context.Context) ([]models.Course, error) {
	return f.courses, f.err
}

type fakeStudentLister struct {
	students []models.Student
	err      error
}

func (f *fakeStudentLister) ListStudents(context.Context) ([]models.Student, error) {
	return f.students, f.err
}

type fakeProfessorLister struct {
	professors []models.Teacher
	err        error
}

func (f *fakeProfessorLister) ListProfessors(context.Context) ([]models.Teacher, error) {
	return f.professors, f.err
}

type fakeAvailableLister struct {
	available []models.Course
	err       error
}

func (f *fakeAvailableLister) AvailableCourses(context.Context) ([]models.Course, error) {
	return f.available, f.err
}

func TestLoadComposesCounters(t *testing.T) {
	svc := NewService(Params{
		Courses: &fakeCourseLister{courses: []models.Course{
			{ID: 1, TotalEnrollments: 12},
			{ID: 2, TotalEnrollments: 8},
			{ID: 3, TotalEnrollments: 0},
		}},
		Students:   &fakeStudentLister{students: []models.Student{{ID: 1}, {ID: 2}}},
		Professors: &fakeProfessorLister{professors: []models.Teacher{{ID: 1}}},
		Available:  &fakeAvailableLister{available: []models.Course{{ID: 1}, {ID: 3}}},
	})

	summary, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalCourses)
	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.TotalTeachers)
	assert.Equal(t, 2, summary.CoursesWithSeats)
	assert.Equal(t, 20, summary.TotalEnrollments)
}

func TestLoadEmptyBackend(t *testing.T) {
	svc := NewService(Params{
		Courses:    &fakeCourseLister{},
		Students:   &fakeStudentLister{},
		Professors: &fakeProfessorLister{},
		Available:  &fakeAvailableLister{},
	})

	summary, err := svc.Load(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.TotalCourses)
	assert.Zero(t, summary.TotalEnrollments)
}

func TestLoadAnyFetchErrorFailsTheLoad(t *testing.T) {
	svc := NewService(Params{
		Courses:    &fakeCourseLister{courses: []models.Course{{ID: 1}}},
		Students:   &fakeStudentLister{err: appErrors.ErrLoadFailed},
		Professors: &fakeProfessorLister{},
		Available:  &fakeAvailableLister{},
	})

	summary, err := svc.Load(context.Background())

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.True(t, appErrors.Is(err, appErrors.ErrLoadFailed))
}
