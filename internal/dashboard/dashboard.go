// Package dashboard recomputes the panel's counters from fresh fetches on
// every view; nothing here is cached across views.
package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

type courseLister interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type studentLister interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
}

type professorLister interface {
	ListProfessors(ctx context.Context) ([]models.Teacher, error)
}

type availableLister interface {
	AvailableCourses(ctx context.Context) ([]models.Course, error)
}

// Summary holds the derived dashboard counters.
type Summary struct {
	TotalCourses     int `json:"totalCursos"`
	TotalStudents    int `json:"totalAlunos"`
	TotalTeachers    int `json:"totalProfessores"`
	CoursesWithSeats int `json:"cursosComVagas"`
	TotalEnrollments int `json:"totalMatriculas"`
}

// Service composes the dashboard from independent fetches.
type Service struct {
	courses    courseLister
	students   studentLister
	professors professorLister
	available  availableLister
	timeout    time.Duration
	logger     *zap.Logger
}

// Params groups constructor dependencies.
type Params struct {
	Courses    courseLister
	Students   studentLister
	Professors professorLister
	Available  availableLister
	Timeout    time.Duration
	Logger     *zap.Logger
}

// NewService constructs a dashboard Service.
func NewService(params Params) *Service {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		courses:    params.Courses,
		students:   params.Students,
		professors: params.Professors,
		available:  params.Available,
		timeout:    params.Timeout,
		logger:     logger,
	}
}

// Load issues the four fetches concurrently and joins on all of them before
// composing the summary. Any fetch error fails the whole load; the view layer
// keeps showing its previous counters with a transient notice.
func (s *Service) Load(ctx context.Context) (*Summary, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		wg         sync.WaitGroup
		courses    []models.Course
		students   []models.Student
		professors []models.Teacher
		available  []models.Course
		errs       [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		courses, errs[0] = s.courses.ListCourses(ctx)
	}()
	go func() {
		defer wg.Done()
		students, errs[1] = s.students.ListStudents(ctx)
	}()
	go func() {
		defer wg.Done()
		professors, errs[2] = s.professors.ListProfessors(ctx)
	}()
	go func() {
		defer wg.Done()
		available, errs[3] = s.available.AvailableCourses(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Warn("dashboard load failed", zap.Error(err))
			return nil, err
		}
	}

	totalEnrollments := 0
	for _, course := range courses {
		totalEnrollments += course.TotalEnrollments
	}

	return &Summary{
		TotalCourses:     len(courses),
		TotalStudents:    len(students),
		TotalTeachers:    len(professors),
		CoursesWithSeats: len(available),
		TotalEnrollments: totalEnrollments,
	}, nil
}
