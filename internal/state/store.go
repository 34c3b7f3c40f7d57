// Package state holds the panel's in-memory read replicas of backend data.
// Snapshots are rebuilt in full on every list load and never patched
// incrementally; the backend remains the single source of truth.
package state

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

type teacherLister interface {
	ListProfessors(ctx context.Context) ([]models.Teacher, error)
}

type studentLister interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
}

type courseLister interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type enrollmentLister interface {
	ListEnrollments(ctx context.Context) ([]models.Enrollment, error)
}

// Store keeps the latest full snapshot per entity. There is no cross-snapshot
// consistency guarantee: a course may reference a professor the teacher
// snapshot does not hold yet, and lookups fall back to the raw id.
type Store struct {
	mu sync.RWMutex

	teachers    map[int64]models.Teacher
	teacherList []models.Teacher

	students    map[int64]models.Student
	studentList []models.Student

	courses    map[int64]models.Course
	courseList []models.Course

	enrollmentList []models.Enrollment

	logger *zap.Logger
}

// NewStore builds an empty Store.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		teachers: make(map[int64]models.Teacher),
		students: make(map[int64]models.Student),
		courses:  make(map[int64]models.Course),
		logger:   logger,
	}
}

// ReplaceTeachers swaps the teacher snapshot wholesale.
func (s *Store) ReplaceTeachers(list []models.Teacher) {
	byID := make(map[int64]models.Teacher, len(list))
	for _, t := range list {
		byID[t.ID] = t
	}
	s.mu.Lock()
	s.teachers = byID
	s.teacherList = append([]models.Teacher(nil), list...)
	s.mu.Unlock()
}

// ReplaceStudents swaps the student snapshot wholesale.
func (s *Store) ReplaceStudents(list []models.Student) {
	byID := make(map[int64]models.Student, len(list))
	for _, st := range list {
		byID[st.ID] = st
	}
	s.mu.Lock()
	s.students = byID
	s.studentList = append([]models.Student(nil), list...)
	s.mu.Unlock()
}

// ReplaceCourses swaps the course snapshot wholesale.
func (s *Store) ReplaceCourses(list []models.Course) {
	byID := make(map[int64]models.Course, len(list))
	for _, c := range list {
		byID[c.ID] = c
	}
	s.mu.Lock()
	s.courses = byID
	s.courseList = append([]models.Course(nil), list...)
	s.mu.Unlock()
}

// ReplaceEnrollments swaps the last loaded enrollment list.
func (s *Store) ReplaceEnrollments(list []models.Enrollment) {
	s.mu.Lock()
	s.enrollmentList = append([]models.Enrollment(nil), list...)
	s.mu.Unlock()
}

// Teachers returns the teacher snapshot in load order.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Teacher(nil), s.teacherList...)
}

// Students returns the student snapshot in load order.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Student(nil), s.studentList...)
}

// Courses returns the course snapshot in load order.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Course(nil), s.courseList...)
}

// Enrollments returns the last loaded enrollment list.
func (s *Store) Enrollments() []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Enrollment(nil), s.enrollmentList...)
}

// Teacher looks a teacher up by id.
func (s *Store) Teacher(id int64) (models.Teacher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teachers[id]
	return t, ok
}

// Student looks a student up by id.
func (s *Store) Student(id int64) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[id]
	return st, ok
}

// Course looks a course up by id.
func (s *Store) Course(id int64) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.courses[id]
	return c, ok
}

// TeacherName resolves a professor id to a display name, falling back to the
// raw id when the snapshot does not hold the teacher.
func (s *Store) TeacherName(id int64) string {
	if t, ok := s.Teacher(id); ok {
		return t.Name
	}
	return fmt.Sprintf("ID: %d", id)
}

// RefreshTeachers rebuilds the teacher snapshot from the backend. On failure
// the previous snapshot is kept (stale-but-available) and the error returned
// for the notice layer.
func (s *Store) RefreshTeachers(ctx context.Context, src teacherLister) ([]models.Teacher, error) {
	list, err := src.ListProfessors(ctx)
	if err != nil {
		s.logger.Warn("teacher refresh failed, keeping previous snapshot", zap.Error(err))
		return s.Teachers(), err
	}
	s.ReplaceTeachers(list)
	return list, nil
}

// RefreshStudents rebuilds the student snapshot from the backend.
func (s *Store) RefreshStudents(ctx context.Context, src studentLister) ([]models.Student, error) {
	list, err := src.ListStudents(ctx)
	if err != nil {
		s.logger.Warn("student refresh failed, keeping previous snapshot", zap.Error(err))
		return s.Students(), err
	}
	s.ReplaceStudents(list)
	return list, nil
}

// RefreshCourses rebuilds the course snapshot from the backend.
func (s *Store) RefreshCourses(ctx context.Context, src courseLister) ([]models.Course, error) {
	list, err := src.ListCourses(ctx)
	if err != nil {
		s.logger.Warn("course refresh failed, keeping previous snapshot", zap.Error(err))
		return s.Courses(), err
	}
	s.ReplaceCourses(list)
	return list, nil
}

// RefreshEnrollments rebuilds the enrollment list from the backend.
func (s *Store) RefreshEnrollments(ctx context.Context, src enrollmentLister) ([]models.Enrollment, error) {
	list, err := src.ListEnrollments(ctx)
	if err != nil {
		s.logger.Warn("enrollment refresh failed, keeping previous snapshot", zap.Error(err))
		return s.Enrollments(), err
	}
	s.ReplaceEnrollments(list)
	return list, nil
}

// Reset drops every snapshot; used on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	s.teachers = make(map[int64]models.Teacher)
	s.teacherList = nil
	s.students = make(map[int64]models.Student)
	s.studentList = nil
	s.courses = make(map[int64]models.Course)
	s.courseList = nil
	s.enrollmentList = nil
	s.mu.Unlock()
}
