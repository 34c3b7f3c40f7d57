// Package picker builds and filters the selectable option lists backing the
// student and course dropdowns of the enrollment form.
package picker

import (
	"fmt"
	"strings"

	"github.com/gerenciamento-cursos/painel/internal/models"
)

// StudentOptions projects the student snapshot into selectable options. The
// search key is the lowercase concatenation of name, email and id.
func StudentOptions(students []models.Student) []models.SelectOption {
	options := make([]models.SelectOption, 0, len(students))
	for _, s := range students {
		options = append(options, models.SelectOption{
			Value:      s.ID,
			Text:       fmt.Sprintf("%s - %s", s.Name, s.Email),
			SearchText: strings.ToLower(fmt.Sprintf("%s %s %d", s.Name, s.Email, s.ID)),
		})
	}
	return options
}

// CourseOptions projects the course snapshot into selectable options,
// restricted to eligible enrollment targets (active with open seats). The
// search key is the lowercase concatenation of name and id.
func CourseOptions(courses []models.Course) []models.SelectOption {
	options := make([]models.SelectOption, 0, len(courses))
	for _, c := range courses {
		if !c.Enrollable() {
			continue
		}
		options = append(options, models.SelectOption{
			Value:      c.ID,
			Text:       fmt.Sprintf("%s (%d vagas)", c.Name, c.SeatsAvailable),
			SearchText: strings.ToLower(fmt.Sprintf("%s %d", c.Name, c.ID)),
		})
	}
	return options
}

// Filter returns the options whose search key contains the query as a
// case-insensitive substring, preserving source order. An empty query returns
// the full set. No tokenization, no ranking.
func Filter(options []models.SelectOption, query string) []models.SelectOption {
	query = strings.ToLower(query)
	if query == "" {
		return append([]models.SelectOption(nil), options...)
	}
	filtered := make([]models.SelectOption, 0, len(options))
	for _, opt := range options {
		if strings.Contains(opt.SearchText, query) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}
