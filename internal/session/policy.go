package session

import "github.com/gerenciamento-cursos/painel/internal/models"

// Navigation section and action names used by the visibility policy and the
// route table.
const (
	SectionDashboard  = "dashboard"
	SectionCourses    = "cursos"
	SectionStudents   = "alunos"
	SectionTeachers   = "professores"
	SectionEnrollment = "matriculas"

	ActionManageCourses     = "manage-courses"
	ActionManageStudents    = "manage-students"
	ActionManageTeachers    = "manage-teachers"
	ActionManageEnrollments = "manage-enrollments"
	ActionExportReports     = "export-reports"
)

// NavSection names a navigation entry and the roles allowed to see it.
type NavSection struct {
	Name  string
	Title string
	Roles []models.Role
}

// NavPolicy is the declarative visibility policy, ordered as rendered.
type NavPolicy []NavSection

// DefaultNavPolicy mirrors the backend's route authorization: teacher
// management is admin-only, student management excludes students.
func DefaultNavPolicy() NavPolicy {
	all := []models.Role{models.RoleAdmin, models.RoleProfessor, models.RoleAluno}
	staff := []models.Role{models.RoleAdmin, models.RoleProfessor}
	return NavPolicy{
		{Name: SectionDashboard, Title: "Dashboard", Roles: all},
		{Name: SectionCourses, Title: "Cursos", Roles: all},
		{Name: SectionStudents, Title: "Alunos", Roles: staff},
		{Name: SectionTeachers, Title: "Professores", Roles: []models.Role{models.RoleAdmin}},
		{Name: SectionEnrollment, Title: "Matrículas", Roles: all},
	}
}

// CanSee reports whether the role may see the named section. Unknown sections
// are never visible, which keeps the check total.
func (p NavPolicy) CanSee(section string, identity *models.Identity) bool {
	for _, s := range p {
		if s.Name == section {
			return HasPermission(identity, s.Roles...)
		}
	}
	return false
}

// Visible returns the sections the identity may see, in policy order.
func (p NavPolicy) Visible(identity *models.Identity) []NavSection {
	visible := make([]NavSection, 0, len(p))
	for _, s := range p {
		if HasPermission(identity, s.Roles...) {
			visible = append(visible, s)
		}
	}
	return visible
}

// actionRoles maps every mutation control to its allow-list. Per-row edit and
// delete buttons share the section's manage action.
var actionRoles = map[string][]models.Role{
	ActionManageCourses:     {models.RoleAdmin, models.RoleProfessor},
	ActionManageStudents:    {models.RoleAdmin, models.RoleProfessor},
	ActionManageTeachers:    {models.RoleAdmin},
	ActionManageEnrollments: {models.RoleAdmin, models.RoleProfessor},
	ActionExportReports:     {models.RoleAdmin, models.RoleProfessor},
}

// Allowed reports whether the identity may use the named action control.
func Allowed(identity *models.Identity, action string) bool {
	roles, ok := actionRoles[action]
	if !ok {
		return false
	}
	return HasPermission(identity, roles...)
}

// ActionRoles exposes the allow-list for an action; used by route guards.
func ActionRoles(action string) []models.Role {
	return actionRoles[action]
}
