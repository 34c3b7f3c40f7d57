package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gerenciamento-cursos/painel/internal/models"
	"github.com/gerenciamento-cursos/painel/internal/session"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

// renderPage renders a panel page with the shared chrome: identity, visible
// navigation, active section and the pending notice.
func renderPage(c *gin.Context, nav session.NavPolicy, name, section string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	identity := identityFromContext(c)
	data["Identity"] = identity
	data["Nav"] = nav.Visible(identity)
	data["Active"] = section
	if _, ok := data["Notice"]; !ok {
		data["Notice"] = popNotice(c)
	}
	c.HTML(http.StatusOK, name, data)
}

// FuncMap exposes the display helpers used by the templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatCPF":   formatCPF,
		"formatDate":  formatDate,
		"statusBadge": statusBadge,
		"activeBadge": activeBadge,
	}
}

// formatCPF renders a raw 11-digit CPF as 000.000.000-00, leaving anything
// else untouched.
func formatCPF(cpf string) string {
	if len(cpf) != 11 {
		if cpf == "" {
			return "-"
		}
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[0:3], cpf[3:6], cpf[6:9], cpf[9:11])
}

// formatDate renders the backend's timestamp as dd/mm/yyyy.
func formatDate(raw string) string {
	if raw == "" {
		return "-"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return raw
}

func statusBadge(status models.EnrollmentStatus) string {
	switch status {
	case models.EnrollmentStatusActive:
		return "badge-success"
	case models.EnrollmentStatusCompleted:
		return "badge-info"
	case models.EnrollmentStatusCanceled:
		return "badge-danger"
	case models.EnrollmentStatusLocked:
		return "badge-warning"
	}
	return "badge-info"
}

func activeBadge(active bool) string {
	if active {
		return "badge-success"
	}
	return "badge-danger"
}

// errorNotice extracts the human-facing message from any error, falling back
// to a generic one when the server supplied none.
func errorNotice(err error, fallback string) string {
	if appErr := appErrors.FromError(err); appErr != nil && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
