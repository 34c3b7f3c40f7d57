package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/gateway"
	"github.com/gerenciamento-cursos/painel/internal/models"
	"github.com/gerenciamento-cursos/painel/internal/picker"
	"github.com/gerenciamento-cursos/painel/internal/session"
	"github.com/gerenciamento-cursos/painel/internal/state"
	"github.com/gerenciamento-cursos/painel/internal/workflow"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
	"github.com/gerenciamento-cursos/painel/pkg/export"
	"github.com/gerenciamento-cursos/painel/pkg/response"
)

const enrollmentsPath = "/painel/matriculas"

// EnrollmentHandler renders the enrollments section and drives the
// enrollment workflow.
type EnrollmentHandler struct {
	gw             *gateway.Client
	store          *state.Store
	flow           *workflow.Service
	nav            session.NavPolicy
	exportsEnabled bool
	logger         *zap.Logger
}

// NewEnrollmentHandler constructs EnrollmentHandler.
func NewEnrollmentHandler(gw *gateway.Client, store *state.Store, flow *workflow.Service, nav session.NavPolicy, exportsEnabled bool, logger *zap.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentHandler{gw: gw, store: store, flow: flow, nav: nav, exportsEnabled: exportsEnabled, logger: logger}
}

// List renders the enrollment table, optionally filtered by student or
// course, together with the searchable pickers of the creation form.
func (h *EnrollmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{}

	filterKind := c.DefaultQuery("filtroTipo", "todas")
	filterID, _ := strconv.ParseInt(c.Query("filtroId"), 10, 64)

	var (
		enrollments []models.Enrollment
		err         error
	)
	switch {
	case filterKind == "aluno" && filterID > 0:
		enrollments, err = h.gw.ListEnrollmentsByStudent(ctx, filterID)
	case filterKind == "curso" && filterID > 0:
		enrollments, err = h.gw.ListEnrollmentsByCourse(ctx, filterID)
	default:
		enrollments, err = h.gw.ListEnrollments(ctx)
	}
	if err != nil {
		data["Notice"] = &Notice{Kind: noticeError, Message: errorNotice(err, "Erro ao carregar matrículas")}
		data["LoadFailed"] = true
		enrollments = h.store.Enrollments()
	} else {
		h.store.ReplaceEnrollments(enrollments)
	}

	// The pickers cross-reference the student and course snapshots; a failed
	// refresh leaves the previous options in place.
	if _, err := h.store.RefreshStudents(ctx, h.gw); err != nil {
		h.logger.Warn("student refresh for pickers failed", zap.Error(err))
	}
	if _, err := h.store.RefreshCourses(ctx, h.gw); err != nil {
		h.logger.Warn("course refresh for pickers failed", zap.Error(err))
	}

	identity := identityFromContext(c)
	data["Enrollments"] = enrollments
	data["StudentOptions"] = picker.StudentOptions(h.store.Students())
	data["CourseOptions"] = picker.CourseOptions(h.store.Courses())
	data["Students"] = h.store.Students()
	data["Courses"] = h.store.Courses()
	data["FilterKind"] = filterKind
	data["FilterID"] = filterID
	data["CanManage"] = session.Allowed(identity, session.ActionManageEnrollments)
	data["CanExport"] = h.exportsEnabled && session.Allowed(identity, session.ActionExportReports)
	renderPage(c, h.nav, "matriculas.html", session.SectionEnrollment, data)
}

// Create runs the enrollment creation workflow.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	studentID, _ := strconv.ParseInt(c.PostForm("alunoId"), 10, 64)
	courseID, _ := strconv.ParseInt(c.PostForm("cursoId"), 10, 64)

	req := workflow.EnrollRequest{StudentID: studentID, CourseID: courseID}
	if _, err := h.flow.Enroll(c.Request.Context(), req); err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao realizar matrícula"))
	} else {
		setNotice(c, noticeSuccess, "Matrícula realizada com sucesso!")
	}
	c.Redirect(http.StatusFound, enrollmentsPath)
}

// Progress sends the raw progress value through the workflow. The value is
// never clamped here; an out-of-range number comes back as the server's
// rejection message.
func (h *EnrollmentHandler) Progress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setNotice(c, noticeError, "Matrícula inválida")
		c.Redirect(http.StatusFound, enrollmentsPath)
		return
	}
	progress, err := strconv.ParseFloat(c.PostForm("progresso"), 64)
	if err != nil {
		setNotice(c, noticeError, "Progresso inválido")
		c.Redirect(http.StatusFound, enrollmentsPath)
		return
	}

	if _, err := h.flow.UpdateProgress(c.Request.Context(), id, progress); err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao atualizar progresso"))
	} else {
		setNotice(c, noticeSuccess, "Progresso atualizado com sucesso!")
	}
	c.Redirect(http.StatusFound, enrollmentsPath)
}

// ConfirmCancel renders the confirmation step before a cancellation.
func (h *EnrollmentHandler) ConfirmCancel(c *gin.Context) {
	h.renderConfirm(c, "cancelar", "Deseja realmente cancelar esta matrícula?")
}

// Cancel runs the cancellation workflow; the confirmation answer travels in
// the form.
func (h *EnrollmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setNotice(c, noticeError, "Matrícula inválida")
		c.Redirect(http.StatusFound, enrollmentsPath)
		return
	}

	err = h.flow.Cancel(c.Request.Context(), id, formConfirmer(c))
	switch {
	case appErrors.Is(err, appErrors.ErrNotConfirmed):
		// declined: nothing sent, nothing to report
	case err != nil:
		setNotice(c, noticeError, errorNotice(err, "Erro ao cancelar matrícula"))
	default:
		setNotice(c, noticeSuccess, "Matrícula cancelada com sucesso!")
	}
	c.Redirect(http.StatusFound, enrollmentsPath)
}

// ConfirmReactivate renders the confirmation step before a reactivation.
func (h *EnrollmentHandler) ConfirmReactivate(c *gin.Context) {
	h.renderConfirm(c, "reativar", "Deseja reativar esta matrícula?")
}

// Reactivate runs the reactivation workflow.
func (h *EnrollmentHandler) Reactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setNotice(c, noticeError, "Matrícula inválida")
		c.Redirect(http.StatusFound, enrollmentsPath)
		return
	}

	_, err = h.flow.Reactivate(c.Request.Context(), id, formConfirmer(c))
	switch {
	case appErrors.Is(err, appErrors.ErrNotConfirmed):
		// declined
	case err != nil:
		setNotice(c, noticeError, errorNotice(err, "Erro ao reativar matrícula"))
	default:
		setNotice(c, noticeSuccess, "Matrícula reativada com sucesso!")
	}
	c.Redirect(http.StatusFound, enrollmentsPath)
}

// StudentOptions serves the filtered student picker as JSON.
func (h *EnrollmentHandler) StudentOptions(c *gin.Context) {
	options := picker.StudentOptions(h.store.Students())
	filtered := picker.Filter(options, c.Query("q"))
	response.JSON(c, http.StatusOK, filtered)
}

// CourseOptions serves the filtered course picker as JSON; only enrollable
// courses ever appear.
func (h *EnrollmentHandler) CourseOptions(c *gin.Context) {
	options := picker.CourseOptions(h.store.Courses())
	filtered := picker.Filter(options, c.Query("q"))
	response.JSON(c, http.StatusOK, filtered)
}

// Export downloads the last loaded enrollment table as CSV or PDF.
func (h *EnrollmentHandler) Export(c *gin.Context) {
	if !h.exportsEnabled {
		response.Error(c, appErrors.ErrNotFound)
		return
	}
	if !session.Allowed(identityFromContext(c), session.ActionExportReports) {
		response.Error(c, appErrors.ErrForbidden)
		return
	}
	enrollments := h.store.Enrollments()
	table := enrollmentTable(enrollments)

	switch c.DefaultQuery("formato", "csv") {
	case "pdf":
		data, err := export.PDF(table)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="matriculas.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		data, err := export.CSV(table)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="matriculas.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	}
}

func (h *EnrollmentHandler) renderConfirm(c *gin.Context, action, prompt string) {
	id := c.Param("id")
	renderPage(c, h.nav, "confirm.html", session.SectionEnrollment, gin.H{
		"Prompt": prompt,
		"Action": fmt.Sprintf("%s/%s/%s", enrollmentsPath, id, action),
		"Back":   enrollmentsPath,
	})
}

// formConfirmer answers the workflow's confirmation gate from the submitted
// form, mirroring the browser confirm() dialog.
func formConfirmer(c *gin.Context) workflow.Confirmer {
	return workflow.ConfirmerFunc(func(string) bool {
		return c.PostForm("confirmado") == "sim"
	})
}

// enrollmentTable projects enrollments into exportable rows, falling back to
// raw ids when the backend omitted the denormalised names.
func enrollmentTable(enrollments []models.Enrollment) export.Table {
	rows := make([][]string, 0, len(enrollments))
	for _, e := range enrollments {
		student := e.StudentName
		if student == "" {
			student = fmt.Sprintf("ID: %d", e.StudentID)
		}
		course := e.CourseName
		if course == "" {
			course = fmt.Sprintf("ID: %d", e.CourseID)
		}
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			student,
			course,
			string(e.Status),
			fmt.Sprintf("%.0f%%", e.Progress),
			formatDate(e.EnrolledAt),
		})
	}
	return export.Table{
		Title:   "Matrículas",
		Columns: []string{"ID", "Aluno", "Curso", "Status", "Progresso", "Data"},
		Rows:    rows,
	}
}
