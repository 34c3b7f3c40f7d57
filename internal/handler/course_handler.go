package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/gateway"
	"github.com/gerenciamento-cursos/painel/internal/models"
	"github.com/gerenciamento-cursos/painel/internal/session"
	"github.com/gerenciamento-cursos/painel/internal/state"
)

// CourseHandler renders and mutates the courses section.
type CourseHandler struct {
	gw       *gateway.Client
	store    *state.Store
	nav      session.NavPolicy
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(gw *gateway.Client, store *state.Store, nav session.NavPolicy, validate *validator.Validate, logger *zap.Logger) *CourseHandler {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseHandler{gw: gw, store: store, nav: nav, validate: validate, logger: logger}
}

// List refreshes the course and teacher snapshots and renders the table. A
// failed refresh keeps the previous snapshot and shows a transient error.
func (h *CourseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{}

	courses, err := h.store.RefreshCourses(ctx, h.gw)
	if err != nil {
		data["Notice"] = &Notice{Kind: noticeError, Message: errorNotice(err, "Erro ao carregar cursos")}
		data["LoadFailed"] = true
	}
	// Teacher names are best-effort; a missing snapshot entry falls back to
	// the raw professor id.
	if _, err := h.store.RefreshTeachers(ctx, h.gw); err != nil {
		h.logger.Warn("teacher refresh for course table failed", zap.Error(err))
	}

	rows := make([]gin.H, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, gin.H{
			"Course":        course,
			"ProfessorName": h.store.TeacherName(course.ProfessorID),
		})
	}

	identity := identityFromContext(c)
	data["Rows"] = rows
	data["Teachers"] = h.store.Teachers()
	data["CanManage"] = session.Allowed(identity, session.ActionManageCourses)
	renderPage(c, h.nav, "cursos.html", session.SectionCourses, data)
}

// Save creates or updates a course depending on the hidden id field.
func (h *CourseHandler) Save(c *gin.Context) {
	workload, _ := strconv.Atoi(c.PostForm("cargaHoraria"))
	seats, _ := strconv.Atoi(c.PostForm("vagas"))
	professorID, _ := strconv.ParseInt(c.PostForm("professorId"), 10, 64)

	payload := models.CoursePayload{
		Name:        c.PostForm("nome"),
		Description: c.PostForm("descricao"),
		Workload:    workload,
		Seats:       seats,
		ProfessorID: professorID,
	}
	if err := h.validate.Struct(payload); err != nil {
		setNotice(c, noticeError, "Preencha todos os campos obrigatórios")
		c.Redirect(http.StatusFound, "/painel/cursos")
		return
	}

	ctx := c.Request.Context()
	var err error
	if rawID := c.PostForm("id"); rawID != "" {
		var id int64
		if id, err = strconv.ParseInt(rawID, 10, 64); err == nil {
			_, err = h.gw.UpdateCourse(ctx, id, payload)
		}
	} else {
		_, err = h.gw.CreateCourse(ctx, payload)
	}

	if err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao salvar curso"))
	} else {
		setNotice(c, noticeSuccess, "Curso salvo com sucesso!")
	}
	c.Redirect(http.StatusFound, "/painel/cursos")
}

// Delete removes a course after the form-level confirmation.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setNotice(c, noticeError, "Curso inválido")
		c.Redirect(http.StatusFound, "/painel/cursos")
		return
	}
	if err := h.gw.DeleteCourse(c.Request.Context(), id); err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao excluir curso"))
	} else {
		setNotice(c, noticeSuccess, "Curso excluído com sucesso!")
	}
	c.Redirect(http.StatusFound, "/painel/cursos")
}
