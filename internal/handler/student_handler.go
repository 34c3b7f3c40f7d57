package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/gateway"
	"github.com/gerenciamento-cursos/painel/internal/models"
	"github.com/gerenciamento-cursos/painel/internal/session"
	"github.com/gerenciamento-cursos/painel/internal/state"
)

// StudentHandler renders and mutates the students section.
type StudentHandler struct {
	gw       *gateway.Client
	store    *state.Store
	nav      session.NavPolicy
	validate *validator.Validate
	logger   *zap.Logger
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(gw *gateway.Client, store *state.Store, nav session.NavPolicy, validate *validator.Validate, logger *zap.Logger) *StudentHandler {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentHandler{gw: gw, store: store, nav: nav, validate: validate, logger: logger}
}

// List refreshes the student snapshot and renders the table.
func (h *StudentHandler) List(c *gin.Context) {
	data := gin.H{}
	students, err := h.store.RefreshStudents(c.Request.Context(), h.gw)
	if err != nil {
		data["Notice"] = &Notice{Kind: noticeError, Message: errorNotice(err, "Erro ao carregar alunos")}
		data["LoadFailed"] = true
	}

	identity := identityFromContext(c)
	data["Students"] = students
	data["CanManage"] = session.Allowed(identity, session.ActionManageStudents)
	renderPage(c, h.nav, "alunos.html", session.SectionStudents, data)
}

// Save creates or updates a student depending on the hidden id field. The CPF
// is stripped to digits before it goes upstream, as the panel form accepts
// the punctuated format.
func (h *StudentHandler) Save(c *gin.Context) {
	payload := models.StudentPayload{
		Name:  c.PostForm("nome"),
		Email: c.PostForm("email"),
		CPF:   digitsOnly(c.PostForm("cpf")),
		Phone: c.PostForm("telefone"),
	}
	if err := h.validate.Struct(payload); err != nil {
		setNotice(c, noticeError, "Preencha todos os campos obrigatórios")
		c.Redirect(http.StatusFound, "/painel/alunos")
		return
	}

	ctx := c.Request.Context()
	var err error
	if rawID := c.PostForm("id"); rawID != "" {
		var id int64
		if id, err = strconv.ParseInt(rawID, 10, 64); err == nil {
			_, err = h.gw.UpdateStudent(ctx, id, payload)
		}
	} else {
		_, err = h.gw.CreateStudent(ctx, payload)
	}

	if err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao salvar aluno"))
	} else {
		setNotice(c, noticeSuccess, "Aluno salvo com sucesso!")
	}
	c.Redirect(http.StatusFound, "/painel/alunos")
}

// Delete removes a student.
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setNotice(c, noticeError, "Aluno inválido")
		c.Redirect(http.StatusFound, "/painel/alunos")
		return
	}
	if err := h.gw.DeleteStudent(c.Request.Context(), id); err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao excluir aluno"))
	} else {
		setNotice(c, noticeSuccess, "Aluno excluído com sucesso!")
	}
	c.Redirect(http.StatusFound, "/painel/alunos")
}

func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
