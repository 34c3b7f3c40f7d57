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

// UserHandler renders and mutates the teacher-management section. The section
// itself is admin-gated by the route table; this handler trusts the gate.
type UserHandler struct {
	gw       *gateway.Client
	store    *state.Store
	nav      session.NavPolicy
	validate *validator.Validate
	logger   *zap.Logger
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(gw *gateway.Client, store *state.Store, nav session.NavPolicy, validate *validator.Validate, logger *zap.Logger) *UserHandler {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{gw: gw, store: store, nav: nav, validate: validate, logger: logger}
}

// List refreshes the teacher snapshot and renders the table.
func (h *UserHandler) List(c *gin.Context) {
	data := gin.H{}
	teachers, err := h.store.RefreshTeachers(c.Request.Context(), h.gw)
	if err != nil {
		data["Notice"] = &Notice{Kind: noticeError, Message: errorNotice(err, "Erro ao carregar professores")}
		data["LoadFailed"] = true
	}

	identity := identityFromContext(c)
	data["Teachers"] = teachers
	data["CanManage"] = session.Allowed(identity, session.ActionManageTeachers)
	renderPage(c, h.nav, "professores.html", session.SectionTeachers, data)
}

// Save creates or updates a teacher account.
func (h *UserHandler) Save(c *gin.Context) {
	payload := models.UserPayload{
		Name:     c.PostForm("nome"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("senha"),
		Role:     models.RoleProfessor,
	}
	if err := h.validate.Struct(payload); err != nil {
		setNotice(c, noticeError, "Preencha todos os campos obrigatórios")
		c.Redirect(http.StatusFound, "/painel/professores")
		return
	}

	ctx := c.Request.Context()
	var err error
	if rawID := c.PostForm("id"); rawID != "" {
		var id int64
		if id, err = strconv.ParseInt(rawID, 10, 64); err == nil {
			_, err = h.gw.UpdateUser(ctx, id, payload)
		}
	} else {
		_, err = h.gw.CreateUser(ctx, payload)
	}

	if err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao salvar professor"))
	} else {
		setNotice(c, noticeSuccess, "Professor salvo com sucesso!")
	}
	c.Redirect(http.StatusFound, "/painel/professores")
}

// Delete removes a teacher account.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		setNotice(c, noticeError, "Professor inválido")
		c.Redirect(http.StatusFound, "/painel/professores")
		return
	}
	if err := h.gw.DeleteUser(c.Request.Context(), id); err != nil {
		setNotice(c, noticeError, errorNotice(err, "Erro ao excluir professor"))
	} else {
		setNotice(c, noticeSuccess, "Professor excluído com sucesso!")
	}
	c.Redirect(http.StatusFound, "/painel/professores")
}
