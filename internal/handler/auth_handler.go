package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/gateway"
	"github.com/gerenciamento-cursos/painel/internal/session"
	"github.com/gerenciamento-cursos/painel/internal/state"
)

// AuthHandler owns the login boundary.
type AuthHandler struct {
	gw       *gateway.Client
	sessions *session.Manager
	store    *state.Store
	logger   *zap.Logger
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(gw *gateway.Client, sessions *session.Manager, store *state.Store, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{gw: gw, sessions: sessions, store: store, logger: logger}
}

// LoginPage renders the login form, echoing the error/logout query flags the
// redirects carry.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	data := gin.H{}
	if _, ok := c.GetQuery("error"); ok {
		data["Error"] = "Email ou senha incorretos. Tente novamente."
	}
	if _, ok := c.GetQuery("logout"); ok {
		data["Info"] = "Logout realizado com sucesso!"
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login forwards the credentials to the backend. Success redirects into the
// panel; failure redirects back to the login page with an error flag.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("senha")

	identity, err := h.gw.Login(c.Request.Context(), email, password)
	if err != nil {
		h.logger.Info("login rejected", zap.String("email", email))
		c.Redirect(http.StatusFound, "/login?error=true")
		return
	}

	h.sessions.Set(identity)
	h.logger.Info("login accepted", zap.Int64("user_id", identity.ID), zap.String("role", string(identity.Role)))
	c.Redirect(http.StatusFound, "/painel/dashboard")
}

// Logout clears the backend session and every local snapshot, then sends the
// browser to the login page regardless of the backend's answer.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.gw.Logout(c.Request.Context())
	h.sessions.Clear()
	h.store.Reset()
	c.Redirect(http.StatusFound, "/login?logout=true")
}
