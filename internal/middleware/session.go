package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gerenciamento-cursos/painel/internal/models"
	"github.com/gerenciamento-cursos/painel/internal/session"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
	"github.com/gerenciamento-cursos/painel/pkg/response"
)

// ContextIdentityKey is the gin context key storing the resolved identity.
const ContextIdentityKey = "currentIdentity"

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// Session resolves the authenticated identity before any panel page renders.
// An unresolved identity means an immediate redirect to the login boundary;
// no partial UI is shown.
func Session(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := mgr.Resolve(c.Request.Context())
		if err != nil {
			if wantsJSON(c) {
				response.Error(c, appErrors.ErrUnauthenticated)
			} else {
				c.Redirect(http.StatusFound, LoginPath)
			}
			c.Abort()
			return
		}
		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// RequireRoles blocks routes whose action the identity's role may not use.
// This mirrors the backend's authorization; the backend still has the final
// word on every forwarded request.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := Identity(c)
		if !session.HasPermission(identity, roles...) {
			if wantsJSON(c) {
				response.Error(c, appErrors.ErrForbidden)
			} else {
				c.HTML(http.StatusForbidden, "error.html", gin.H{
					"Title":   "Acesso negado",
					"Message": "Você não tem permissão para acessar esta seção.",
				})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// Identity returns the identity stored by the Session middleware, or nil.
func Identity(c *gin.Context) *models.Identity {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		strings.HasPrefix(c.Request.URL.Path, "/painel/opcoes")
}
