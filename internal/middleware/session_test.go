package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gerenciamento-cursos/painel/internal/models"
	"github.com/gerenciamento-cursos/painel/internal/session"
	appErrors "github.com/gerenciamento-cursos/painel/pkg/errors"
)

type fakeResolver struct {
	identity *models.Identity
	err      error
}

func (f *fakeResolver) Me(context.Context) (*models.Identity, error) {
	return f.identity, f.err
}

func newPanelRouter(resolver *fakeResolver) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	mgr := session.NewManager(resolver, nil)

	reached := false
	r := gin.New()
	panel := r.Group("/painel", Session(mgr))
	panel.GET("/dashboard", func(c *gin.Context) {
		reached = true
		c.String(http.StatusOK, "ok")
	})
	panel.GET("/opcoes/alunos", func(c *gin.Context) {
		reached = true
		c.String(http.StatusOK, "ok")
	})
	return r, &reached
}

func TestSessionRedirectsWhenUnresolved(t *testing.T) {
	r, reached := newPanelRouter(&fakeResolver{err: appErrors.ErrUnauthenticated})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/painel/dashboard", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.False(t, *reached)
}

func TestSessionAnswersJSONForOptionEndpoints(t *testing.T) {
	r, reached := newPanelRouter(&fakeResolver{err: appErrors.ErrUnauthenticated})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/painel/opcoes/alunos", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestSessionStoresIdentityAndProceeds(t *testing.T) {
	identity := &models.Identity{ID: 1, Role: models.RoleAdmin}
	r, reached := newPanelRouter(&fakeResolver{identity: identity})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/painel/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
}

func TestRequireRolesBlocksOtherRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mgr := session.NewManager(&fakeResolver{identity: &models.Identity{ID: 2, Role: models.RoleAluno}}, nil)

	r := gin.New()
	guarded := r.Group("/painel", Session(mgr), RequireRoles(models.RoleAdmin))
	guarded.GET("/professores", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/painel/professores", nil)
	req.Header.Set("Accept", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestIdentityAccessor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	assert.Nil(t, Identity(c))

	want := &models.Identity{ID: 3}
	c.Set(ContextIdentityKey, want)
	assert.Same(t, want, Identity(c))
}
