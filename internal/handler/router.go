package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gerenciamento-cursos/painel/internal/middleware"
	"github.com/gerenciamento-cursos/painel/internal/models"
	"github.com/gerenciamento-cursos/painel/internal/session"
)

// Handlers bundles every page handler for route registration.
type Handlers struct {
	Auth       *AuthHandler
	Dashboard  *DashboardHandler
	Course     *CourseHandler
	Student    *StudentHandler
	User       *UserHandler
	Enrollment *EnrollmentHandler
	Sessions   *session.Manager
}

// Register mounts the panel routes. Everything under /painel requires a
// resolved session; the professores section additionally requires ADMIN.
func Register(r *gin.Engine, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/painel/dashboard")
	})

	r.GET(middleware.LoginPath, h.Auth.LoginPage)
	r.POST(middleware.LoginPath, h.Auth.Login)
	r.POST("/logout", h.Auth.Logout)

	panel := r.Group("/painel", middleware.Session(h.Sessions))
	{
		panel.GET("/dashboard", h.Dashboard.Show)

		panel.GET("/cursos", h.Course.List)
		panel.POST("/cursos", h.Course.Save)
		panel.POST("/cursos/:id/excluir", h.Course.Delete)

		alunos := panel.Group("/alunos", middleware.RequireRoles(models.RoleAdmin, models.RoleProfessor))
		{
			alunos.GET("", h.Student.List)
			alunos.POST("", h.Student.Save)
			alunos.POST("/:id/excluir", h.Student.Delete)
		}

		professores := panel.Group("/professores", middleware.RequireRoles(models.RoleAdmin))
		{
			professores.GET("", h.User.List)
			professores.POST("", h.User.Save)
			professores.POST("/:id/excluir", h.User.Delete)
		}

		panel.GET("/matriculas", h.Enrollment.List)
		panel.POST("/matriculas", h.Enrollment.Create)
		panel.POST("/matriculas/:id/progresso", h.Enrollment.Progress)
		panel.GET("/matriculas/:id/cancelar", h.Enrollment.ConfirmCancel)
		panel.POST("/matriculas/:id/cancelar", h.Enrollment.Cancel)
		panel.GET("/matriculas/:id/reativar", h.Enrollment.ConfirmReactivate)
		panel.POST("/matriculas/:id/reativar", h.Enrollment.Reactivate)
		panel.GET("/matriculas/exportar", h.Enrollment.Export)

		panel.GET("/opcoes/alunos", h.Enrollment.StudentOptions)
		panel.GET("/opcoes/cursos", h.Enrollment.CourseOptions)
	}
}
