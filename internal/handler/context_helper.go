package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gerenciamento-cursos/painel/internal/middleware"
	"github.com/gerenciamento-cursos/painel/internal/models"
)

func identityFromContext(c *gin.Context) *models.Identity {
	return middleware.Identity(c)
}
