package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gerenciamento-cursos/painel/internal/dashboard"
	"github.com/gerenciamento-cursos/painel/internal/session"
)

// DashboardHandler renders the counters section.
type DashboardHandler struct {
	dash   *dashboard.Service
	nav    session.NavPolicy
	logger *zap.Logger
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dash *dashboard.Service, nav session.NavPolicy, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{dash: dash, nav: nav, logger: logger}
}

// Show recomputes the dashboard from fresh fetches; a failed load renders the
// section with a transient error instead of numbers.
func (h *DashboardHandler) Show(c *gin.Context) {
	data := gin.H{}
	summary, err := h.dash.Load(c.Request.Context())
	if err != nil {
		data["Notice"] = &Notice{Kind: noticeError, Message: errorNotice(err, "Erro ao carregar dashboard")}
	} else {
		data["Summary"] = summary
	}
	renderPage(c, h.nav, "dashboard.html", session.SectionDashboard, data)
}
