package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/gerenciamento-cursos/painel/internal/dashboard"
	"github.com/gerenciamento-cursos/painel/internal/gateway"
	"github.com/gerenciamento-cursos/painel/internal/handler"
	"github.com/gerenciamento-cursos/painel/internal/middleware"
	"github.com/gerenciamento-cursos/painel/internal/service"
	"github.com/gerenciamento-cursos/painel/internal/session"
	"github.com/gerenciamento-cursos/painel/internal/state"
	"github.com/gerenciamento-cursos/painel/internal/workflow"
	"github.com/gerenciamento-cursos/painel/pkg/config"
	"github.com/gerenciamento-cursos/painel/pkg/logger"
	reqidmiddleware "github.com/gerenciamento-cursos/painel/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()

	gw, err := gateway.New(cfg.API.BaseURL, cfg.API.Timeout, logr, metrics)
	if err != nil {
		logr.Sugar().Fatalw("failed to init gateway", "error", err)
	}

	store := state.NewStore(logr)
	sessions := session.NewManager(gw, logr)
	nav := session.DefaultNavPolicy()
	validate := validator.New()

	dash := dashboard.NewService(dashboard.Params{
		Courses:    gw,
		Students:   gw,
		Professors: gw,
		Available:  gw,
		Timeout:    cfg.Dashboard.LoadTimeout,
		Logger:     logr,
	})

	flow := workflow.NewService(gw, handler.NewStoreRefresher(gw, store), validate, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))

	r.SetFuncMap(handler.FuncMap())
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	handler.Register(r, handler.Handlers{
		Auth:       handler.NewAuthHandler(gw, sessions, store, logr),
		Dashboard:  handler.NewDashboardHandler(dash, nav, logr),
		Course:     handler.NewCourseHandler(gw, store, nav, validate, logr),
		Student:    handler.NewStudentHandler(gw, store, nav, validate, logr),
		User:       handler.NewUserHandler(gw, store, nav, validate, logr),
		Enrollment: handler.NewEnrollmentHandler(gw, store, flow, nav, cfg.Exports.Enabled, logr),
		Sessions:   sessions,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("panel starting", "addr", addr, "env", cfg.Env, "api", cfg.API.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("panel failed", "error", err)
	}
}
