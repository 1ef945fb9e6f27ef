package server

import (
	"fmt"
	"net/http"

	_ "AlzheimerRiskPredictor/docs"
	"AlzheimerRiskPredictor/internal/handler"
	"AlzheimerRiskPredictor/internal/middleware"
	"AlzheimerRiskPredictor/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) RegisterRoutes() (http.Handler, error) {
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("RegisterRoutes(): failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	if len(s.cfg.Server.AllowOrigins) == 0 || s.cfg.Server.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.cfg.Server.AllowOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", middleware.AccessCodeHeader, middleware.RequestIDHeader)
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	router.SetHTMLTemplate(templates)

	opts := []handler.Option{
		handler.WithAccessCodeField(s.cfg.Server.AccessCode != ""),
		handler.WithAllowedOrigins(s.cfg.Server.AllowOrigins),
	}
	// a nil *storage.Store must not reach the handler as a non-nil interface
	if s.store != nil {
		opts = append(opts, handler.WithRecorder(s.store))
	}
	if s.narrator != nil {
		opts = append(opts, handler.WithNarrator(s.narrator))
	}
	h := handler.New(s.assessor, s.tokens, opts...)

	gate := middleware.AccessCodeMiddleware(s.cfg.Server.AccessCode)
	limiter := middleware.SubmitRateLimit(s.cfg.RateLimit.PerMinute, s.cfg.RateLimit.Burst)

	router.GET("/", h.ShowForm)
	router.POST("/assess", gate, limiter, h.SubmitForm)

	api := router.Group("/api", gate)
	{
		api.POST("/assessments", limiter, h.CreateAssessment)
		if h.NarrationEnabled() {
			api.POST("/narration", limiter, h.Narrate)
		}
	}
	router.GET("/ws/assessment", gate, limiter, h.HandleAssessmentSocket)

	if s.cfg.AdminEnabled() && s.store != nil {
		admin := handler.NewAdminHandler(s.cfg.Admin.Username, s.cfg.Admin.PasswordHash, s.tokens, s.store)
		router.POST("/admin/login", admin.Login)
		protected := router.Group("/admin", middleware.AuthMiddleware(s.tokens))
		{
			protected.GET("/history", admin.GetHistory)
			protected.GET("/history/summary", admin.GetSummary)
			protected.GET("/history/:id", admin.GetRecord)
		}
	}

	var db handler.DatabaseHealth
	if s.store != nil {
		db = s.store
	}
	router.GET("/health", handler.HealthHandler(db))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}
