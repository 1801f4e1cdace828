package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joshghal/verdex-webapp-sub002/internal/auth"
	"github.com/joshghal/verdex-webapp-sub002/internal/services"
	"github.com/joshghal/verdex-webapp-sub002/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config) error {
	svcs := services.NewServices(db, cfg)

	authHandler := NewAuthHandler(svcs.Auth)
	assessmentHandler := NewAssessmentHandler(svcs.Assessment)
	referenceHandler := NewReferenceHandler()
	documentHandler := NewDocumentHandler(cfg)

	r.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "unreachable"
		}
		c.JSON(status, gin.H{
			"status":    "ok",
			"database":  dbStatus,
			"timestamp": time.Now(),
		})
	})

	// Public routes
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/refresh", authHandler.RefreshToken)
		public.POST("/auth/logout", authHandler.Logout)

		// Reference catalogues back the assessment form; no auth needed
		public.GET("/reference/countries", referenceHandler.GetCountries)
		public.GET("/reference/countries/:code", referenceHandler.GetCountry)
		public.GET("/reference/sectors", referenceHandler.GetSectors)
	}

	// Protected routes
	protected := r.Group("/api/v1")
	protected.Use(auth.JWTMiddleware(cfg.JWTSecret))
	protected.Use(auth.CSRFMiddleware())
	{
		protected.POST("/assessments", assessmentHandler.RunAssessment)
		protected.GET("/assessments", assessmentHandler.ListAssessments)
		protected.GET("/assessments/:id", assessmentHandler.GetAssessment)
		protected.DELETE("/assessments/:id", assessmentHandler.DeleteAssessment)

		protected.POST("/documents/extract", documentHandler.ExtractDocument)
	}

	return nil
}
