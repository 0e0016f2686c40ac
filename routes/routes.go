package routes

import (
	"time"

	"mindwell/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSpecialistRoutes registers specialist profile and availability endpoints.
func RegisterSpecialistRoutes(r *gin.Engine, sh *handlers.SpecialistHandler) {
	api := r.Group("/api/specialists")
	{
		api.GET("", sh.ListSpecialistsHandler)
		api.POST("/register", sh.RegisterSpecialistHandler)
		api.GET("/:id", sh.GetSpecialistHandler)
		api.PUT("/:id", sh.UpdateSpecialistHandler)
		api.DELETE("/:id", sh.DeleteSpecialistHandler)

		// Weekly availability: normalized schedule + derived metrics.
		// The GET output is what the booking slot generator consumes.
		api.GET("/:id/availability", sh.GetAvailabilityHandler)
		api.PUT("/:id/availability", sh.UpdateAvailabilityHandler)
	}
}

// RegisterOpsRoutes registers operational endpoints.
func RegisterOpsRoutes(r *gin.Engine) {
	r.GET("/healthz", handlers.HealthHandler)
}

// CORSMiddleware configures cross-origin access for the web client.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
