package Routes

import (
	"net/http"

	"MediTrack/Controllers"
	"MediTrack/Middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Patient Management System API",
			"status":  "online",
		})
	})

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		// Doctor-related routes
		authorized.GET("/doctor", Controllers.CurrentDoctor)

		// Patient-related routes
		authorized.GET("/patients", Controllers.FetchPatients)
		authorized.POST("/patients", Controllers.CreatePatient)
		authorized.GET("/patients/export", Controllers.ExportPatientsExcel)
		authorized.GET("/patients/:id", Controllers.GetPatient)
		authorized.PUT("/patients/:id", Controllers.UpdatePatient)
		authorized.DELETE("/patients/:id", Controllers.DeletePatient)
	}
}
