package routes

import (
	"car-inspection-api/controllers"
	"car-inspection-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Required photo categories
			public.GET("/requirements", controllers.GetImageRequirements)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Car Inspection API is running",
				})
			})
		}

		// User profile (requires a verified JWT)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", controllers.GetProfile)
		}

		// Submissions
		submissions := v1.Group("/submissions")
		{
			// Creation records the bearer token verbatim as the owner;
			// the token itself is never verified.
			submissions.POST("", middleware.RequireBearerToken(), controllers.CreateSubmission)

			submissions.GET("/:id", controllers.GetSubmission)
			submissions.POST("/:id/images", controllers.UploadImage)
			submissions.GET("/:id/report", controllers.GetSubmissionReport)
		}
	}
}
