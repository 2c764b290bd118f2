package routes

import (
	"staff-scheduler-api/controllers"
	"staff-scheduler-api/middleware"

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
			public.POST("/login", controllers.Login)
			public.POST("/refresh", controllers.RefreshToken)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Staff Scheduler API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth management
			protected.POST("/logout", controllers.Logout)
			protected.GET("/profile", controllers.GetProfile)

			// Staff
			staff := protected.Group("/staff")
			{
				staff.GET("", controllers.GetStaffList)
				staff.GET("/:id", controllers.GetStaffMember)

				// Only admins manage the roster
				staff.POST("", middleware.RequireAdmin(), controllers.CreateStaffMember)
				staff.PUT("/:id", middleware.RequireAdmin(), controllers.UpdateStaffMember)
				staff.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteStaffMember)
			}

			// Projects
			projects := protected.Group("/projects")
			{
				projects.GET("", controllers.GetProjects)
				projects.GET("/:id", controllers.GetProject)
				projects.POST("", middleware.RequireAdmin(), controllers.CreateProject)
				projects.PUT("/:id", middleware.RequireAdmin(), controllers.UpdateProject)
				projects.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteProject)
			}

			// Schedules (any authenticated user edits the calendar)
			schedules := protected.Group("/schedules")
			{
				schedules.GET("", controllers.GetSchedules)
				schedules.GET("/:id", controllers.GetSchedule)
				schedules.POST("", controllers.CreateSchedule)
				schedules.POST("/batch", controllers.CreateScheduleBatch)
				schedules.PUT("/day/:date", controllers.ReplaceScheduleDay)
				schedules.PUT("/:id", controllers.UpdateSchedule)
				schedules.PUT("/:id/move", controllers.MoveSchedule)
				schedules.DELETE("/day/:date", controllers.DeleteScheduleDay)
				schedules.DELETE("/:id", controllers.DeleteSchedule)
			}

			// Job costs
			jobCosts := protected.Group("/job-costs")
			{
				jobCosts.GET("", controllers.GetJobCosts)
				jobCosts.GET("/:id", controllers.GetJobCost)
				jobCosts.POST("", middleware.RequireAdmin(), controllers.CreateJobCost)
				jobCosts.PUT("/:id", middleware.RequireAdmin(), controllers.UpdateJobCost)
				jobCosts.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteJobCost)
			}

			// Staff workdays
			workdays := protected.Group("/staff-workdays")
			{
				workdays.GET("", controllers.GetStaffWorkdays)
				workdays.GET("/:id", controllers.GetStaffWorkday)
				workdays.POST("", middleware.RequireAdmin(), controllers.CreateStaffWorkday)
				workdays.PUT("/:id", middleware.RequireAdmin(), controllers.UpdateStaffWorkday)
				workdays.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteStaffWorkday)
			}

			// Dashboard & calendar
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)
			protected.GET("/calendar", controllers.GetCalendar)
		}
	}
}
