package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cdjacome2/microcampus/internal/app/controllers"
	"github.com/cdjacome2/microcampus/internal/app/models/dto"
)

// SetupUserRoutes configures the user service routes
func SetupUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	registerHealth(v1)
}

// SetupCourseRoutes configures the course service routes
func SetupCourseRoutes(router *gin.Engine, courseController *controllers.CourseController) {
	v1 := router.Group("/api/v1")

	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)

		// Roster endpoints
		courses.POST("/:id/users", courseController.EnrollUser)
		courses.GET("/:id/users", courseController.ListEnrolledUsers)
		courses.DELETE("/:id/users/:userId", courseController.UnenrollUser)

		// Pass-through user creation, forwarded to the user service
		courses.POST("/users", courseController.RegisterUser)
	}

	registerHealth(v1)
}

func registerHealth(v1 *gin.RouterGroup) {
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
