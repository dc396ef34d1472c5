package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/altan/coursehub/internal/app/controllers"
	"github.com/altan/coursehub/internal/middleware"
)

// SetupRouter configures all application routes. The canonical pipeline on
// write routes is authenticate, then validate, then authorize: BasicAuth
// runs before the handler, the handler validates the body, and the service
// checks ownership last.
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.GET("", authMiddleware.BasicAuth(), userController.GetCurrentUser)
		users.POST("", userController.CreateUser)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", authMiddleware.BasicAuth(), courseController.CreateCourse)
		courses.PUT("/:id", authMiddleware.BasicAuth(), courseController.UpdateCourse)
		courses.DELETE("/:id", authMiddleware.BasicAuth(), courseController.DeleteCourse)
	}

	router.NoRoute(middleware.RouteNotFound)
}
