package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/altan/coursehub/internal/app/models/dto"
	"github.com/altan/coursehub/internal/app/services"
	"github.com/altan/coursehub/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// courseID parses the :id path parameter. A non-integer id identifies no
// course, so the route contract makes it a 404 rather than a 400.
func courseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// GetAllCourses returns every course with its owner summary.
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(courses))
}

// GetCourseByID returns one course with its owner summary, or 404.
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := courseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(course))
}

// CreateCourse creates a course owned by the authenticated user. Runs behind
// BasicAuth. Success is a 201 with a Location header pointing at the new
// course and an empty body.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Access denied"})
		return
	}

	var req dto.SaveCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			[]string{"Request body must be valid JSON"}))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), user.ID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/api/courses/%d", course.ID))
	ctx.Status(http.StatusCreated)
}

// UpdateCourse updates a course owned by the authenticated user. Runs behind
// BasicAuth; a foreign owner gets a 403 with no mutation.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Access denied"})
		return
	}

	id, ok := courseID(ctx)
	if !ok {
		return
	}

	var req dto.SaveCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			[]string{"Request body must be valid JSON"}))
		return
	}

	if err := c.courseService.UpdateCourse(ctx.Request.Context(), id, user.ID, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DeleteCourse deletes a course owned by the authenticated user. Runs behind
// BasicAuth; repeating a successful delete yields a 404, never a second 204.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Access denied"})
		return
	}

	id, ok := courseID(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id, user.ID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
