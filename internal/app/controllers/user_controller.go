package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altan/coursehub/internal/app/models/dto"
	"github.com/altan/coursehub/internal/app/services"
	"github.com/altan/coursehub/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetCurrentUser returns the authenticated user together with the courses
// they own. Runs behind BasicAuth.
func (c *UserController) GetCurrentUser(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Access denied"})
		return
	}

	profile, err := c.userService.Profile(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(profile))
}

// CreateUser handles signup. Success is a 201 with a Location header and an
// empty body; every failure, duplicate email included, is a 400 with the
// collected messages.
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			[]string{"Request body must be valid JSON"}))
		return
	}

	if err := c.userService.Register(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", "/")
	ctx.Status(http.StatusCreated)
}
