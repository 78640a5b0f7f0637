package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/app/models/dto"
	"github.com/cdjacome2/microcampus/internal/app/services"
	"github.com/cdjacome2/microcampus/internal/middleware"
)

// UserController handles user CRUD operations for the user service
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// parseIDParam parses a numeric path parameter, answering 400 on garbage
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	idStr := ctx.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     errorDetail,
			Timestamp: time.Now(),
		})
		return 0, false
	}
	return id, true
}

// CreateUser handles user creation
// @Summary Create a new user
// @Description Creates a new user with the provided profile information
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=models.User} "User created successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request data"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Email already exists"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Internal server error"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.HandleValidationError(err),
			Timestamp: time.Now(),
		})
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	}

	if err := c.userService.CreateUser(ctx, &user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// GetAllUsers retrieves all users
// @Summary List all users
// @Description Retrieves a list of all registered users
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.User} "Users retrieved successfully"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Internal server error"
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      users,
		Timestamp: time.Now(),
	})
}

// GetUserByID retrieves a user by ID
// @Summary Get user by ID
// @Description Retrieves a specific user by their ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User retrieved successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid user ID"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// UpdateUser updates an existing user's profile fields
// @Summary Update a user
// @Description Updates an existing user's profile fields; the id never changes
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Updated user information"
// @Success 200 {object} dto.APIResponse{data=models.User} "User updated successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request data"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "Email already exists"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.HandleValidationError(err),
			Timestamp: time.Now(),
		})
		return
	}

	user := models.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	}

	if err := c.userService.UpdateUser(ctx, &user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}

// DeleteUser deletes a user
// @Summary Delete a user
// @Description Deletes an existing user by their ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User deleted successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid user ID"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "User deleted successfully"},
		Timestamp: time.Now(),
	})
}
