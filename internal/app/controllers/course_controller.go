package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/app/models/dto"
	"github.com/cdjacome2/microcampus/internal/app/services"
	"github.com/cdjacome2/microcampus/internal/middleware"
)

// CourseController handles course CRUD and the roster endpoints for the
// course service
type CourseController struct {
	courseService     *services.CourseService
	enrollmentService *services.EnrollmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService, enrollmentService *services.EnrollmentService) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course with the provided information
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request data"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.HandleValidationError(err),
			Timestamp: time.Now(),
		})
		return
	}

	course := models.Course{
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
	}

	if err := c.courseService.CreateCourse(ctx, &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetAllCourses retrieves all courses
// @Summary List all courses
// @Description Retrieves a list of all registered courses with their rosters
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific course by its ID, roster included
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid course ID"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Updates an existing course's name, description and credits
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course updated successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request data"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Course not found"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.HandleValidationError(err),
			Timestamp: time.Now(),
		})
		return
	}

	course := models.Course{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Credits:     req.Credits,
	}

	if err := c.courseService.UpdateCourse(ctx, &course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// DeleteCourse deletes a course together with its roster
// @Summary Delete a course
// @Description Deletes an existing course by its ID; its roster entries go with it
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course deleted successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid course ID"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course deleted successfully"},
		Timestamp: time.Now(),
	})
}

// EnrollUser enrolls a user into a course
// @Summary Enroll a user in a course
// @Description Validates the user against the user service, then appends a roster entry
// @Tags enrollments
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.EnrollUserRequest true "User to enroll"
// @Success 201 {object} dto.APIResponse{data=models.Course} "User enrolled, updated course returned"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request data"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "User or course not found"
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail} "User already enrolled in this course"
// @Failure 502 {object} dto.APIResponse{error=dto.ErrorDetail} "User service unavailable"
// @Router /courses/{id}/users [post]
func (c *CourseController) EnrollUser(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.EnrollUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.HandleValidationError(err),
			Timestamp: time.Now(),
		})
		return
	}

	course, err := c.enrollmentService.Enroll(ctx, courseID, req.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      course,
		Timestamp: time.Now(),
	})
}

// UnenrollUser removes a user's enrollment from a course
// @Summary Unenroll a user from a course
// @Description Removes the user's roster entry; removing an absent entry is a no-op
// @Tags enrollments
// @Produce json
// @Param id path int true "Course ID"
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Enrollment removed"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid ID"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Enrollment not found"
// @Router /courses/{id}/users/{userId} [delete]
func (c *CourseController) UnenrollUser(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.enrollmentService.Unenroll(ctx, courseID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Enrollment removed successfully"},
		Timestamp: time.Now(),
	})
}

// ListEnrolledUsers lists the users enrolled in a course
// @Summary List enrolled users
// @Description Returns a snapshot of every user enrolled in the course; unresolvable users come back as id-only placeholders
// @Tags enrollments
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolledUserResponse} "Roster retrieved successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid course ID"
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail} "Course not found"
// @Router /courses/{id}/users [get]
func (c *CourseController) ListEnrolledUsers(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	users, err := c.enrollmentService.ListEnrolled(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      users,
		Timestamp: time.Now(),
	})
}

// RegisterUser creates a user through the user service
// @Summary Create a user via the course service
// @Description Forwards a user creation payload to the user service and relays the outcome
// @Tags enrollments
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=models.User} "User created successfully"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Invalid request data"
// @Failure 502 {object} dto.APIResponse{error=dto.ErrorDetail} "User service unavailable"
// @Router /courses/users [post]
func (c *CourseController) RegisterUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.HandleValidationError(err),
			Timestamp: time.Now(),
		})
		return
	}

	user, err := c.enrollmentService.RegisterUser(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      user,
		Timestamp: time.Now(),
	})
}
