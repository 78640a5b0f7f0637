package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService struct {
	courseRepo CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseStore) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	course.Name = strings.TrimSpace(course.Name)
	if course.Name == "" {
		return fmt.Errorf("%w: name cannot be blank", apperrors.ErrValidationFailed)
	}

	if course.Credits < 0 {
		return fmt.Errorf("%w: credits cannot be negative", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course with an empty roster
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	return s.courseRepo.Create(ctx, course)
}

// GetCourseByID retrieves the full course aggregate by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses. The result is never nil, so an empty
// catalog serializes as an empty array.
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

// UpdateCourse overwrites the mutable fields of an existing course. The
// roster is untouched: it only changes through the enrollment workflow.
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if course == nil || course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	if err := validateCourse(course); err != nil {
		return err
	}

	return s.courseRepo.Update(ctx, course)
}

// DeleteCourse deletes a course by ID together with its roster
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.Delete(ctx, id)
}
