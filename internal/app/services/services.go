package services

import (
	"context"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/app/models/dto"
)

// Services defined in this package:
// - UserService: CRUD over user records (user service binary)
// - CourseService: CRUD over course aggregates (course service binary)
// - EnrollmentService: the enrollment workflow across both stores

// UserStore is the persistence surface the user service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the persistence surface the course service needs
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	AddEnrollment(ctx context.Context, courseID, userID int64) (*models.Enrollment, error)
	RemoveEnrollment(ctx context.Context, courseID, userID int64) error
}

// UserLookup is the remote user service as seen from the course service
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserRequest) (*models.User, error)
}
