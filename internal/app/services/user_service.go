package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
	"github.com/cdjacome2/microcampus/internal/pkg/validation"
)

// UserService handles user-related operations
type UserService struct {
	userRepo UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserStore) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// normalizeUser trims whitespace and lowercases the email before persistence
func normalizeUser(user *models.User) {
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Phone = strings.TrimSpace(user.Phone)
}

// validateUser validates user data beyond what request binding covers. The
// service is also reached through the course service pass-through, so it
// cannot rely on binding alone.
func validateUser(user *models.User) error {
	nameOK := validation.NewStringValidation(user.FirstName).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !nameOK {
		return fmt.Errorf("%w: first name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	lastNameOK := validation.NewStringValidation(user.LastName).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !lastNameOK {
		return fmt.Errorf("%w: last name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	emailOK := validation.NewStringValidation(user.Email).
		WithPattern(validation.CompiledPatterns.Email).
		Validate()
	if !emailOK {
		return fmt.Errorf("%w: email address is not valid", apperrors.ErrValidationFailed)
	}

	phoneOK := validation.NewStringValidation(user.Phone).
		WithPattern(validation.CompiledPatterns.Phone).
		Validate()
	if !phoneOK {
		return fmt.Errorf("%w: phone number is not valid", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateUser persists a new user and returns it with its assigned id
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	normalizeUser(user)
	if err := validateUser(user); err != nil {
		return err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.userRepo.GetByID(ctx, id)
}

// GetAllUsers retrieves all users. The result is never nil, so an empty
// registry serializes as an empty array.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// UpdateUser overwrites the profile fields of an existing user. The identity
// is taken from user.ID and is never changed.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) error {
	if user.ID <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	normalizeUser(user)
	if err := validateUser(user); err != nil {
		return err
	}

	return s.userRepo.Update(ctx, user)
}

// DeleteUser deletes a user by ID. Deleting an absent user reports not-found
// rather than silently succeeding.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.userRepo.Delete(ctx, id)
}
