package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/app/models/dto"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
)

// EnrollmentService orchestrates the enrollment workflow: confirm the user
// exists in the collaborating user service, confirm the course exists and the
// roster has no duplicate, append the roster entry, persist, return the
// updated aggregate.
type EnrollmentService struct {
	courseRepo CourseStore
	users      UserLookup
	logger     zerolog.Logger
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(courseRepo CourseStore, users UserLookup, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		courseRepo: courseRepo,
		users:      users,
		logger:     logger,
	}
}

// Enroll enrolls a user into a course and returns the updated course with its
// full roster.
//
// The order of checks is part of the contract: the user's existence is
// confirmed against the user service before any course-side state is
// consulted, so a request naming a real course but a nonexistent user always
// reports user-not-found, never duplicate or success.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, userID int64) (*models.Course, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		s.logger.Error().Err(err).Int64("userId", userID).Msg("User lookup failed")
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	// The roster scan catches the common case cheaply; the unique constraint
	// on (course_id, user_id) is still the last word under concurrency.
	if course.HasUser(userID) {
		return nil, apperrors.ErrDuplicateEnrollment
	}

	if _, err := s.courseRepo.AddEnrollment(ctx, courseID, userID); err != nil {
		return nil, err
	}

	updated, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error reloading course after enrollment: %w", err)
	}

	s.logger.Info().Int64("courseId", courseID).Int64("userId", userID).Msg("User enrolled")
	return updated, nil
}

// Unenroll removes a user's roster entry from a course. Removing an entry
// that is not there is a silent no-op. A missing course reports the single
// enrollment-not-found condition the original API exposed.
func (s *EnrollmentService) Unenroll(ctx context.Context, courseID, userID int64) error {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return err
	}

	if err := s.courseRepo.RemoveEnrollment(ctx, courseID, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("courseId", courseID).Int64("userId", userID).Msg("User unenrolled")
	return nil
}

// ListEnrolled returns a snapshot of each enrolled user. Roster entries hold
// a weak reference by id, so every snapshot is resolved lazily against the
// user service; entries whose user cannot be resolved (deleted upstream, or
// upstream unreachable) come back as placeholders carrying only the id
// instead of failing the whole listing.
func (s *EnrollmentService) ListEnrolled(ctx context.Context, courseID int64) ([]dto.EnrolledUserResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]dto.EnrolledUserResponse, 0, len(course.Roster))
	for _, entry := range course.Roster {
		snapshot := dto.EnrolledUserResponse{
			UserID:     entry.UserID,
			EnrolledAt: entry.EnrolledAt,
		}

		user, err := s.users.GetUserByID(ctx, entry.UserID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUserNotFound) {
				s.logger.Warn().Err(err).Int64("userId", entry.UserID).Msg("Could not resolve enrolled user")
			}
		} else {
			snapshot.FirstName = user.FirstName
			snapshot.LastName = user.LastName
			snapshot.Email = user.Email
			snapshot.Resolved = true
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots, nil
}

// RegisterUser forwards a user creation payload to the user service. The
// course service stores nothing; it only relays the outcome.
func (s *EnrollmentService) RegisterUser(ctx context.Context, payload dto.CreateUserRequest) (*models.User, error) {
	user, err := s.users.CreateUser(ctx, payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			s.logger.Error().Err(err).Msg("User creation forwarding failed")
		}
		return nil, err
	}
	return user, nil
}
