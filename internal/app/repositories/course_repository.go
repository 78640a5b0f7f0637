package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cdjacome2/microcampus/internal/app/models"
	"github.com/cdjacome2/microcampus/internal/pkg/apperrors"
	"github.com/cdjacome2/microcampus/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses and their rosters
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and fills in the assigned id and timestamps
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, description, credits)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Description, course.Credits,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	course.Roster = []models.Enrollment{}
	return nil
}

// GetByID retrieves the full course aggregate, roster included
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, description, credits, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.Credits,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	roster, err := r.getRoster(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Roster = roster

	return &course, nil
}

// GetAll retrieves all courses with their rosters
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, description, credits, created_at, updated_at
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Empty table marshals as [], not null
	courses := []*models.Course{}
	byID := make(map[int64]*models.Course)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Description,
			&course.Credits,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		course.Roster = []models.Enrollment{}
		courses = append(courses, &course)
		byID[course.ID] = &course
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One pass over all enrollments instead of a query per course
	enrollmentRows, err := r.db.Query(ctx, `
		SELECT id, course_id, user_id, enrolled_at
		FROM enrollments
		ORDER BY course_id, id
	`)
	if err != nil {
		return nil, err
	}
	defer enrollmentRows.Close()

	for enrollmentRows.Next() {
		var e models.Enrollment
		if err := enrollmentRows.Scan(&e.ID, &e.CourseID, &e.UserID, &e.EnrolledAt); err != nil {
			return nil, err
		}
		if course, ok := byID[e.CourseID]; ok {
			course.Roster = append(course.Roster, e)
		}
	}

	if err := enrollmentRows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Update overwrites the mutable fields of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, description = $2, credits = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Name, course.Description, course.Credits, course.ID,
	).Scan(&course.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// Delete deletes a course by ID. The roster goes with it (ON DELETE CASCADE).
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// AddEnrollment appends a roster entry for (courseID, userID). The unique
// constraint on (course_id, user_id) is the authoritative duplicate guard:
// two concurrent enrolls can both pass the in-memory roster scan, but only
// one insert survives.
func (r *CourseRepository) AddEnrollment(ctx context.Context, courseID, userID int64) (*models.Enrollment, error) {
	query := `
		INSERT INTO enrollments (course_id, user_id)
		VALUES ($1, $2)
		RETURNING id, enrolled_at
	`

	enrollment := models.Enrollment{
		CourseID: courseID,
		UserID:   userID,
	}
	err := r.db.QueryRow(ctx, query, courseID, userID).Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_course_id_user_id_key") {
			return nil, apperrors.ErrDuplicateEnrollment
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewCustomError(apperrors.ErrConflict, "enrollment conflicts with existing data")
		}
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return &enrollment, nil
}

// RemoveEnrollment deletes the roster entry for (courseID, userID) if there
// is one. Removing an absent entry is a no-op, not an error.
func (r *CourseRepository) RemoveEnrollment(ctx context.Context, courseID, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM enrollments WHERE course_id = $1 AND user_id = $2`,
		courseID, userID)
	if err != nil {
		return fmt.Errorf("error removing enrollment: %w", err)
	}

	return nil
}

// getRoster loads the roster entries for one course
func (r *CourseRepository) getRoster(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, course_id, user_id, enrolled_at
		FROM enrollments
		WHERE course_id = $1
		ORDER BY id
	`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := []models.Enrollment{}
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.ID, &e.CourseID, &e.UserID, &e.EnrolledAt); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
