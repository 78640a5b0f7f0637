package models

import "time"

// Course represents a course together with its roster. The roster is owned by
// the course: entries are created through enrollment, removed through
// unenrollment, and die with the course.
type Course struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"` // Nullable
	Credits     int     `json:"credits" db:"credits"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Roster is populated when the full aggregate is loaded
	Roster []Enrollment `json:"roster"`
}

// Enrollment is a single roster entry: the join between a course and a user
// id. The user reference is weak; the user service knows nothing about it.
type Enrollment struct {
	ID         int64     `json:"id" db:"id"`
	CourseID   int64     `json:"courseId" db:"course_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	EnrolledAt time.Time `json:"enrolledAt" db:"enrolled_at"`
}

// HasUser reports whether the roster already carries an entry for userID.
func (c *Course) HasUser(userID int64) bool {
	for _, e := range c.Roster {
		if e.UserID == userID {
			return true
		}
	}
	return false
}
