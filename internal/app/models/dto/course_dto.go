package dto

import "time"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Credits     int     `json:"credits" binding:"gte=0"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Credits     int     `json:"credits" binding:"gte=0"`
}

// EnrollUserRequest names the user to enroll. Only the id is used for the
// lookup; the remaining fields mirror the user payload the original API
// accepted and are ignored beyond validation.
type EnrollUserRequest struct {
	ID int64 `json:"id" binding:"required,gt=0"`
}

// EnrolledUserResponse is one roster snapshot returned by the list-enrolled
// endpoint. When the referenced user cannot be resolved against the user
// service (deleted, or upstream unreachable) only the id is filled in and
// Resolved is false.
type EnrolledUserResponse struct {
	UserID     int64     `json:"userId"`
	FirstName  string    `json:"firstName,omitempty"`
	LastName   string    `json:"lastName,omitempty"`
	Email      string    `json:"email,omitempty"`
	EnrolledAt time.Time `json:"enrolledAt"`
	Resolved   bool      `json:"resolved"`
}
