package models

import (
	"time"
)

// User defines the user model based on the 'users' table. It is owned by the
// user service; the course service only ever sees it through the user client
// and never persists it.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier, assigned on creation
	FirstName string    `json:"firstName" db:"first_name" example:"Carol"`                // User's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Jacome"`                 // User's last name
	Email     string    `json:"email" db:"email" example:"carol@espe.edu.ec"`             // User's email address (unique)
	Phone     string    `json:"phone" db:"phone" example:"0991234567"`                    // Contact phone number
	BirthDate time.Time `json:"birthDate" db:"birth_date" example:"2000-05-14T00:00:00Z"` // Date of birth
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
