package dto

import "time"

// CreateUserRequest represents user creation data
type CreateUserRequest struct {
	FirstName string    `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string    `json:"lastName" binding:"required,min=2,max=100"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone" binding:"required,min=7,max=20"`
	BirthDate time.Time `json:"birthDate" binding:"required,lt"`
}

// UpdateUserRequest represents user update data. Identity is never updated;
// the path id wins over anything in the body.
type UpdateUserRequest struct {
	FirstName string    `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string    `json:"lastName" binding:"required,min=2,max=100"`
	Email     string    `json:"email" binding:"required,email"`
	Phone     string    `json:"phone" binding:"required,min=7,max=20"`
	BirthDate time.Time `json:"birthDate" binding:"required,lt"`
}
