package dto

import "time"

// CreateUserRequest represents the request to register a user
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50" example:"barista-anna"`
}

// UserResponse represents a user returned by the API
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Username  string    `json:"username" example:"barista-anna"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-01T09:00:00Z"`
}

// ListUsersResponse represents the user listing
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total" example:"2"`
}
