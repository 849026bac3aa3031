package user

import (
	"errors"
	"time"
)

type User struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	FullName     *string   `json:"fullName,omitempty"`
	PasswordHash string    `json:"-"` // never expose hash in JSON
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

var ErrNotFound = errors.New("user not found")

type CreateUserRequest struct {
	Email    string  `json:"email"`
	FullName *string `json:"fullName,omitempty"`
	Password string  `json:"password"`
}
