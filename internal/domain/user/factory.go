package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/resumehub/resumehub/internal/security"
)

func NewFromCreateRequest(req CreateUserRequest) User {
	now := time.Now().UTC()

	return User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: security.HashPassword(req.Password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
