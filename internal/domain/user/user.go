package user

import (
	"context"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         *string   `json:"name"`
	PasswordHash string    `json:"-"`
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}
