package entities

import (
	"time"

	"beacon-backend/domain/core/valueobjects"
	pkgerrors "beacon-backend/pkg/errors"
)

// User is a registered account that can own applications, follow them, and
// receive messages and activity events
type User struct {
	ID        valueobjects.UserID
	Email     string
	Name      string
	CreatedAt time.Time
}

// NewUser creates a user account
func NewUser(email, name string) (*User, error) {
	if email == "" {
		return nil, pkgerrors.NewInvalidArgument("email cannot be empty")
	}
	return &User{
		ID:        valueobjects.NewUserID(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}, nil
}
