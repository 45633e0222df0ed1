package repo

import (
	"errors"

	"github.com/rogerio-castellano/store-api/internal/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(u models.User) (models.User, error)
	GetByUsername(username string) (models.User, error)
	// Update overwrites name and username of the row with u.ID. Updating a
	// nonexistent id is not an error.
	Update(u models.User) error
}

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")
