package repo

import (
	"errors"

	"github.com/rogerio-castellano/store-api/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(p models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(pid int) (models.Product, error)
	// Update and Delete treat a nonexistent pid as a no-op, not an error.
	Update(p models.Product) error
	Delete(pid int) error
}

// ErrProductNotFound is returned by GetByID when no product matches.
var ErrProductNotFound = errors.New("product not found")
