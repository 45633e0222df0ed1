package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/store-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{nextID: 1}
}

// Create adds a new product, assigning pid and creation timestamp.
func (r *InMemoryProductRepository) Create(p models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.Pid = r.nextID
	r.nextID++
	p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	r.products = append(r.products, p)
	return p, nil
}

// GetAll retrieves all products.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its pid.
func (r *InMemoryProductRepository) GetByID(pid int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Pid == pid {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update overwrites an existing product; a missing pid is a no-op.
func (r *InMemoryProductRepository) Update(p models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.products {
		if existing.Pid == p.Pid {
			p.CreatedAt = existing.CreatedAt
			r.products[i] = p
			return nil
		}
	}
	return nil
}

// Delete removes a product by pid; a missing pid is a no-op.
func (r *InMemoryProductRepository) Delete(pid int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.Pid == pid {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = nil
	r.nextID = 1
}
