package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/store-api/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO products (pname, description, price, stock, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING pid, created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Pname, p.Description, p.Price, p.Stock).
		Scan(&p.Pid, &p.CreatedAt)
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT pid, pname, description, price, stock, created_at FROM products ORDER BY pid`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.Pid, &p.Pname, &p.Description, &p.Price, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(pid int) (models.Product, error) {
	query := `SELECT pid, pname, description, price, stock, created_at FROM products WHERE pid = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, pid).
		Scan(&p.Pid, &p.Pname, &p.Description, &p.Price, &p.Stock, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) error {
	query := `UPDATE products SET pname = $1, description = $2, price = $3, stock = $4 WHERE pid = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Zero rows matched is reported as success, matching the route contract.
	_, err := r.db.ExecContext(ctx, query, p.Pname, p.Description, p.Price, p.Stock, p.Pid)
	return err
}

func (r *PostgresProductRepository) Delete(pid int) error {
	query := `DELETE FROM products WHERE pid = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, pid)
	return err
}
