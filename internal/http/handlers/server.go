package handlers

import (
	repo "github.com/rogerio-castellano/store-api/internal/repo"
)

var (
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}
