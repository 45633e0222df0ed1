package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/store-api/internal/models"
	"github.com/rogerio-castellano/store-api/internal/repo"
)

// CreateProductHandler inserts a new product. Only field presence is checked;
// the creation timestamp is assigned by the store.
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid input"})
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		Pname:       req.Pname,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	}

	created, err := productRepo.Create(product)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "could not create product",
			Error:   err.Error(),
		})
		return
	}

	if err := writeJSON(w, http.StatusCreated, created); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetProductsHandler returns the full unfiltered collection.
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not fetch products"})
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	if err := writeJSON(w, http.StatusOK, products); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(chi.URLParam(r, "pid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid product id"})
		return
	}

	product, err := productRepo.GetByID(pid)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, MessageResponse{Message: "product not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not fetch product"})
		return
	}

	if err := writeJSON(w, http.StatusOK, product); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateProductHandler overwrites all four fields of the addressed product.
// There are no partial updates, and zero matched rows still reports success.
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(chi.URLParam(r, "pid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid product id"})
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid input"})
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		Pid:         pid,
		Pname:       req.Pname,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	}

	if err := productRepo.Update(product); err != nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "could not update product",
			Error:   err.Error(),
		})
		return
	}

	if err := writeJSON(w, http.StatusOK, MessageResponse{Message: "product updated"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteProductHandler removes the addressed product. Deleting a nonexistent
// pid is a no-op and still reports success.
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(chi.URLParam(r, "pid"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid product id"})
		return
	}

	if err := productRepo.Delete(pid); err != nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "could not delete product",
			Error:   err.Error(),
		})
		return
	}

	if err := writeJSON(w, http.StatusOK, MessageResponse{Message: "product deleted"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
