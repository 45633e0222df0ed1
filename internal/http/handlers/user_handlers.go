package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/store-api/internal/models"
)

// UpdateUserHandler overwrites name and username of the user addressed by the
// path id. Any authenticated caller may update any id; the token is checked
// for validity only, not ownership. Zero matched rows still reports success.
func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid user id"})
		return
	}

	var req UserUpdateRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid input"})
		return
	}

	user := models.User{
		ID:       id,
		Name:     req.Name,
		Username: req.Username,
	}

	if err := userRepo.Update(user); err != nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "could not update user",
			Error:   err.Error(),
		})
		return
	}

	if err := writeJSON(w, http.StatusOK, MessageResponse{Message: "user updated"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
