package handlers

import (
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/store-api/internal/auth"
	"github.com/rogerio-castellano/store-api/internal/http/ban"
	"github.com/rogerio-castellano/store-api/internal/models"
	"github.com/rogerio-castellano/store-api/internal/repo"
)

// SignupHandler registers a new user. The password is bcrypt-hashed before it
// reaches the store; the plaintext is never persisted. No token is issued,
// the caller must log in separately.
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := readJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid input"})
		return
	}

	if req.Name == "" || req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "all fields are required"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "failed to hash password"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hashed),
	}

	if _, err := userRepo.CreateUser(user); err != nil {
		// Store errors, duplicate username included, surface with the
		// underlying detail attached.
		writeJSON(w, http.StatusInternalServerError, MessageResponse{
			Message: "could not register user",
			Error:   err.Error(),
		})
		return
	}

	if err := writeJSON(w, http.StatusCreated, MessageResponse{Message: "user created"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// LoginHandler verifies credentials and issues a 10-minute token carrying the
// user's id and username. The response distinguishes an unknown username from
// a wrong password.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "invalid input"})
		return
	}

	if creds.Username == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, MessageResponse{Message: "all fields are required"})
		return
	}

	target := creds.Username + "|" + clientIP(r)
	if ban.IsBanned(target) {
		writeJSON(w, http.StatusTooManyRequests, MessageResponse{Message: "too many failed login attempts"})
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			ban.RegisterFailure(target, r.URL.Path)
			writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "username not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not log in", Error: err.Error()})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		ban.RegisterFailure(target, r.URL.Path)
		writeJSON(w, http.StatusUnauthorized, MessageResponse{Message: "incorrect password"})
		return
	}

	ban.ClearStrikes(target)

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "could not generate token"})
		return
	}

	if err := writeJSON(w, http.StatusOK, LoginResult{Token: token}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
