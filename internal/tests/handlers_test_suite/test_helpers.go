package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/store-api/internal/auth"
	handler "github.com/rogerio-castellano/store-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/store-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/store-api/internal/http/router"
	"github.com/rogerio-castellano/store-api/internal/models"
	"github.com/rogerio-castellano/store-api/internal/repo"
)

var (
	token       string
	userRepo    *repo.InMemoryUserRepository
	productRepo *repo.InMemoryProductRepository
)

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos("secret")
	r := router.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Name:         "Admin",
		Username:     "admin",
		PasswordHash: string(hash),
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func resetUsers() {
	userRepo.Clear()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Name:         "Admin",
		Username:     "admin",
		PasswordHash: string(hash),
	})
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	w := login(r, username, password)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func signup(r http.Handler, payload handler.SignupRequest) *httptest.ResponseRecorder {
	rl.CleanupAllVisitors()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	// The auth endpoints sit behind the per-IP limiter and every httptest
	// request shares the same remote address.
	rl.CleanupAllVisitors()

	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authedRequest(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
