package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/store-api/internal/http/handlers"
	mw "github.com/rogerio-castellano/store-api/internal/http/middleware"
	rl "github.com/rogerio-castellano/store-api/internal/http/rate_limiter"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// Unauthenticated endpoints, rate limited per IP.
	r.Group(func(r chi.Router) {
		r.Use(rl.Middleware)
		r.Post("/signup", handlers.SignupHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	// Everything else sits behind the token gate.
	r.Group(func(r chi.Router) {
		r.Use(mw.RequireAuth)
		r.Put("/users/{id}", handlers.UpdateUserHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/{pid}", handlers.GetProductByIDHandler)
		r.Put("/products/{pid}", handlers.UpdateProductHandler)
		r.Delete("/products/{pid}", handlers.DeleteProductHandler)
	})

	return r
}
