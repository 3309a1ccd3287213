package handler

import (
	"net/http"

	"meddoc-validate/internal/config"
	"meddoc-validate/web"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	router.Use(RequestMiddleware(container.Logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"meddoc-validate"}`))
	}).Methods("GET")

	// Upload UI
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(web.IndexPage)
	}).Methods("GET")

	validateHandler := NewValidateHandler(
		container.Extractor,
		container.Validator,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/validate", validateHandler.ValidateDocument).Methods("POST")
	api.HandleFunc("/frameworks", validateHandler.GetFrameworks).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 300,
	})

	return c.Handler(router)
}
