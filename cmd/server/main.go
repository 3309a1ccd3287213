package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"meddoc-validate/internal/config"
	"meddoc-validate/internal/domain"
	"meddoc-validate/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring. The container refuses to build without the model credential;
	// nothing else starts before this check passes.
	container, err := config.NewContainer()
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredential) {
			log.Fatalf("Cannot start: %v. Set ANTHROPIC_API_KEY in the environment or a .env file.", err)
		}
		log.Fatalf("Cannot start: %v", err)
	}

	// Router
	router := handler.NewRouter(container)

	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr, "model", container.Config.GetModel())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
