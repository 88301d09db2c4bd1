// Package main provides a local HTTP server for development and testing.
// It serves the same health document as the health Lambda and forwards
// everything else to the registered application entry point.
package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/cors"

	"guardian-eye-api/internal/application"
	"guardian-eye-api/internal/bootstrap"
	"guardian-eye-api/internal/handlers"
	"guardian-eye-api/internal/utils"
)

func main() {
	rt, err := bootstrap.Init()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer utils.Sync()
	defer rt.DB.Close()

	health := handlers.NewHealthHandler(rt.DB)

	healthHTTP := func(w http.ResponseWriter, r *http.Request) {
		resp, err := health.Handle(r.Context(), events.APIGatewayProxyRequest{
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		for name, value := range resp.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHTTP)
	mux.HandleFunc("/api/health", healthHTTP)

	// Everything else goes straight to the application
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		app, err := application.Entrypoint()
		if err != nil {
			http.Error(w, "Application not registered", http.StatusBadGateway)
			return
		}
		app.ServeHTTP(w, r)
	})

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	port := getEnvOrDefault("PORT", "8080")
	addr := fmt.Sprintf("0.0.0.0:%s", port)

	log.Printf("Guardian Eye API gateway")
	log.Printf("Health: http://localhost:%s/health", port)

	log.Printf("Starting HTTP server on %s...", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
