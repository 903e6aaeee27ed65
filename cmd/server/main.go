// Package main implements the entry point for the HBnB API server, which
// exposes users, places, reviews and amenities over a JSON REST API.
package main

import (
	"context"
	"log"
	"log/slog"
)

// main loads configuration, sets up logging, wires the application and
// serves HTTP until an interrupt or termination signal arrives.
func main() {
	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	l, err := setupAppLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app := newApplication(cfg, l)
	if err := app.Run(context.Background()); err != nil {
		slog.Error("Server exited with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}
