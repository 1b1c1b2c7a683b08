// Package main implements the entry point for the slovocards API server,
// which serves shared vocabulary flashcards with per-user learning
// progress and LLM-assisted translation.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env is a development convenience; in deployment the
	// platform injects the environment directly.
	_ = godotenv.Load()

	app, err := newApplication(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
