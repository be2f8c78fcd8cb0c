// initdb is a one-shot tool that creates the schema and seeds the fixed
// location set. Both server and CLI run the same initialization at startup;
// this exists for provisioning a fresh database ahead of first use.
//
// Usage: go run ./cmd/initdb
package main

import (
	"context"
	"log"

	"truckstock/internal/core"
	"truckstock/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	if err := core.InitSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Printf("Schema ready, %d locations seeded.", len(core.SeedLocations))
}
