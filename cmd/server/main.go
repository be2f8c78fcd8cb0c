package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	webAdapter "truckstock/internal/adapters/web"
	"truckstock/internal/app"
	"truckstock/internal/core"
	"truckstock/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := core.InitSchema(ctx, pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: allowNegativeStock()})
	wasteLog := core.NewWasteLogService(pool)
	reports := core.NewReportService(pool)

	svc := app.NewAppService(catalog, ledger, wasteLog, reports)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// allowNegativeStock reads ALLOW_NEGATIVE_STOCK; unset or unparsable means
// true, matching the historical behavior of the tracker.
func allowNegativeStock() bool {
	v := os.Getenv("ALLOW_NEGATIVE_STOCK")
	if v == "" {
		return true
	}
	allow, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid ALLOW_NEGATIVE_STOCK=%q, defaulting to true", v)
		return true
	}
	return allow
}
