package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"truckstock/internal/adapters/cli"
	"truckstock/internal/app"
	"truckstock/internal/core"
	"truckstock/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: app <receive|move|waste|summary|export|items|locations|waste-log> [args]")
		os.Exit(1)
	}

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
	cli.Run(ctx, svc, os.Args[1:])
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
