package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"truckstock/internal/app"

	"github.com/shopspring/decimal"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "receive", "rec", "r":
		if len(args) < 5 {
			log.Fatal(`Usage: app receive "<description>" "<size/pack>" <location> <qty>`)
		}
		qty := parseQty(args[4])
		result, err := svc.ReceiveStock(ctx, app.ReceiveRequest{
			Description: args[1],
			SizePack:    args[2],
			Location:    args[3],
			Qty:         qty,
		})
		if err != nil {
			log.Fatalf("Receive failed: %v", err)
		}
		fmt.Println(result.Confirmation)

	case "move", "mov", "m":
		if len(args) < 5 {
			log.Fatal("Usage: app move <item-id> <from-location> <to-location> <qty>")
		}
		result, err := svc.MoveStock(ctx, app.MoveRequest{
			ItemID: parseItemID(args[1]),
			From:   args[2],
			To:     args[3],
			Qty:    parseQty(args[4]),
		})
		if err != nil {
			log.Fatalf("Move failed: %v", err)
		}
		fmt.Println(result.Confirmation)

	case "waste", "w":
		if len(args) < 4 {
			log.Fatal(`Usage: app waste <item-id> <location> <qty> ["<reason>"]`)
		}
		reason := ""
		if len(args) > 4 {
			reason = args[4]
		}
		result, err := svc.RecordWaste(ctx, app.WasteRequest{
			ItemID:   parseItemID(args[1]),
			Location: args[2],
			Qty:      parseQty(args[3]),
			Reason:   reason,
		})
		if err != nil {
			log.Fatalf("Waste failed: %v", err)
		}
		fmt.Println(result.Confirmation)

	case "summary", "sum", "s":
		result, err := svc.GetSummary(ctx)
		if err != nil {
			log.Fatalf("Summary failed: %v", err)
		}
		printSummary(result.Summary)

	case "export", "exp", "e":
		if len(args) < 2 {
			log.Fatal("Usage: app export <path.xlsx|path.csv>")
		}
		path := args[1]
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		defer f.Close()
		format := "xlsx"
		if len(path) > 4 && path[len(path)-4:] == ".csv" {
			format = "csv"
		}
		if err := svc.ExportSummary(ctx, f, format); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Summary exported to %s\n", path)

	case "items", "i":
		result, err := svc.ListItems(ctx)
		if err != nil {
			log.Fatalf("Items failed: %v", err)
		}
		printItems(result)

	case "locations", "loc", "l":
		result, err := svc.ListLocations(ctx)
		if err != nil {
			log.Fatalf("Locations failed: %v", err)
		}
		for _, l := range result.Locations {
			fmt.Printf("  %3d  %s\n", l.ID, l.Name)
		}

	case "waste-log", "wl":
		limit := 20
		if len(args) > 1 {
			limit = parseItemID(args[1])
		}
		result, err := svc.ListWasteRecords(ctx, limit)
		if err != nil {
			log.Fatalf("Waste log failed: %v", err)
		}
		printWasteRecords(result)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Commands: receive, move, waste, summary, export, items, locations, waste-log")
		os.Exit(1)
	}
}

func parseQty(s string) decimal.Decimal {
	qty, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("Invalid quantity %q: %v", s, err)
	}
	return qty
}

func parseItemID(s string) int {
	id, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid item id %q: %v", s, err)
	}
	return id
}
