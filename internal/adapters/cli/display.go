package cli

import (
	"fmt"
	"strings"

	"truckstock/internal/app"
	"truckstock/internal/core"
)

func printSummary(s *core.Summary) {
	width := 30 + 12*(len(s.Locations)+2)
	fmt.Println()
	fmt.Println(strings.Repeat("=", width))
	fmt.Printf("  %s\n", "ON-HAND SUMMARY")
	fmt.Println(strings.Repeat("=", width))
	if len(s.Rows) == 0 {
		fmt.Println("  No items in catalog.")
		fmt.Println(strings.Repeat("=", width))
		return
	}

	fmt.Printf("  %-22s %-12s", "ITEM", "SIZE/PACK")
	for _, name := range s.Locations {
		fmt.Printf(" %11s", name)
	}
	fmt.Printf(" %11s %13s\n", "WASTE QTY", "TOTAL ON HAND")
	fmt.Println(strings.Repeat("-", width))

	for _, row := range s.Rows {
		fmt.Printf("  %-22s %-12s", clip(row.Description, 22), clip(row.SizePack, 12))
		for _, q := range row.Quantities {
			fmt.Printf(" %11s", q.String())
		}
		fmt.Printf(" %11s %13s\n", row.WasteQty.String(), row.TotalOnHand.String())
	}
	fmt.Println(strings.Repeat("=", width))
}

func printItems(result *app.ItemListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 56))
	fmt.Println("  ITEMS")
	fmt.Println(strings.Repeat("=", 56))
	if len(result.Items) == 0 {
		fmt.Println("  No items in catalog. Receive stock to create one.")
		fmt.Println(strings.Repeat("=", 56))
		return
	}
	fmt.Printf("  %-6s %-30s %s\n", "ID", "DESCRIPTION", "SIZE/PACK")
	fmt.Println(strings.Repeat("-", 56))
	for _, it := range result.Items {
		fmt.Printf("  %-6d %-30s %s\n", it.ID, clip(it.Description, 30), it.SizePack)
	}
	fmt.Println(strings.Repeat("=", 56))
}

func printWasteRecords(result *app.WasteListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("  WASTE LOG (newest first)")
	fmt.Println(strings.Repeat("=", 80))
	if len(result.Records) == 0 {
		fmt.Println("  No waste recorded.")
		fmt.Println(strings.Repeat("=", 80))
		return
	}
	fmt.Printf("  %-6s %-12s %-12s %-24s %8s  %s\n", "ID", "DATE", "LOCATION", "ITEM", "QTY", "REASON")
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range result.Records {
		item := r.Item.Description
		if r.Item.SizePack != "" {
			item += " (" + r.Item.SizePack + ")"
		}
		fmt.Printf("  %-6d %-12s %-12s %-24s %8s  %s\n",
			r.ID, r.WasteDate, r.LocationName, clip(item, 24), r.Qty.String(), r.Reason)
	}
	fmt.Println(strings.Repeat("=", 80))
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
