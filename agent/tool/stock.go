package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	storex "github.com/nileshdh/restaurant-agent/agent/store"
)

func (r *Registry) checkFoodStock(ctx context.Context, args map[string]any) string {
	records, err := r.store.Records(ctx, storex.CollectionStocks)
	if err != nil {
		if errors.Is(err, storex.ErrCollectionMissing) {
			return "Unable to access stock information. The Stocks worksheet may be missing."
		}
		return "Unable to access the stock database right now. Please try again later."
	}

	itemName := textArg(args, "item_name")
	if itemName != "" {
		needle := strings.ToLower(itemName)
		filtered := records[:0:0]
		for _, rec := range records {
			if strings.Contains(strings.ToLower(rec.Text(storex.FieldItemName, "")), needle) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		if itemName != "" {
			return fmt.Sprintf("No stock information found for '%s'.", itemName)
		}
		return "Stock information is currently unavailable. Please contact the restaurant."
	}

	var b strings.Builder
	b.WriteString("**Current Food Stocks:**\n\n")
	for _, rec := range records {
		unit := rec.Text(storex.FieldUnit, "units")
		fmt.Fprintf(&b, "- %s: %v %s (₹%s per %s)\n  Category: %s\n",
			rec.Text(storex.FieldItemName, "Unknown"),
			rec.Number(storex.FieldQuantity, 0),
			unit,
			rec.Text(storex.FieldPrice, "0"),
			unit,
			rec.Text(storex.FieldCategory, "N/A"),
		)
	}
	return b.String()
}

func (r *Registry) updateFoodStock(ctx context.Context, args map[string]any) string {
	itemName := textArg(args, "item_name")
	if itemName == "" {
		return "An item name is required to update stock."
	}
	quantity, ok := intArg(args, "new_quantity")
	if !ok {
		return "A numeric new_quantity is required to update stock."
	}

	row, err := r.store.FindRow(ctx, storex.CollectionStocks, itemName)
	if err != nil {
		if errors.Is(err, storex.ErrRowNotFound) {
			return fmt.Sprintf("❌ Item '%s' was not found in stock.", itemName)
		}
		return "Unable to update stock right now. Please try again later."
	}

	qtyCol := storex.ColumnIndex(storex.CollectionStocks, "Quantity")
	if err := r.store.UpdateCell(ctx, storex.CollectionStocks, row, qtyCol, quantity); err != nil {
		return "Unable to update stock right now. Please try again later."
	}

	dateCol := storex.ColumnIndex(storex.CollectionStocks, "Last Updated")
	if err := r.store.UpdateCell(ctx, storex.CollectionStocks, row, dateCol, r.now().Format("2006-01-02")); err != nil {
		return "Unable to update stock right now. Please try again later."
	}

	return fmt.Sprintf("✅ Stock updated: %s quantity set to %d", itemName, quantity)
}
