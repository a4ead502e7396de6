package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	storex "github.com/nileshdh/restaurant-agent/agent/store"
)

func (r *Registry) lookupMenu(ctx context.Context, args map[string]any) string {
	records, err := r.store.Records(ctx, storex.CollectionMenu)
	if errors.Is(err, storex.ErrCollectionMissing) {
		// Some deployments keep prices on the Stocks worksheet only.
		records, err = r.store.Records(ctx, storex.CollectionStocks)
	}
	if err != nil {
		return "Unable to fetch the menu right now. Please try again later."
	}
	if len(records) == 0 {
		return "Menu is currently unavailable. Please try again later."
	}

	category := textArg(args, "category")
	if category != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			if strings.EqualFold(rec.Text(storex.FieldCategory, ""), category) {
				filtered = append(filtered, rec)
			}
		}
		if len(filtered) == 0 {
			return fmt.Sprintf("No menu items found in the %q category.", category)
		}
		records = filtered
	}

	var b strings.Builder
	b.WriteString("**Our Menu:**\n\n")
	for _, rec := range records {
		name := rec.Text(storex.FieldDishName, "Unknown")
		price := rec.Text(storex.FieldPrice, "0")
		fmt.Fprintf(&b, "- %s: ₹%s\n", name, price)
	}
	return b.String()
}
