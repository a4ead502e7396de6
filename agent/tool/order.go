package tool

import (
	"context"
	"fmt"
	"strings"

	storex "github.com/nileshdh/restaurant-agent/agent/store"
)

func (r *Registry) getOrderStatus(ctx context.Context, args map[string]any) string {
	records, err := r.store.Records(ctx, storex.CollectionOrders)
	if err != nil {
		return "Unable to fetch order information right now. Please try again later."
	}

	if status := textArg(args, "status_filter"); status != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			if strings.EqualFold(rec.Text(storex.FieldStatus, ""), status) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		return "No orders found."
	}

	if orderID := textArg(args, "order_id"); orderID != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			if strings.EqualFold(rec.Text(storex.FieldOrderID, ""), orderID) {
				filtered = append(filtered, rec)
			}
		}
		if len(filtered) == 0 {
			return fmt.Sprintf("Order %s not found.", orderID)
		}
		records = filtered
	}

	var b strings.Builder
	b.WriteString("**Orders:**\n\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "- Order ID: %s\n", rec.Text(storex.FieldOrderID, "N/A"))
		fmt.Fprintf(&b, "  Customer: %s\n", rec.Text(storex.FieldCustomer, "N/A"))
		fmt.Fprintf(&b, "  Items: %s\n", rec.Text(storex.FieldItems, "N/A"))
		fmt.Fprintf(&b, "  Total: ₹%s\n", rec.Text(storex.FieldTotal, "0"))
		fmt.Fprintf(&b, "  Status: %s\n", rec.Text(storex.FieldStatus, "N/A"))
		fmt.Fprintf(&b, "  Time: %s\n\n", rec.Text(storex.FieldTimestamp, "N/A"))
	}
	return b.String()
}

func (r *Registry) placeOrder(ctx context.Context, args map[string]any) string {
	customer := textArg(args, "customer_name")
	if customer == "" {
		return "A customer name is required to place an order."
	}
	items := textArg(args, "items")
	if items == "" {
		return "At least one item is required to place an order."
	}
	total, ok := floatArg(args, "total")
	if !ok {
		return "A numeric order total is required to place an order."
	}

	// Sequential id from the current row count. Not atomic; see DESIGN.md.
	records, err := r.store.Records(ctx, storex.CollectionOrders)
	if err != nil {
		return "Unable to place the order right now. Please try again later."
	}
	orderID := fmt.Sprintf("ORD-%03d", len(records)+1)
	timestamp := r.now().Format("2006-01-02 15:04:05")

	row := []any{orderID, customer, items, total, "Pending", timestamp}
	if err := r.store.AppendRow(ctx, storex.CollectionOrders, row); err != nil {
		return "❌ Failed to place order. Please try again."
	}

	return fmt.Sprintf(
		"✅ Order placed successfully!\n\nCustomer: %s\nItems: %s\nTotal: ₹%v\nStatus: Pending",
		customer, items, total,
	)
}
