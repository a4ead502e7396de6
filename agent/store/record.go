package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one data row keyed by column header. Cell values keep whatever
// scalar type the backend produced (string, float64, int, bool).
type Record map[string]any

// FieldAliases is an ordered list of accepted column headers for one logical
// field. The backing spreadsheet's headers are not strictly standardized, so
// readers try each alias in priority order instead of failing.
type FieldAliases []string

var (
	FieldDishName  = FieldAliases{"Dish Name", "Item Name", "Name", "Dish"}
	FieldPrice     = FieldAliases{"Price (INR)", "Price", "Rate"}
	FieldItemName  = FieldAliases{"Item Name", "Name", "Item"}
	FieldQuantity  = FieldAliases{"Quantity", "Qty"}
	FieldUnit      = FieldAliases{"Unit", "Units"}
	FieldCategory  = FieldAliases{"Category", "Type"}
	FieldOrderID   = FieldAliases{"Order ID", "OrderID", "ID"}
	FieldCustomer  = FieldAliases{"Customer Name", "Customer"}
	FieldItems     = FieldAliases{"Items", "Order Items"}
	FieldTotal     = FieldAliases{"Total", "Total (INR)", "Amount"}
	FieldStatus    = FieldAliases{"Status", "Order Status"}
	FieldTimestamp = FieldAliases{"Timestamp", "Time", "Date"}
	FieldQuestion  = FieldAliases{"Question", "Q"}
	FieldAnswer    = FieldAliases{"Answer", "A"}
)

// Text resolves the first alias with a non-blank value, or the fallback.
func (r Record) Text(field FieldAliases, fallback string) string {
	for _, alias := range field {
		v, ok := r[alias]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
			return s
		}
	}
	return fallback
}

// Number resolves the first alias holding a numeric value, or the fallback.
func (r Record) Number(field FieldAliases, fallback float64) float64 {
	for _, alias := range field {
		v, ok := r[alias]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case float32:
			return float64(n)
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return parsed
			}
		}
	}
	return fallback
}
