package store

import (
	"context"
	"errors"
)

// Collection names mirror the worksheet titles of the backing spreadsheet.
const (
	CollectionMenu   = "Menu"
	CollectionStocks = "Stocks"
	CollectionOrders = "Orders"
	CollectionFAQs   = "FAQs"
)

var (
	ErrRowNotFound       = errors.New("row not found")
	ErrCollectionMissing = errors.New("collection missing")

	// ErrResourceMissing means the backing resource itself (the spreadsheet,
	// not a worksheet) does not exist or is not shared with the credentials.
	ErrResourceMissing = errors.New("backing resource missing")
)

// Store is the row-oriented persistence contract consumed by the tool layer.
// Row and column indexes are 1-based and count data rows only (the header
// row is not addressable).
type Store interface {
	// Records returns every data row of a collection as a field mapping.
	Records(ctx context.Context, collection string) ([]Record, error)

	// AppendRow appends one positional row after the last data row.
	AppendRow(ctx context.Context, collection string, row []any) error

	// FindRow returns the index of the first data row containing a cell
	// whose value matches exactly. Returns ErrRowNotFound when absent.
	FindRow(ctx context.Context, collection string, value string) (int, error)

	// UpdateCell overwrites a single cell.
	UpdateCell(ctx context.Context, collection string, row, col int, value any) error
}

// collectionHeaders is the canonical column layout per collection. The
// spreadsheet backend reads real headers from row 1; the relational backend
// and positional writes rely on this table.
var collectionHeaders = map[string][]string{
	CollectionMenu:   {"Dish Name", "Price (INR)", "Category"},
	CollectionStocks: {"Item Name", "Category", "Quantity", "Unit", "Price", "Last Updated"},
	CollectionOrders: {"Order ID", "Customer Name", "Items", "Total", "Status", "Timestamp"},
	CollectionFAQs:   {"Question", "Answer", "Category"},
}

// Headers returns the canonical column layout for a collection, or nil for
// an unknown collection.
func Headers(collection string) []string {
	return collectionHeaders[collection]
}

// ColumnIndex returns the 1-based position of a canonical header within a
// collection, or 0 when the header is not part of the layout.
func ColumnIndex(collection, header string) int {
	for i, h := range collectionHeaders[collection] {
		if h == header {
			return i + 1
		}
	}
	return 0
}
