package store

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
)

func TestNewPostgresStoreRequiresDSN(t *testing.T) {
	t.Parallel()

	_, err := NewPostgresStore(PostgresConfig{DSN: "   "})
	if !errors.Is(err, contractx.ErrConfiguration) {
		t.Fatalf("expected configuration error for blank dsn, got %v", err)
	}
}

func TestRecordFromRow(t *testing.T) {
	t.Parallel()

	headers := Headers(CollectionOrders)
	rec := recordFromRow(headers, []any{"ORD-003", "Asha", "2x Dal Makhani", 440.0, "Pending", "2025-06-15 12:30:00"})

	if got := rec.Text(FieldOrderID, ""); got != "ORD-003" {
		t.Fatalf("unexpected order id: %q", got)
	}
	if got := rec.Text(FieldStatus, ""); got != "Pending" {
		t.Fatalf("unexpected status: %q", got)
	}
	if got := rec.Number(FieldTotal, 0); got != 440 {
		t.Fatalf("unexpected total: %v", got)
	}
}

func TestRecordFromRowPadsShortRows(t *testing.T) {
	t.Parallel()

	headers := Headers(CollectionStocks)
	rec := recordFromRow(headers, []any{"Basmati Rice", "Grains"})

	if len(rec) != len(headers) {
		t.Fatalf("expected %d fields, got %d", len(headers), len(rec))
	}
	if got, ok := rec["Quantity"]; !ok || got != "" {
		t.Fatalf("missing cell should be padded with empty string, got %v (present=%v)", got, ok)
	}

	// Extra cells beyond the layout are dropped.
	rec = recordFromRow(headers, []any{"Basmati Rice", "Grains", 50, "kg", 80, "2025-06-15", "surplus"})
	if len(rec) != len(headers) {
		t.Fatalf("expected %d fields, got %d", len(headers), len(rec))
	}
}

func TestPostgresAppendRowRejectsUnknownCollection(t *testing.T) {
	t.Parallel()

	s := &PostgresStore{}
	err := s.AppendRow(context.Background(), "Reservations", []any{"x"})
	if !errors.Is(err, ErrCollectionMissing) {
		t.Fatalf("expected collection-missing error, got %v", err)
	}
}

func TestPostgresUpdateCellValidatesTarget(t *testing.T) {
	t.Parallel()

	s := &PostgresStore{}
	if err := s.UpdateCell(context.Background(), "Reservations", 1, 1, "x"); !errors.Is(err, ErrCollectionMissing) {
		t.Fatalf("expected collection-missing error, got %v", err)
	}
	if err := s.UpdateCell(context.Background(), CollectionOrders, 1, 0, "x"); err == nil {
		t.Fatal("expected error for column 0")
	}
	if err := s.UpdateCell(context.Background(), CollectionOrders, 1, 7, "x"); err == nil {
		t.Fatal("expected error for column past the layout")
	}
}
