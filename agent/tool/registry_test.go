package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
	storex "github.com/nileshdh/restaurant-agent/agent/store"
)

type appendedRow struct {
	collection string
	row        []any
}

type cellUpdate struct {
	collection string
	row        int
	col        int
	value      any
}

type fakeStore struct {
	collections map[string][]storex.Record
	missing     map[string]bool

	recordsErr error
	appendErr  error
	updateErr  error

	appended []appendedRow
	updated  []cellUpdate
}

func (f *fakeStore) Records(ctx context.Context, collection string) ([]storex.Record, error) {
	if f.missing[collection] {
		return nil, fmt.Errorf("%w: %s", storex.ErrCollectionMissing, collection)
	}
	if f.recordsErr != nil {
		return nil, f.recordsErr
	}
	return f.collections[collection], nil
}

func (f *fakeStore) AppendRow(ctx context.Context, collection string, row []any) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, appendedRow{collection: collection, row: row})

	// Mirror the append so subsequent Records calls see the new row.
	headers := storex.Headers(collection)
	rec := make(storex.Record, len(headers))
	for i, header := range headers {
		if i < len(row) {
			rec[header] = row[i]
		}
	}
	if f.collections == nil {
		f.collections = map[string][]storex.Record{}
	}
	f.collections[collection] = append(f.collections[collection], rec)
	return nil
}

func (f *fakeStore) FindRow(ctx context.Context, collection string, value string) (int, error) {
	if f.missing[collection] {
		return 0, fmt.Errorf("%w: %s", storex.ErrCollectionMissing, collection)
	}
	for i, rec := range f.collections[collection] {
		for _, cell := range rec {
			if strings.TrimSpace(fmt.Sprint(cell)) == strings.TrimSpace(value) {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", storex.ErrRowNotFound, value)
}

func (f *fakeStore) UpdateCell(ctx context.Context, collection string, row, col int, value any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, cellUpdate{collection: collection, row: row, col: col, value: value})
	return nil
}

func newTestRegistry(t *testing.T, st storex.Store) *Registry {
	t.Helper()
	fixed := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	r, err := NewRegistry(st, WithClock(func() time.Time { return fixed }))
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return r
}

func TestNewRegistryRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewRegistry(nil); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func TestCallUnknownTool(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t, &fakeStore{})
	_, err := r.Call(context.Background(), "delete_everything", nil)
	if !errors.Is(err, contractx.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestInfosCoverEveryTool(t *testing.T) {
	t.Parallel()

	infos := Infos()
	if len(infos) != 6 {
		t.Fatalf("expected 6 tool infos, got %d", len(infos))
	}
	want := map[string]bool{
		ToolLookupMenu:      false,
		ToolCheckFoodStock:  false,
		ToolGetOrderStatus:  false,
		ToolPlaceOrder:      false,
		ToolSearchFAQs:      false,
		ToolUpdateFoodStock: false,
	}
	for _, info := range infos {
		if _, ok := want[info.Name]; !ok {
			t.Fatalf("unexpected tool %q", info.Name)
		}
		want[info.Name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("tool %q missing from schema list", name)
		}
	}
}
