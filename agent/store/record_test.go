package store

import "testing"

func TestRecordTextAliasPriority(t *testing.T) {
	t.Parallel()

	rec := Record{
		"Name":      "Paneer Tikka",
		"Dish Name": "Butter Chicken",
	}
	// "Dish Name" outranks "Name" in the alias order.
	if got := rec.Text(FieldDishName, "Unknown"); got != "Butter Chicken" {
		t.Fatalf("unexpected dish name: %q", got)
	}
}

func TestRecordTextSkipsBlankValues(t *testing.T) {
	t.Parallel()

	rec := Record{
		"Price (INR)": "   ",
		"Price":       250,
	}
	if got := rec.Text(FieldPrice, "0"); got != "250" {
		t.Fatalf("unexpected price: %q", got)
	}
}

func TestRecordTextFallback(t *testing.T) {
	t.Parallel()

	rec := Record{"Something Else": "x"}
	if got := rec.Text(FieldDishName, "Unknown"); got != "Unknown" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestRecordNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  Record
		want float64
	}{
		{"float", Record{"Quantity": 50.0}, 50},
		{"int", Record{"Quantity": 50}, 50},
		{"string", Record{"Quantity": " 50 "}, 50},
		{"alias", Record{"Qty": "12.5"}, 12.5},
		{"missing", Record{}, 0},
		{"garbage", Record{"Quantity": "plenty"}, 0},
	}
	for _, tc := range cases {
		if got := tc.rec.Number(FieldQuantity, 0); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestColumnIndex(t *testing.T) {
	t.Parallel()

	if got := ColumnIndex(CollectionStocks, "Quantity"); got != 3 {
		t.Fatalf("quantity column: got %d, want 3", got)
	}
	if got := ColumnIndex(CollectionStocks, "Last Updated"); got != 6 {
		t.Fatalf("last updated column: got %d, want 6", got)
	}
	if got := ColumnIndex(CollectionStocks, "Nope"); got != 0 {
		t.Fatalf("unknown header: got %d, want 0", got)
	}
	if got := ColumnIndex("NoSuchCollection", "Quantity"); got != 0 {
		t.Fatalf("unknown collection: got %d, want 0", got)
	}
}
