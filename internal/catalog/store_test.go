package catalog

import (
	"path/filepath"
	"testing"
)

func openSeeded(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.sqlite"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.SeedIfEmpty(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSeedPopulatesEveryKind(t *testing.T) {
	store := openSeeded(t)
	counts, err := store.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	for _, kind := range Kinds {
		if counts[kind] == 0 {
			t.Errorf("kind %s seeded empty", kind)
		}
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	store := openSeeded(t)
	before, _ := store.Counts()
	if err := store.SeedIfEmpty(); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	after, _ := store.Counts()
	if before["products"] != after["products"] {
		t.Fatalf("product count changed: %d != %d", before["products"], after["products"])
	}
}

func TestProductsRowShape(t *testing.T) {
	store := openSeeded(t)
	rows, err := store.Products()
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 products, got %d", len(rows))
	}
	first := rows[0]
	if first["name"] != "Cotton T-Shirt" {
		t.Errorf("name = %v", first["name"])
	}
	if first["nameAr"] != "قميص قطني" {
		t.Errorf("nameAr = %v", first["nameAr"])
	}
	colors, ok := first["colors"].([]string)
	if !ok || len(colors) != 2 {
		t.Fatalf("colors = %v", first["colors"])
	}
	if colors[0] != "#1e90ff" {
		t.Errorf("colors[0] = %q", colors[0])
	}
	if _, ok := first["price"].(float64); !ok {
		t.Errorf("price has type %T", first["price"])
	}
	if _, ok := first["stock"].(int64); !ok {
		t.Errorf("stock has type %T", first["stock"])
	}
}

func TestOrdersNewestFirst(t *testing.T) {
	store := openSeeded(t)
	rows, err := store.Orders()
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("expected seeded orders, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		prev, _ := rows[i-1]["date"].(string)
		cur, _ := rows[i]["date"].(string)
		if cur > prev {
			t.Fatalf("orders out of order: %s before %s", prev, cur)
		}
	}
}

func TestSetStatus(t *testing.T) {
	store := openSeeded(t)
	rows, _ := store.Products()
	id := rows[0]["id"].(int64)

	if err := store.SetStatus("products", id, "Inactive"); err != nil {
		t.Fatalf("set status: %v", err)
	}
	rows, _ = store.Products()
	if rows[0]["status"] != "Inactive" {
		t.Fatalf("status = %v", rows[0]["status"])
	}
}

func TestSetStatusUnknownKind(t *testing.T) {
	store := openSeeded(t)
	if err := store.SetStatus("users", 1, "Active"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestDelete(t *testing.T) {
	store := openSeeded(t)
	rows, _ := store.Testimonials()
	id := rows[0]["id"].(int64)

	if err := store.Delete("testimonials", id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	after, _ := store.Testimonials()
	if len(after) != len(rows)-1 {
		t.Fatalf("expected %d rows after delete, got %d", len(rows)-1, len(after))
	}
}

func TestReseedRestoresDeletedRows(t *testing.T) {
	store := openSeeded(t)
	rows, _ := store.Orders()
	for _, row := range rows {
		if err := store.Delete("orders", row["id"].(int64)); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}
	if err := store.Reseed(); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	rows, _ = store.Orders()
	if len(rows) == 0 {
		t.Fatal("reseed left orders empty")
	}
}

func TestSplitColors(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"#fff", 1},
		{"#fff,#000", 2},
		{" #fff , , #000 ", 2},
	}
	for _, tc := range cases {
		if got := splitColors(tc.in); len(got) != tc.want {
			t.Errorf("splitColors(%q) = %v", tc.in, got)
		}
	}
}
