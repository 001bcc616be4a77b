package datatable

import (
	"reflect"
	"testing"
)

func TestSortNumericAscending(t *testing.T) {
	rows := []Row{
		{"id": 1, "price": 300},
		{"id": 2, "price": 100},
		{"id": 3, "price": 200},
	}
	columns := []Column{{Key: "price", Type: TypeNumber}}
	got := Sort(rows, &SortConfig{Key: "price", Direction: Ascending}, columns, LangEn)
	if want := []int{2, 3, 1}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("asc ids = %v, want %v", ids(got), want)
	}
}

func TestSortNilConfigKeepsOrder(t *testing.T) {
	rows := productRows()
	got := Sort(rows, nil, productColumns(), LangEn)
	if !reflect.DeepEqual(ids(got), ids(rows)) {
		t.Fatalf("nil config reordered rows: %v", ids(got))
	}
	// Fresh slice, not an alias.
	got[0] = Row{"id": 99}
	if ids(rows)[0] == 99 {
		t.Fatal("Sort returned the input slice")
	}
}

func TestSortStability(t *testing.T) {
	rows := []Row{
		{"id": 1, "group": "b"},
		{"id": 2, "group": "a"},
		{"id": 3, "group": "b"},
		{"id": 4, "group": "a"},
	}
	columns := []Column{{Key: "group"}}

	asc := Sort(rows, &SortConfig{Key: "group", Direction: Ascending}, columns, LangEn)
	if want := []int{2, 4, 1, 3}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("asc ids = %v, want %v", ids(asc), want)
	}
	desc := Sort(rows, &SortConfig{Key: "group", Direction: Descending}, columns, LangEn)
	if want := []int{1, 3, 2, 4}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("desc ids = %v, want %v", ids(desc), want)
	}
}

func TestSortRoundTrip(t *testing.T) {
	rows := productRows()
	columns := productColumns()
	asc := Sort(rows, &SortConfig{Key: "price", Direction: Ascending}, columns, LangEn)
	desc := Sort(asc, &SortConfig{Key: "price", Direction: Descending}, columns, LangEn)

	ascIDs := ids(asc)
	descIDs := ids(desc)
	for i := range ascIDs {
		if descIDs[i] != ascIDs[len(ascIDs)-1-i] {
			t.Fatalf("desc %v is not the reverse of asc %v", descIDs, ascIDs)
		}
	}
}

func TestSortStringTrimsAndIgnoresCase(t *testing.T) {
	rows := []Row{
		{"id": 1, "name": "  banana"},
		{"id": 2, "name": "Apple"},
		{"id": 3, "name": "cherry "},
	}
	columns := []Column{{Key: "name"}}
	got := Sort(rows, &SortConfig{Key: "name", Direction: Ascending}, columns, LangEn)
	if want := []int{2, 1, 3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("ids = %v, want %v", ids(got), want)
	}
}

func TestSortNumberCoercionFailures(t *testing.T) {
	rows := []Row{
		{"id": 1, "price": "not a number"},
		{"id": 2, "price": 50},
		{"id": 3, "price": "n/a"},
		{"id": 4, "price": 10},
	}
	columns := []Column{{Key: "price", Type: TypeNumber}}

	// Failed coercions compare greater than every real number and equal
	// to each other, keeping their relative order.
	asc := Sort(rows, &SortConfig{Key: "price", Direction: Ascending}, columns, LangEn)
	if want := []int{4, 2, 1, 3}; !reflect.DeepEqual(ids(asc), want) {
		t.Fatalf("asc ids = %v, want %v", ids(asc), want)
	}
	desc := Sort(rows, &SortConfig{Key: "price", Direction: Descending}, columns, LangEn)
	if want := []int{1, 3, 2, 4}; !reflect.DeepEqual(ids(desc), want) {
		t.Fatalf("desc ids = %v, want %v", ids(desc), want)
	}
}

func TestSortMixedValuesWithoutDeclaredType(t *testing.T) {
	rows := []Row{
		{"id": 1, "v": "apple"},
		{"id": 2, "v": 7},
		{"id": 3, "v": "Banana"},
		{"id": 4, "v": 3},
	}
	columns := []Column{{Key: "v"}}

	// Numbers sort before strings when the column carries no type.
	got := Sort(rows, &SortConfig{Key: "v", Direction: Ascending}, columns, LangEn)
	if want := []int{4, 2, 1, 3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("mixed ids = %v, want %v", ids(got), want)
	}
}

func TestSortToggled(t *testing.T) {
	var cfg *SortConfig

	cfg = cfg.Toggled("price")
	if cfg.Key != "price" || cfg.Direction != Ascending {
		t.Fatalf("first toggle = %+v", cfg)
	}
	cfg = cfg.Toggled("price")
	if cfg.Direction != Descending {
		t.Fatalf("second toggle = %+v", cfg)
	}
	cfg = cfg.Toggled("name")
	if cfg.Key != "name" || cfg.Direction != Ascending {
		t.Fatalf("new key toggle = %+v", cfg)
	}
}
