package datatable

import "testing"

func TestSummarizeSkipsEmptyValues(t *testing.T) {
	filters := FilterState{"status": "Paid", "name": ""}
	chips := SummarizeFilters(filters, productColumns(), LangEn)
	if len(chips) != 1 || chips[0].Key != "status" {
		t.Fatalf("chips = %+v", chips)
	}
	if chips[0].Label != "Status" || chips[0].Value != "Paid" {
		t.Fatalf("chip = %+v", chips[0])
	}
}

func TestSummarizeCollapsesRangePair(t *testing.T) {
	filters := FilterState{
		"date_from": "2025-05-01",
		"date_to":   "2025-05-31",
	}
	chips := SummarizeFilters(filters, productColumns(), LangEn)
	if len(chips) != 1 {
		t.Fatalf("range pair produced %d chips", len(chips))
	}
	if chips[0].Key != "date" || chips[0].Value != "2025-05-01 – 2025-05-31" {
		t.Fatalf("chip = %+v", chips[0])
	}
}

func TestSummarizeSingleSidedRange(t *testing.T) {
	chips := SummarizeFilters(FilterState{"date_from": "2025-05-01"}, productColumns(), LangEn)
	if len(chips) != 1 || chips[0].Value != "from 2025-05-01" {
		t.Fatalf("chips = %+v", chips)
	}

	// A lone _to never renders its own chip; it folds into one chip
	// keyed by the base column.
	chips = SummarizeFilters(FilterState{"date_to": "2025-05-31"}, productColumns(), LangEn)
	if len(chips) != 1 {
		t.Fatalf("lone _to produced %d chips", len(chips))
	}
	if chips[0].Key != "date" || chips[0].Value != "to 2025-05-31" {
		t.Fatalf("chip = %+v", chips[0])
	}
}

func TestSummarizeArabicLabels(t *testing.T) {
	chips := SummarizeFilters(FilterState{"date_to": "2025-05-31"}, productColumns(), LangAr)
	if len(chips) != 1 || chips[0].Label != "التاريخ" || chips[0].Value != "إلى 2025-05-31" {
		t.Fatalf("chips = %+v", chips)
	}
}

func TestRemoveChipClearsRangePair(t *testing.T) {
	filters := FilterState{
		"date_from": "2025-05-01",
		"date_to":   "2025-05-31",
		"status":    "Paid",
	}
	got := RemoveChip(filters, "date")
	if _, ok := got["date_from"]; ok {
		t.Fatal("date_from survived RemoveChip")
	}
	if _, ok := got["date_to"]; ok {
		t.Fatal("date_to survived RemoveChip")
	}
	if got["status"] != "Paid" {
		t.Fatal("unrelated filter lost")
	}
	if filters["date_from"] == "" {
		t.Fatal("RemoveChip mutated its input")
	}
}

func TestClearFiltersIsEmpty(t *testing.T) {
	if got := ClearFilters(); len(got) != 0 {
		t.Fatalf("ClearFilters = %v", got)
	}
}
