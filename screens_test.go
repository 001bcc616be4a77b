package main

import (
	"strings"
	"testing"

	"github.com/Maishelbayeh/BringUs-sub000/datatable"
	"github.com/Maishelbayeh/BringUs-sub000/internal/catalog"
)

func TestScreenKeysMatchCatalogKinds(t *testing.T) {
	screens := dashboardScreens()
	if len(screens) != len(catalog.Kinds) {
		t.Fatalf("expected %d screens, got %d", len(catalog.Kinds), len(screens))
	}
	for i, sc := range screens {
		if sc.key != catalog.Kinds[i] {
			t.Errorf("screen %d key = %q, want %q", i, sc.key, catalog.Kinds[i])
		}
	}
}

func TestEveryScreenHasAnchorColumn(t *testing.T) {
	for _, sc := range dashboardScreens() {
		locked := false
		for _, col := range sc.columns {
			if col.Locked {
				locked = true
			}
			if col.Label.En == "" || col.Label.Ar == "" {
				t.Errorf("%s/%s missing a label translation", sc.key, col.Key)
			}
		}
		if !locked {
			t.Errorf("screen %s has no locked column", sc.key)
		}
		if sc.load == nil {
			t.Errorf("screen %s has no loader", sc.key)
		}
	}
}

func TestOrderSummaryTotalsFilteredRows(t *testing.T) {
	rows := []datatable.Row{
		{"total": 100.0, "status": "Paid"},
		{"total": 50.0, "status": "Unpaid"},
		{"total": 25.5, "status": "Paid"},
	}
	got := orderSummary(rows, datatable.LangEn)
	if !strings.Contains(got, "175.50") {
		t.Errorf("summary missing total: %q", got)
	}
	if !strings.Contains(got, "3 orders") || !strings.Contains(got, "2 paid") {
		t.Errorf("summary missing counts: %q", got)
	}
}

func TestOrderSummaryArabic(t *testing.T) {
	rows := []datatable.Row{{"total": 10.0, "status": "مدفوع"}}
	got := orderSummary(rows, datatable.LangAr)
	if !strings.Contains(got, "10.00") {
		t.Errorf("summary = %q", got)
	}
}

func TestAffiliateSummaryCountsOnlyUnpaid(t *testing.T) {
	rows := []datatable.Row{
		{"balance": 320.0, "status": "Unpaid"},
		{"balance": 75.5, "status": "Paid"},
		{"balance": 10.0, "status": "Unpaid"},
	}
	got := affiliateSummary(rows, datatable.LangEn)
	if !strings.Contains(got, "330.00") {
		t.Errorf("summary = %q", got)
	}
}

func TestProductPreviewUsesArabicName(t *testing.T) {
	row := datatable.Row{
		"name":        "Ceramic Mug",
		"nameAr":      "كوب سيراميك",
		"category":    "Kitchen",
		"price":       35.0,
		"stock":       int64(42),
		"status":      "Active",
		"description": "Hand-glazed.",
	}
	en := productPreview(row, datatable.LangEn)
	if !strings.Contains(en, "Ceramic Mug") || !strings.Contains(en, "Hand-glazed.") {
		t.Errorf("en preview = %q", en)
	}
	ar := productPreview(row, datatable.LangAr)
	if !strings.Contains(ar, "كوب سيراميك") {
		t.Errorf("ar preview = %q", ar)
	}
}

func TestOrderPreviewIncludesNotes(t *testing.T) {
	row := datatable.Row{
		"number": "ORD-1041", "customer": "Ahmed Ali", "date": "2025-05-15",
		"items": int64(3), "total": 214.0, "status": "Paid", "notes": "Gift wrap requested.",
	}
	got := orderPreview(row, datatable.LangEn)
	if !strings.Contains(got, "ORD-1041") || !strings.Contains(got, "> Gift wrap requested.") {
		t.Errorf("preview = %q", got)
	}
}

func TestNextStatus(t *testing.T) {
	cases := map[string]string{
		"Active":    "Inactive",
		"Inactive":  "Active",
		"Paid":      "Unpaid",
		"Unpaid":    "Paid",
		"مدفوع":     "Unpaid",
		"نشط":       "Inactive",
		"غير نشط":   "Active",
		"غير مدفوع": "Paid",
		"weird":     "Active",
	}
	for in, want := range cases {
		if got := nextStatus(in); got != want {
			t.Errorf("nextStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
