package datatable

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func exportColumns() []Column {
	return []Column{
		{Key: "name", Label: Label{En: "Name", Ar: "الاسم"}},
		{Key: "price", Label: Label{En: "Price", Ar: "السعر"}, Type: TypeNumber},
	}
}

func TestExportCSVWritesBOMAndLocalizedHeaders(t *testing.T) {
	rows := []Row{
		{"name": "قميص", "price": 120},
		{"name": "Mug", "price": 35},
	}
	path, err := ExportCSV(rows, exportColumns(), LangAr, t.TempDir())
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("CSV missing UTF-8 BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))).ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("export has %d records", len(records))
	}
	if records[0][0] != "الاسم" || records[0][1] != "السعر" {
		t.Fatalf("headers = %v", records[0])
	}
	if records[1][0] != "قميص" || records[1][1] != "120" {
		t.Fatalf("first row = %v", records[1])
	}
}

func TestExportCSVRespectsVisibleColumns(t *testing.T) {
	rows := []Row{{"name": "Mug", "price": 35, "secret": "hidden"}}
	path, err := ExportCSV(rows, exportColumns(), LangEn, t.TempDir())
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Fatal("export leaked a column outside the visible list")
	}
}

func TestExportCSVEmptyRows(t *testing.T) {
	if _, err := ExportCSV(nil, exportColumns(), LangEn, t.TempDir()); err == nil {
		t.Fatal("expected an error for an empty export")
	}
}

func TestExportXLSXHeaders(t *testing.T) {
	rows := []Row{{"name": "Mug", "price": 35}}
	path, err := ExportXLSX(rows, exportColumns(), LangEn, t.TempDir())
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	book, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	got, err := book.GetCellValue(sheet, "A1")
	if err != nil || got != "Name" {
		t.Fatalf("A1 = %q, err %v", got, err)
	}
	if got, _ := book.GetCellValue(sheet, "B2"); got != "35" {
		t.Fatalf("B2 = %q", got)
	}
}
