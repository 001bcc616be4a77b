package datatable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// utf8BOM keeps Arabic headers and cells intact when the CSV is opened
// in common spreadsheet tools.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportCSV writes the given rows to a timestamped CSV file under dir.
// Headers are the localized column labels, matching what the user sees
// on screen, and columns hidden in the table are absent here too —
// callers pass the visible column list.
func ExportCSV(rows []Row, columns []Column, lang Lang, dir string) (string, error) {
	if len(rows) == 0 {
		return "", errors.New("no rows to export")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, exportFileName("csv"))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(utf8BOM); err != nil {
		return "", err
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(headerLabels(columns, lang)); err != nil {
		return "", err
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = ExportValue(col, row)
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// ExportXLSX writes the rows to a timestamped .xlsx workbook under dir,
// with the same localized-header projection as ExportCSV.
func ExportXLSX(rows []Row, columns []Column, lang Lang, dir string) (string, error) {
	if len(rows) == 0 {
		return "", errors.New("no rows to export")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, exportFileName("xlsx"))

	book := excelize.NewFile()
	defer book.Close()
	sheet := book.GetSheetName(0)

	for i, label := range headerLabels(columns, lang) {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := book.SetCellValue(sheet, cell, label); err != nil {
			return "", err
		}
	}
	for r, row := range rows {
		for c, col := range columns {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return "", err
			}
			if err := book.SetCellValue(sheet, cell, ExportValue(col, row)); err != nil {
				return "", err
			}
		}
	}

	if err := book.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

func headerLabels(columns []Column, lang Lang) []string {
	labels := make([]string, len(columns))
	for i, col := range columns {
		labels[i] = col.Label.In(lang)
	}
	return labels
}

func exportFileName(ext string) string {
	return fmt.Sprintf("table-%s.%s", time.Now().UTC().Format("20060102-150405"), ext)
}
