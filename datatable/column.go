// Package datatable implements a generic tabular data component for
// bubbletea programs: declarative columns over schemaless rows, with
// free-text search, per-column filters, type-aware sorting, pagination,
// user-controlled column visibility and CSV/XLSX export.
package datatable

// Row is an open-ended record. Values may be strings, numbers, bools or
// []string (multi-value cells such as product color lists). The engine
// never mutates a row.
type Row map[string]any

// Lang selects which half of a Label is displayed.
type Lang string

const (
	LangEn Lang = "en"
	LangAr Lang = "ar"
)

// TextDirection is threaded through rendering so the same table can be
// laid out for LTR and RTL locales.
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// Label carries the bilingual display strings for a column header.
type Label struct {
	En string
	Ar string
}

func (l Label) In(lang Lang) string {
	if lang == LangAr && l.Ar != "" {
		return l.Ar
	}
	return l.En
}

// CellType governs default cell rendering and sort comparison. TypeAuto
// (the zero value) renders as plain text and detects numeric sort mode
// from the runtime values.
type CellType int

const (
	TypeAuto CellType = iota
	TypeText
	TypeNumber
	TypeDate
	TypeImage
	TypeColor
	TypeLink
	TypeStatus
)

// Align positions cell content. The zero value centers, matching the
// table's default.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Column describes one table column.
type Column struct {
	Key   string
	Label Label
	Type  CellType
	Align Align

	// Hidden is the initial visibility. Locked columns can never be
	// hidden by the user. NoControls suppresses the sort/filter/hide
	// affordances entirely (used for the actions column).
	Hidden     bool
	Locked     bool
	NoControls bool

	// Render, when set, overrides the type-based default renderer.
	Render func(value any, row Row) string
}

func columnByKey(columns []Column, key string) (Column, bool) {
	for _, col := range columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column{}, false
}
