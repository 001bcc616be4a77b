package datatable

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDirection only ever takes Ascending or Descending; a nil
// *SortConfig is the single unsorted state.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortConfig names the active sort column and direction. At most one
// column sorts at a time.
type SortConfig struct {
	Key       string
	Direction SortDirection
}

// Toggled returns the config produced by activating the sort control of
// key: a new key starts ascending, the current key flips direction.
func (c *SortConfig) Toggled(key string) *SortConfig {
	if c == nil || c.Key != key {
		return &SortConfig{Key: key, Direction: Ascending}
	}
	next := Ascending
	if c.Direction == Ascending {
		next = Descending
	}
	return &SortConfig{Key: key, Direction: next}
}

var (
	collatorMu  sync.Mutex
	collators   = map[Lang]*collate.Collator{}
	collatorTag = map[Lang]language.Tag{
		LangEn: language.English,
		LangAr: language.Arabic,
	}
)

func collatorFor(lang Lang) *collate.Collator {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	if c, ok := collators[lang]; ok {
		return c
	}
	tag, ok := collatorTag[lang]
	if !ok {
		tag = language.English
	}
	c := collate.New(tag, collate.IgnoreCase)
	collators[lang] = c
	return c
}

// Sort orders rows by the given config and returns a fresh slice; the
// input order is never disturbed and ties keep their relative order. A
// nil config returns a copy in the original order.
//
// Numeric mode applies when the column declares TypeNumber, or when the
// column has no declared type and both compared values are numeric at
// runtime. In a number column, values that fail numeric coercion
// compare greater than every real number and equal to each other, so
// they trail an ascending sort and lead a descending one. In an
// untyped column mixing numbers and strings, numbers come first.
func Sort(rows []Row, config *SortConfig, columns []Column, lang Lang) []Row {
	out := append([]Row(nil), rows...)
	if config == nil || config.Key == "" {
		return out
	}

	col, _ := columnByKey(columns, config.Key)
	coll := collatorFor(lang)
	desc := config.Direction == Descending
	key := config.Key

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareCells(out[i][key], out[j][key], col.Type, coll)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func compareCells(a, b any, cellType CellType, coll *collate.Collator) int {
	switch cellType {
	case TypeNumber:
		return compareNumeric(a, b)
	case TypeAuto:
		if isRuntimeNumber(a) && isRuntimeNumber(b) {
			return compareNumeric(a, b)
		}
		if isRuntimeNumber(a) != isRuntimeNumber(b) {
			if isRuntimeNumber(a) {
				return -1
			}
			return 1
		}
	}
	return coll.CompareString(
		strings.TrimSpace(valueString(a)),
		strings.TrimSpace(valueString(b)),
	)
}

func compareNumeric(a, b any) int {
	na, okA := valueNumber(a)
	nb, okB := valueNumber(b)
	switch {
	case okA && okB:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
