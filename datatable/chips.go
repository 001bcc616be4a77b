package datatable

import (
	"sort"
	"strings"
)

// Chip is the compact, removable representation of one applied filter.
// A _from/_to pair collapses into a single chip keyed by the base
// column.
type Chip struct {
	Key   string
	Label string
	Value string
}

type rangeWord struct {
	from string
	to   string
}

var rangeWords = map[Lang]rangeWord{
	LangEn: {from: "from", to: "to"},
	LangAr: {from: "من", to: "إلى"},
}

// SummarizeFilters derives the chip list for the active filters. Only
// non-empty entries produce chips; keys ending in _to never produce one
// of their own, they fold into the base column's chip even when the
// matching _from is empty.
func SummarizeFilters(filters FilterState, columns []Column, lang Lang) []Chip {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	seen := make(map[string]bool)
	var chips []Chip
	for _, key := range keys {
		if filters[key] == "" {
			continue
		}
		if strings.HasSuffix(key, rangeToSuffix) {
			base := strings.TrimSuffix(key, rangeToSuffix)
			if seen[base] {
				continue
			}
			seen[base] = true
			chips = append(chips, rangeChip(base, filters, columns, lang))
			continue
		}
		if strings.HasSuffix(key, rangeFromSuffix) {
			base := strings.TrimSuffix(key, rangeFromSuffix)
			if seen[base] {
				continue
			}
			seen[base] = true
			chips = append(chips, rangeChip(base, filters, columns, lang))
			continue
		}
		chips = append(chips, Chip{
			Key:   key,
			Label: chipLabel(key, columns, lang),
			Value: filters[key],
		})
	}
	return chips
}

func rangeChip(base string, filters FilterState, columns []Column, lang Lang) Chip {
	from := filters[base+rangeFromSuffix]
	to := filters[base+rangeToSuffix]
	words := rangeWords[lang]
	if words.from == "" {
		words = rangeWords[LangEn]
	}

	var value string
	switch {
	case from != "" && to != "":
		value = from + " – " + to
	case from != "":
		value = words.from + " " + from
	default:
		value = words.to + " " + to
	}
	return Chip{
		Key:   base,
		Label: chipLabel(base, columns, lang),
		Value: value,
	}
}

func chipLabel(key string, columns []Column, lang Lang) string {
	if col, ok := columnByKey(columns, key); ok {
		return col.Label.In(lang)
	}
	return key
}

// RemoveChip clears the filter behind a chip. Removing a range chip
// drops both the _from and _to halves in one step.
func RemoveChip(filters FilterState, key string) FilterState {
	out := make(FilterState, len(filters))
	for k, v := range filters {
		if k == key || k == key+rangeFromSuffix || k == key+rangeToSuffix {
			continue
		}
		out[k] = v
	}
	return out
}

// ClearFilters resets the whole filter map; the search term is separate
// state and is left untouched by callers using this.
func ClearFilters() FilterState {
	return FilterState{}
}
