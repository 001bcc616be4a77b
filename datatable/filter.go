package datatable

import "strings"

// FilterState maps a filter key to its current value. Plain keys filter
// one column; "<key>_from" / "<key>_to" are inclusive range bounds for
// date columns (YYYY-MM-DD, so lexicographic comparison is correct).
// An empty value means the filter is not applied.
type FilterState map[string]string

const (
	rangeFromSuffix = "_from"
	rangeToSuffix   = "_to"
)

// Stock bucket values accepted by the dedicated "stock" filter key.
const (
	StockUnder10 = "lt10"
	Stock10To50  = "10to50"
	StockOver50  = "gt50"
)

type rowPredicate func(Row) bool

// Filter returns the rows that match the free-text search term and every
// active filter entry. rows must be the full, unfiltered dataset: the
// exact-vs-substring decision for plain filters looks at the distinct
// values a column takes across all rows, never across an already
// filtered subset.
func Filter(rows []Row, search string, filters FilterState, columns []Column) []Row {
	predicates := compileFilters(rows, filters)
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if search != "" && !rowMatchesSearch(row, search) {
			continue
		}
		pass := true
		for _, pred := range predicates {
			if !pred(row) {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, row)
		}
	}
	return out
}

// rowMatchesSearch checks every field of the row, not only visible
// columns; hiding a column does not remove it from search coverage.
func rowMatchesSearch(row Row, loweredTerm string) bool {
	for _, value := range row {
		if strings.Contains(strings.ToLower(valueString(value)), loweredTerm) {
			return true
		}
	}
	return false
}

func compileFilters(rows []Row, filters FilterState) []rowPredicate {
	var predicates []rowPredicate
	for key, value := range filters {
		if value == "" {
			continue
		}
		switch {
		case strings.HasSuffix(key, rangeFromSuffix):
			base := strings.TrimSuffix(key, rangeFromSuffix)
			bound := value
			predicates = append(predicates, func(row Row) bool {
				cell, ok := row[base]
				return ok && valueString(cell) >= bound
			})
		case strings.HasSuffix(key, rangeToSuffix):
			base := strings.TrimSuffix(key, rangeToSuffix)
			bound := value
			predicates = append(predicates, func(row Row) bool {
				cell, ok := row[base]
				return ok && valueString(cell) <= bound
			})
		case key == "stock":
			predicates = append(predicates, stockBucketPredicate(value))
		default:
			predicates = append(predicates, plainFilterPredicate(rows, key, value))
		}
	}
	return predicates
}

func stockBucketPredicate(bucket string) rowPredicate {
	return func(row Row) bool {
		n, ok := valueNumber(row["stock"])
		if !ok {
			return false
		}
		switch bucket {
		case StockUnder10:
			return n < 10
		case Stock10To50:
			return n >= 10 && n <= 50
		case StockOver50:
			return n > 50
		default:
			return false
		}
	}
}

// plainFilterPredicate implements the two-mode match: when the value is
// one of the distinct values the column takes across the full dataset a
// select-style exact match applies, otherwise a case-insensitive
// substring match. Both a dropdown of known values and a free-text box
// feed through the same filter key this way.
func plainFilterPredicate(rows []Row, key, value string) rowPredicate {
	distinct := DistinctValues(rows, key)
	if _, known := distinct[value]; known {
		return func(row Row) bool {
			return valueString(row[key]) == value
		}
	}
	lowered := strings.ToLower(value)
	return func(row Row) bool {
		return strings.Contains(strings.ToLower(valueString(row[key])), lowered)
	}
}

// DistinctValues collects the set of string-coerced values a column
// takes across the dataset. Filter editors use it to offer a pick list.
func DistinctValues(rows []Row, key string) map[string]struct{} {
	distinct := make(map[string]struct{})
	for _, row := range rows {
		if cell, ok := row[key]; ok {
			distinct[valueString(cell)] = struct{}{}
		}
	}
	return distinct
}
