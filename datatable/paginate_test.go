package datatable

import "testing"

func makeRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"id": i + 1}
	}
	return rows
}

func TestPaginateSlices(t *testing.T) {
	rows := makeRows(25)

	page1 := Paginate(rows, 1, 10)
	if len(page1) != 10 || ids(page1)[0] != 1 || ids(page1)[9] != 10 {
		t.Fatalf("page 1 = %v", ids(page1))
	}
	page3 := Paginate(rows, 3, 10)
	if len(page3) != 5 || ids(page3)[0] != 21 || ids(page3)[4] != 25 {
		t.Fatalf("page 3 = %v", ids(page3))
	}
	if got := TotalPages(len(rows), 10); got != 3 {
		t.Fatalf("TotalPages = %d, want 3", got)
	}
}

func TestPaginateCoverage(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 100} {
		rows := makeRows(n)
		total := TotalPages(n, 10)
		var joined []Row
		for page := 1; page <= total; page++ {
			slice := Paginate(rows, page, 10)
			if len(slice) > 10 {
				t.Fatalf("n=%d page=%d has %d rows", n, page, len(slice))
			}
			joined = append(joined, slice...)
		}
		if len(joined) != n {
			t.Fatalf("n=%d: concatenated pages have %d rows", n, len(joined))
		}
		for i, row := range joined {
			if id, _ := valueNumber(row["id"]); int(id) != i+1 {
				t.Fatalf("n=%d: row %d out of place", n, i)
			}
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	rows := makeRows(5)
	if got := Paginate(rows, 7, 10); len(got) != 0 {
		t.Fatalf("past-the-end page returned %d rows", len(got))
	}
	if got := Paginate(rows, 0, 10); len(got) != 5 {
		t.Fatalf("page 0 should clamp to page 1, got %d rows", len(got))
	}
	if got := TotalPages(0, 10); got != 1 {
		t.Fatalf("TotalPages(0) = %d, want 1", got)
	}
}
