package datatable

import (
	"reflect"
	"testing"
)

func productColumns() []Column {
	return []Column{
		{Key: "name", Label: Label{En: "Name", Ar: "الاسم"}},
		{Key: "price", Label: Label{En: "Price", Ar: "السعر"}, Type: TypeNumber},
		{Key: "stock", Label: Label{En: "Stock", Ar: "المخزون"}, Type: TypeNumber},
		{Key: "status", Label: Label{En: "Status", Ar: "الحالة"}, Type: TypeStatus},
		{Key: "date", Label: Label{En: "Date", Ar: "التاريخ"}, Type: TypeDate},
	}
}

func productRows() []Row {
	return []Row{
		{"id": 1, "name": "Ahmed Ali", "price": 300, "stock": 5, "status": "Paid", "date": "2025-05-15"},
		{"id": 2, "name": "Sara", "price": 100, "stock": 25, "status": "Unpaid", "date": "2025-06-01"},
		{"id": 3, "name": "Blue Mug", "price": 200, "stock": 80, "status": "Paid", "date": "2025-04-30"},
	}
}

func ids(rows []Row) []int {
	out := make([]int, len(rows))
	for i, row := range rows {
		n, _ := valueNumber(row["id"])
		out[i] = int(n)
	}
	return out
}

func TestFilterSearchCoversAllFields(t *testing.T) {
	rows := productRows()
	got := Filter(rows, "mug", nil, productColumns())
	if want := []int{3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("search ids = %v, want %v", ids(got), want)
	}

	// Case-insensitive, and the id field counts even though no column
	// renders it.
	got = Filter(rows, "AHMED", nil, productColumns())
	if want := []int{1}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("search ids = %v, want %v", ids(got), want)
	}
}

func TestFilterEmptyValuesPassAll(t *testing.T) {
	rows := productRows()
	got := Filter(rows, "", FilterState{"status": "", "name": ""}, productColumns())
	if len(got) != len(rows) {
		t.Fatalf("empty filters kept %d of %d rows", len(got), len(rows))
	}
}

func TestFilterExactMatchForKnownValue(t *testing.T) {
	// "Paid" is one of the distinct values of the status column, so the
	// filter runs in exact-match mode and "Unpaid" must not pass by
	// substring.
	got := Filter(productRows(), "", FilterState{"status": "Paid"}, productColumns())
	if want := []int{1, 3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("status=Paid ids = %v, want %v", ids(got), want)
	}
}

func TestFilterSubstringForUnknownValue(t *testing.T) {
	got := Filter(productRows(), "", FilterState{"name": "ali"}, productColumns())
	if want := []int{1}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("name~ali ids = %v, want %v", ids(got), want)
	}
}

func TestFilterDateRange(t *testing.T) {
	filters := FilterState{
		"date_from": "2025-05-01",
		"date_to":   "2025-05-31",
	}
	got := Filter(productRows(), "", filters, productColumns())
	if want := []int{1}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("range ids = %v, want %v", ids(got), want)
	}
}

func TestFilterRangeExcludesMissingField(t *testing.T) {
	rows := append(productRows(), Row{"id": 4, "name": "No Date"})
	got := Filter(rows, "", FilterState{"date_from": "2025-01-01"}, productColumns())
	for _, id := range ids(got) {
		if id == 4 {
			t.Fatal("row without the date field passed a date_from bound")
		}
	}
}

func TestFilterStockBuckets(t *testing.T) {
	cases := []struct {
		bucket string
		want   []int
	}{
		{StockUnder10, []int{1}},
		{Stock10To50, []int{2}},
		{StockOver50, []int{3}},
		{"nonsense", nil},
	}
	for _, tc := range cases {
		got := ids(Filter(productRows(), "", FilterState{"stock": tc.bucket}, productColumns()))
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("stock=%s ids = %v, want %v", tc.bucket, got, tc.want)
		}
	}
}

func TestFilterStockBucketNonNumericExcluded(t *testing.T) {
	rows := []Row{{"id": 1, "stock": "plenty"}}
	got := Filter(rows, "", FilterState{"stock": StockOver50}, productColumns())
	if len(got) != 0 {
		t.Fatal("non-numeric stock value passed a bucket filter")
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	filters := FilterState{"status": "Paid"}
	got := Filter(productRows(), "mug", filters, productColumns())
	if want := []int{3}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("search+filter ids = %v, want %v", ids(got), want)
	}
}

func TestFilterIdempotent(t *testing.T) {
	rows := productRows()
	filters := FilterState{"status": "Paid", "date_from": "2025-01-01"}
	once := Filter(rows, "a", filters, productColumns())
	twice := Filter(once, "a", filters, productColumns())
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("filter not idempotent: %v then %v", ids(once), ids(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	rows := productRows()
	before := ids(rows)
	Filter(rows, "sara", FilterState{"status": "Paid"}, productColumns())
	if !reflect.DeepEqual(ids(rows), before) {
		t.Fatal("input rows reordered by Filter")
	}
}
