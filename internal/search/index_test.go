package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jask/dpselect/internal/catalog"
)

func testIndex() *Index[string] {
	ix := NewIndex[string]()
	add := func(name, display, fqn, desc string) {
		ix.Add(catalog.ProductDocument(catalog.DataProduct{
			Name:               name,
			DisplayName:        display,
			FullyQualifiedName: fqn,
			Description:        desc,
		}), fqn)
	}
	add("revenue", "Revenue", "Finance.revenue", "booked revenue")
	add("revenue_forecast", "Revenue Forecast", "Finance.revenue_forecast", "")
	add("orders", "Orders", "Sales.orders", "contains revenue lines")
	add("customers", "Customers", "Sales.customers", "")
	return ix
}

func fqns(hits []Hit[string]) []string {
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.Item)
	}
	return out
}

func TestSearchRanking(t *testing.T) {
	ix := testIndex()
	tests := []struct {
		name string
		term string
		want []string
	}{
		{
			name: "exact keyword outranks substring and description",
			term: "Revenue",
			want: []string{"Finance.revenue", "Finance.revenue_forecast", "Sales.orders"},
		},
		{
			name: "fqn part",
			term: "sales",
			want: []string{"Sales.customers", "Sales.orders"},
		},
		{
			name: "fuzzy single typo",
			term: "custmers",
			want: []string{"Sales.customers"},
		},
		{
			name: "fuzzy word",
			term: "ordrs",
			want: []string{"Sales.orders"},
		},
		{
			name: "short terms are not fuzzy",
			term: "odr",
			want: []string{},
		},
		{
			name: "no match",
			term: "zzz",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, total := ix.Search(tt.term, 0, 0)
			if total != len(tt.want) {
				t.Fatalf("total = %d, want %d (%v)", total, len(tt.want), fqns(hits))
			}
			if diff := cmp.Diff(tt.want, fqns(hits)); diff != "" {
				t.Fatalf("hits (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchEmptyTermPages(t *testing.T) {
	ix := testIndex()
	page1, total := ix.Search("", 3, 0)
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	want1 := []string{"Finance.revenue", "Finance.revenue_forecast", "Sales.customers"}
	if diff := cmp.Diff(want1, fqns(page1)); diff != "" {
		t.Fatalf("page 1 (-want +got):\n%s", diff)
	}
	page2, _ := ix.Search("", 3, 3)
	if diff := cmp.Diff([]string{"Sales.orders"}, fqns(page2)); diff != "" {
		t.Fatalf("page 2 (-want +got):\n%s", diff)
	}
	if past, total := ix.Search("", 3, 9); past != nil || total != 4 {
		t.Fatalf("past end = %v/%d", past, total)
	}
}

func TestFuzzyBudget(t *testing.T) {
	tests := []struct {
		value, term string
		want        bool
	}{
		{"customers", "custmers", true},
		{"customers", "cstmrs", false},
		{"transactions", "transactons", true},
		{"abc", "abd", false},
	}
	for _, tt := range tests {
		if got := fuzzyMatch(tt.value, tt.term); got != tt.want {
			t.Fatalf("fuzzyMatch(%q, %q) = %v, want %v", tt.value, tt.term, got, tt.want)
		}
	}
}

func TestSearchScores(t *testing.T) {
	ix := NewIndex[string]()
	ix.Add(catalog.ProductDocument(catalog.DataProduct{
		Name:               "orders",
		FullyQualifiedName: "Sales.orders",
	}), "Sales.orders")

	tests := []struct {
		term string
		want float64
	}{
		{term: "orders", want: 25 + 15 + 10},
		{term: "order", want: 15 + 10},
		{term: "ordrs", want: 7.5},
		{term: "sales", want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			hits, _ := ix.Search(tt.term, 0, 0)
			if len(hits) != 1 {
				t.Fatalf("hits = %d, want 1", len(hits))
			}
			if hits[0].Score != tt.want {
				t.Fatalf("score = %v, want %v", hits[0].Score, tt.want)
			}
		})
	}
}
