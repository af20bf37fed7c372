package catalog

import (
	"reflect"
	"testing"

	"github.com/beautyfind/beautyfind/internal/domain"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(got []domain.Product, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, p := range got {
		if p.ID != want[i] {
			return false
		}
	}
	return true
}

func TestSeedLoads(t *testing.T) {
	e := newEngine(t)
	if e.Size() != 12 {
		t.Fatalf("Size = %d, want 12", e.Size())
	}
}

func TestByID(t *testing.T) {
	e := newEngine(t)

	p := e.ByID("5")
	if p == nil {
		t.Fatal("ByID(5) = nil")
	}
	if p.Brand != "Charlotte Tilbury" || p.Price != 37 {
		t.Errorf("ByID(5) = %s/%v, want Charlotte Tilbury/37", p.Brand, p.Price)
	}

	// Returned product is a copy, mutating it must not leak into the engine.
	p.Name = "mutated"
	if e.ByID("5").Name == "mutated" {
		t.Error("ByID returned a reference into the catalog")
	}

	if e.ByID("999") != nil {
		t.Error("ByID(999) should be nil")
	}
}

func TestByIDReturnsEverySeededRecordUnchanged(t *testing.T) {
	e := newEngine(t)
	for _, want := range e.All() {
		got := e.ByID(want.ID)
		if got == nil {
			t.Fatalf("ByID(%s) = nil", want.ID)
		}
		if !reflect.DeepEqual(*got, want) {
			t.Errorf("ByID(%s) = %+v, want %+v", want.ID, *got, want)
		}
	}
}

func TestByIDsKeepsCatalogOrder(t *testing.T) {
	e := newEngine(t)
	got := e.ByIDs([]string{"7", "nope", "2"})
	if !equalIDs(got, []string{"2", "7"}) {
		t.Errorf("ByIDs = %v, want [2 7]", ids(got))
	}
}

func TestFilterPriceRangeSortedLowToHigh(t *testing.T) {
	e := newEngine(t)
	got := e.FilterAndSort(Filters{Price: "0-30"}, SortPriceLow, 1, 12)
	want := []string{"6", "2", "12", "3", "7"}
	if !equalIDs(got, want) {
		t.Fatalf("filter 0-30 price-low = %v, want %v", ids(got), want)
	}
	wantPrices := []float64{7, 20, 20, 22, 30}
	for i, p := range got {
		if p.Price != wantPrices[i] {
			t.Errorf("price[%d] = %v, want %v", i, p.Price, wantPrices[i])
		}
	}
}

func TestOpenEndedPriceRange(t *testing.T) {
	e := newEngine(t)
	got := e.FilterAndSort(Filters{Price: "100+"}, SortPriceLow, 1, 12)
	if !equalIDs(got, []string{"8"}) {
		t.Errorf("filter 100+ = %v, want [8]", ids(got))
	}
}

func TestMalformedPriceRangeIgnored(t *testing.T) {
	e := newEngine(t)
	got := e.FilterAndSort(Filters{Price: "cheap"}, SortPopular, 1, 100)
	if len(got) != e.Size() {
		t.Errorf("malformed price filter matched %d products, want all %d", len(got), e.Size())
	}
}

func TestDefaultSortIsPopular(t *testing.T) {
	e := newEngine(t)
	got := e.FilterAndSort(Filters{}, "", 1, 12)
	want := []string{"12", "7", "6", "10", "5", "4", "1", "9", "8", "2", "11", "3"}
	if !equalIDs(got, want) {
		t.Errorf("popular order = %v, want %v", ids(got), want)
	}
}

func TestConjunctiveFilters(t *testing.T) {
	e := newEngine(t)
	got := e.FilterAndSort(Filters{Category: domain.CategoryMakeup, Brand: "fenty-beauty"}, SortPopular, 1, 12)
	if !equalIDs(got, []string{"1"}) {
		t.Errorf("makeup+fenty-beauty = %v, want [1]", ids(got))
	}

	// Brand slug and exact brand name both match.
	slug := e.FilterAndSort(Filters{Brand: "charlotte-tilbury"}, SortPopular, 1, 12)
	exact := e.FilterAndSort(Filters{Brand: "Charlotte Tilbury"}, SortPopular, 1, 12)
	if !equalIDs(slug, []string{"5"}) || !equalIDs(exact, []string{"5"}) {
		t.Errorf("brand match: slug=%v exact=%v, want [5] for both", ids(slug), ids(exact))
	}
}

func TestBrandOptionsRoundTrip(t *testing.T) {
	e := newEngine(t)
	for _, opt := range e.BrandOptions() {
		if got := e.ByBrand(opt.Value, 12); len(got) == 0 {
			t.Errorf("brand option %q matches no products via ByBrand", opt.Value)
		}
		if got := e.FilterAndSort(Filters{Brand: opt.Value}, SortPopular, 1, 12); len(got) == 0 {
			t.Errorf("brand option %q matches no products via the brand filter", opt.Value)
		}
	}
}

func TestCountMatchesFilteredSet(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		name string
		f    Filters
		want int
	}{
		{"unfiltered", Filters{}, 12},
		{"price band", Filters{Price: "0-30"}, 5},
		{"category", Filters{Category: domain.CategoryMakeup}, 5},
		{"category and brand", Filters{Category: domain.CategoryMakeup, Brand: "fenty-beauty"}, 1},
		{"no match", Filters{Category: domain.CategoryFragrance}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Count(tc.f); got != tc.want {
				t.Errorf("Count = %d, want %d", got, tc.want)
			}
			// Count is the pre-pagination total of the same filtered set.
			if got := len(e.FilterAndSort(tc.f, SortPopular, 1, 100)); got != tc.want {
				t.Errorf("FilterAndSort yielded %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPaginationIsExhaustiveAndNonOverlapping(t *testing.T) {
	e := newEngine(t)
	seen := map[string]bool{}
	total := 0
	for page := 1; ; page++ {
		batch := e.FilterAndSort(Filters{}, SortPopular, page, 5)
		if len(batch) == 0 {
			break
		}
		for _, p := range batch {
			if seen[p.ID] {
				t.Fatalf("product %s appeared on more than one page", p.ID)
			}
			seen[p.ID] = true
		}
		total += len(batch)
	}
	if total != e.Size() {
		t.Errorf("pagination yielded %d products, want %d", total, e.Size())
	}
}

func TestPaginationDefaults(t *testing.T) {
	e := newEngine(t)
	if got := e.FilterAndSort(Filters{}, SortPopular, 0, 0); len(got) != 12 {
		t.Errorf("page 0 size 0 defaulted to %d products, want 12", len(got))
	}
	if got := e.FilterAndSort(Filters{}, SortPopular, 99, 5); len(got) != 0 {
		t.Errorf("out-of-range page returned %d products, want 0", len(got))
	}
}

func TestSearch(t *testing.T) {
	e := newEngine(t)

	got := e.Search("niacinamide")
	if !equalIDs(got, []string{"6", "11"}) {
		t.Errorf("search niacinamide = %v, want [6 11]", ids(got))
	}

	// Tag-only match.
	if got := e.Search("bond-repair"); !equalIDs(got, []string{"7"}) {
		t.Errorf("search bond-repair = %v, want [7]", ids(got))
	}

	if got := e.Search("   "); len(got) != 0 {
		t.Errorf("blank search returned %d products, want 0", len(got))
	}
}

func TestSimilarToExcludesTarget(t *testing.T) {
	e := newEngine(t)
	got := e.SimilarTo("1", 4)
	if len(got) != 4 {
		t.Fatalf("SimilarTo(1, 4) returned %d products", len(got))
	}
	for i, p := range got {
		if p.ID == "1" {
			t.Error("SimilarTo included the target product")
		}
		if i > 0 && got[i-1].Rating < p.Rating {
			t.Error("SimilarTo not ordered by rating descending")
		}
		if p.Category != domain.CategoryMakeup && p.Brand != "Fenty Beauty" {
			t.Errorf("product %s shares neither category nor brand with target", p.ID)
		}
	}

	if got := e.SimilarTo("nope", 4); len(got) != 0 {
		t.Errorf("SimilarTo(unknown) = %v, want empty", ids(got))
	}
}

func TestTrending(t *testing.T) {
	e := newEngine(t)
	got := e.Trending(8)
	want := []string{"5", "1", "9", "3"}
	if !equalIDs(got, want) {
		t.Errorf("Trending = %v, want %v", ids(got), want)
	}
}

func TestOnSaleOrderedByDiscount(t *testing.T) {
	e := newEngine(t)
	got := e.OnSale(12)
	// Discounts: 2 is 20%, 7 is ~14.3%, 10 is ~10.8%.
	want := []string{"2", "7", "10"}
	if !equalIDs(got, want) {
		t.Errorf("OnSale = %v, want %v", ids(got), want)
	}
	for _, p := range got {
		if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
			t.Errorf("sale product %s lacks a higher original price", p.ID)
		}
	}
}

func TestRetailerInfo(t *testing.T) {
	e := newEngine(t)
	offers := e.RetailerInfo("1")
	if len(offers) != 3 {
		t.Fatalf("RetailerInfo(1) returned %d offers, want 3", len(offers))
	}
	if got := e.RetailerInfo("nope"); len(got) != 0 {
		t.Errorf("RetailerInfo(unknown) returned %d offers, want 0", len(got))
	}
}

func TestOptions(t *testing.T) {
	e := newEngine(t)
	cats := e.CategoryOptions()
	if len(cats) != len(domain.Categories) {
		t.Errorf("CategoryOptions returned %d entries, want %d", len(cats), len(domain.Categories))
	}
	for _, b := range e.BrandOptions() {
		if b.Value == "" || b.Label == "" {
			t.Errorf("brand option missing value or label: %+v", b)
		}
	}
}
