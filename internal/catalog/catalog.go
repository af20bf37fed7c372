// Package catalog implements the read-only product catalog and its query
// operations. The catalog is seeded once from embedded sample data and never
// mutated afterwards; every query works on the seeded slice.
package catalog

import (
	_ "embed"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/beautyfind/beautyfind/internal/domain"
)

//go:embed seed.json
var seedData []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Brands known to the storefront filter bar, in slug form. Values must
// round-trip through brandMatches so each dropdown option selects its brand.
var brandSlugs = []string{"fenty-beauty", "rare-beauty", "glossier", "drunk-elephant", "charlotte-tilbury"}

// Sort keys accepted by FilterAndSort. Anything else falls back to popular.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
	SortRating    = "rating"
	SortPopular   = "popular"
)

// Filters are the optional, conjunctive catalog query predicates.
type Filters struct {
	Category string
	Brand    string
	Price    string // "min-max" closed, or "min+" open-ended
	Search   string
}

// Engine answers read-only queries against the seeded product collection.
type Engine struct {
	products []domain.Product
	index    map[string]int

	mu  sync.Mutex
	rng *rand.Rand
}

// New seeds an Engine from the embedded sample catalog and verifies the
// seed invariants (unique ids, known categories, sane prices).
func New() (*Engine, error) {
	var products []domain.Product
	if err := json.Unmarshal(seedData, &products); err != nil {
		return nil, errors.Wrap(err, "unmarshal catalog seed")
	}
	e := &Engine{
		products: products,
		index:    make(map[string]int, len(products)),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	known := make(map[string]bool, len(domain.Categories))
	for _, c := range domain.Categories {
		known[c] = true
	}
	for i, p := range products {
		if p.ID == "" {
			return nil, errors.Errorf("catalog seed: product %d has no id", i)
		}
		if _, dup := e.index[p.ID]; dup {
			return nil, errors.Errorf("catalog seed: duplicate product id %s", p.ID)
		}
		if !known[p.Category] {
			return nil, errors.Errorf("catalog seed: product %s has unknown category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			return nil, errors.Errorf("catalog seed: product %s has negative price", p.ID)
		}
		if p.OnSale && (p.OriginalPrice == nil || *p.OriginalPrice <= p.Price) {
			return nil, errors.Errorf("catalog seed: product %s is on sale without a higher original price", p.ID)
		}
		e.index[p.ID] = i
	}
	return e, nil
}

// Size reports the number of seeded products.
func (e *Engine) Size() int { return len(e.products) }

// SetRandSource replaces the randomness source behind the synthetic price
// history, for deterministic series in tests.
func (e *Engine) SetRandSource(src rand.Source) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = rand.New(src)
}

func (e *Engine) randFloat() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

// All returns a copy of the full catalog in seed order.
func (e *Engine) All() []domain.Product {
	out := make([]domain.Product, len(e.products))
	copy(out, e.products)
	return out
}

// ByID returns the product with the given id, or nil if unknown.
func (e *Engine) ByID(id string) *domain.Product {
	i, ok := e.index[id]
	if !ok {
		return nil
	}
	p := e.products[i]
	return &p
}

// ByIDs returns the products matching ids in catalog order, silently
// skipping unknown ids.
func (e *Engine) ByIDs(ids []string) []domain.Product {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := []domain.Product{}
	for _, p := range e.products {
		if want[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// FilterAndSort applies the optional filters conjunctively, orders the
// result by sortKey (stable on ties) and returns the 1-indexed page.
func (e *Engine) FilterAndSort(f Filters, sortKey string, page, pageSize int) []domain.Product {
	out := e.filter(f)
	sortProducts(out, sortKey)
	return paginate(out, page, pageSize)
}

// Count reports how many products match the filters, ignoring pagination.
func (e *Engine) Count(f Filters) int {
	return len(e.filter(f))
}

func (e *Engine) filter(f Filters) []domain.Product {
	minPrice, maxPrice, priceOK := parsePriceRange(f.Price)
	term := strings.ToLower(strings.TrimSpace(f.Search))
	brand := strings.TrimSpace(f.Brand)

	out := []domain.Product{}
	for _, p := range e.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if brand != "" && !brandMatches(p.Brand, brand) {
			continue
		}
		if priceOK && (p.Price < minPrice || p.Price > maxPrice) {
			continue
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search runs the free-text query over name, brand, description and tags.
func (e *Engine) Search(query string) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []domain.Product{}
	}
	out := []domain.Product{}
	for _, p := range e.products {
		if matchesSearch(p, term) {
			out = append(out, p)
		}
	}
	return out
}

// SimilarTo returns up to limit products sharing category or brand with the
// target, best rated first, never including the target itself. Unknown ids
// yield an empty slice.
func (e *Engine) SimilarTo(id string, limit int) []domain.Product {
	target := e.ByID(id)
	if target == nil {
		return []domain.Product{}
	}
	out := []domain.Product{}
	for _, p := range e.products {
		if p.ID == id {
			continue
		}
		if p.Category == target.Category || p.Brand == target.Brand {
			out = append(out, p)
		}
	}
	sortProducts(out, SortRating)
	return truncate(out, limit)
}

// Trending returns flagged products, most reviewed first.
func (e *Engine) Trending(limit int) []domain.Product {
	out := []domain.Product{}
	for _, p := range e.products {
		if p.Trending {
			out = append(out, p)
		}
	}
	sortProducts(out, SortPopular)
	return truncate(out, limit)
}

// OnSale returns sale products ordered by discount percentage descending.
func (e *Engine) OnSale(limit int) []domain.Product {
	out := []domain.Product{}
	for _, p := range e.products {
		if p.OnSale {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DiscountPercent() > out[j].DiscountPercent()
	})
	return truncate(out, limit)
}

// ByCategory returns category members, best rated first.
func (e *Engine) ByCategory(category string, limit int) []domain.Product {
	out := []domain.Product{}
	for _, p := range e.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sortProducts(out, SortRating)
	return truncate(out, limit)
}

// ByBrand returns brand members (slug or exact match), best rated first.
func (e *Engine) ByBrand(brand string, limit int) []domain.Product {
	out := []domain.Product{}
	for _, p := range e.products {
		if brandMatches(p.Brand, brand) {
			out = append(out, p)
		}
	}
	sortProducts(out, SortRating)
	return truncate(out, limit)
}

// RetailerInfo returns a product's retailer offers, or an empty slice for
// unknown ids.
func (e *Engine) RetailerInfo(id string) []domain.RetailerOffer {
	p := e.ByID(id)
	if p == nil {
		return []domain.RetailerOffer{}
	}
	out := make([]domain.RetailerOffer, len(p.Retailers))
	copy(out, p.Retailers)
	return out
}

// Option is a value/label pair for the storefront filter dropdowns.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions returns the fixed category set with display labels.
func (e *Engine) CategoryOptions() []Option {
	out := make([]Option, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, Option{Value: c, Label: titleWord(c)})
	}
	return out
}

// BrandOptions returns the storefront brand slugs with display labels.
func (e *Engine) BrandOptions() []Option {
	out := make([]Option, 0, len(brandSlugs))
	for _, b := range brandSlugs {
		parts := strings.Split(b, "-")
		for i, w := range parts {
			parts[i] = titleWord(w)
		}
		out = append(out, Option{Value: b, Label: strings.Join(parts, " ")})
	}
	return out
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func brandSlug(brand string) string {
	return strings.Join(strings.Fields(strings.ToLower(brand)), "-")
}

func brandMatches(brand, filter string) bool {
	return brand == filter || brandSlug(brand) == filter
}

func matchesSearch(p domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// parsePriceRange understands "min-max" and "min+". A malformed expression
// is treated as no price filter at all.
func parsePriceRange(expr string) (minPrice, maxPrice float64, ok bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, 0, false
	}
	if strings.HasSuffix(expr, "+") {
		minVal, err := strconv.ParseFloat(strings.TrimSuffix(expr, "+"), 64)
		if err != nil {
			return 0, 0, false
		}
		return minVal, math.Inf(1), true
	}
	parts := strings.SplitN(expr, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	minVal, err1 := strconv.ParseFloat(parts[0], 64)
	maxVal, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return minVal, maxVal, true
}

func sortProducts(products []domain.Product, sortKey string) {
	var less func(a, b domain.Product) bool
	switch sortKey {
	case SortPriceLow:
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b domain.Product) bool { return a.Price > b.Price }
	case SortNewest:
		less = func(a, b domain.Product) bool { return a.DateAdded.After(b.DateAdded) }
	case SortRating:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	default: // popular
		less = func(a, b domain.Product) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

func paginate(products []domain.Product, page, pageSize int) []domain.Product {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 12
	}
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []domain.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func truncate(products []domain.Product, limit int) []domain.Product {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
