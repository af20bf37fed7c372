package catalog

import (
	"math"
	"sort"
	"time"

	"github.com/beautyfind/beautyfind/internal/domain"
)

// PriceHistory synthesizes a trailing 30-day price series plus today for
// the given product. This is a simulation stand-in for a real
// price-tracking feed: only the shape is contractual (31 monotonic daily
// points, each within ±10% of the base price and never below 70% of it).
// Returns nil for unknown ids.
func (e *Engine) PriceHistory(id string) *domain.PriceHistory {
	p := e.ByID(id)
	if p == nil {
		return nil
	}

	base := p.Price
	if p.OriginalPrice != nil {
		base = *p.OriginalPrice
	}

	now := time.Now()
	points := make([]domain.PricePoint, 0, 31)
	lowest := math.Inf(1)
	highest := math.Inf(-1)
	for i := 30; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		variation := (e.randFloat() - 0.5) * 0.2
		price := math.Max(base*(1+variation), base*0.7)
		price = math.Round(price*100) / 100
		points = append(points, domain.PricePoint{
			Date:  day.Format("2006-01-02"),
			Price: price,
		})
		lowest = math.Min(lowest, price)
		highest = math.Max(highest, price)
	}

	return &domain.PriceHistory{
		ProductID:    id,
		CurrentPrice: p.Price,
		LowestPrice:  lowest,
		HighestPrice: highest,
		History:      points,
	}
}

// ComparePrices ranks a product's retailer offers by price. Returns nil if
// the id is unknown or the product carries no offers.
func (e *Engine) ComparePrices(id string) *domain.PriceComparison {
	p := e.ByID(id)
	if p == nil || len(p.Retailers) == 0 {
		return nil
	}

	offers := make([]domain.RetailerOffer, len(p.Retailers))
	copy(offers, p.Retailers)
	sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })

	return &domain.PriceComparison{
		ProductID:    id,
		ProductName:  p.Name,
		LowestPrice:  offers[0],
		HighestPrice: offers[len(offers)-1],
		AllRetailers: offers,
		Savings:      offers[len(offers)-1].Price - offers[0].Price,
	}
}
