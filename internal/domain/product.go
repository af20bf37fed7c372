package domain

import "time"

// Product categories. The catalog only ever contains these five.
const (
	CategorySkincare  = "skincare"
	CategoryMakeup    = "makeup"
	CategoryHaircare  = "haircare"
	CategoryFragrance = "fragrance"
	CategoryTools     = "tools"
)

// Categories lists the fixed category set in display order.
var Categories = []string{
	CategorySkincare,
	CategoryMakeup,
	CategoryHaircare,
	CategoryFragrance,
	CategoryTools,
}

// RetailerOffer is a single place a product can be bought.
type RetailerOffer struct {
	Name  string  `json:"name"`
	URL   string  `json:"url"`
	Price float64 `json:"price"`
}

// Product represents a catalog entry. The catalog is seeded once at startup
// and never mutated afterwards, so Product values are safe to share.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Category      string          `json:"category"`
	Price         float64         `json:"price"`
	OriginalPrice *float64        `json:"originalPrice,omitempty"`
	Currency      string          `json:"currency"`
	Image         string          `json:"image"`
	Description   string          `json:"description"`
	AffiliateURL  string          `json:"affiliateUrl"`
	Retailer      string          `json:"retailer"`
	OnSale        bool            `json:"onSale"`
	Trending      bool            `json:"trending"`
	Rating        float64         `json:"rating"`
	ReviewCount   int             `json:"reviewCount"`
	DateAdded     time.Time       `json:"dateAdded"`
	Tags          []string        `json:"tags"`
	Retailers     []RetailerOffer `json:"retailers,omitempty"`
}

// DiscountPercent returns the discount in percent for on-sale products.
// A product without a recorded original price reports 0 rather than
// dividing by zero.
func (p Product) DiscountPercent() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	return (*p.OriginalPrice - p.Price) / *p.OriginalPrice * 100
}
