package domain

// PricePoint is one sampled day in a product's price series.
type PricePoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Price float64 `json:"price"`
}

// PriceHistory is the simulated trailing price series for a product:
// 30 daily points plus today, with min/max derived from the series.
type PriceHistory struct {
	ProductID    string       `json:"productId"`
	CurrentPrice float64      `json:"currentPrice"`
	LowestPrice  float64      `json:"lowestPrice"`
	HighestPrice float64      `json:"highestPrice"`
	History      []PricePoint `json:"priceHistory"`
}

// PriceComparison summarizes a product's retailer offers.
type PriceComparison struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	LowestPrice  RetailerOffer   `json:"lowestPrice"`
	HighestPrice RetailerOffer   `json:"highestPrice"`
	AllRetailers []RetailerOffer `json:"allRetailers"`
	Savings      float64         `json:"savings"`
}
