package domain

import "time"

// AccountSummary is the admin dashboard's view of a registered account.
type AccountSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	JoinedAt      time.Time `json:"joinedAt"`
	WishlistCount int       `json:"wishlistCount"`
	Status        string    `json:"status"`
}

// AnalyticsSnapshot aggregates the headline dashboard numbers.
type AnalyticsSnapshot struct {
	Revenue         float64 `json:"revenue"`
	PageViews       int64   `json:"pageViews"`
	AffiliateClicks int64   `json:"affiliateClicks"`
	WishlistAdds    int64   `json:"wishlistAdds"`
}

// Activity is one entry in the dashboard's recent-activity feed.
type Activity struct {
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}
