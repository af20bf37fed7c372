package moderation

import (
	"time"

	"github.com/beautyfind/beautyfind/internal/domain"
)

// Demo data shown on the dashboard until real submissions arrive.

func seedPending() []domain.PendingProduct {
	now := time.Now()
	return []domain.PendingProduct{
		{
			ID:          "pending_1",
			Name:        "Tatcha The Water Cream",
			Brand:       "Tatcha",
			Category:    domain.CategorySkincare,
			Price:       68,
			Image:       "https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=400&h=400&fit=crop",
			SourceURL:   "https://www.sephora.com/product/tatcha-water-cream",
			SubmittedBy: "user123@email.com",
			SubmittedAt: now.AddDate(0, 0, -2),
			Status:      domain.PendingStatusPending,
		},
		{
			ID:          "pending_2",
			Name:        "Glow Recipe Watermelon Glow Niacinamide Dew Drops",
			Brand:       "Glow Recipe",
			Category:    domain.CategorySkincare,
			Price:       34,
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=400&fit=crop",
			SourceURL:   "https://www.ulta.com/p/watermelon-glow-niacinamide-dew-drops",
			SubmittedBy: "beautylov3r@email.com",
			SubmittedAt: now.AddDate(0, 0, -1),
			Status:      domain.PendingStatusPending,
		},
	}
}

// SampleAccounts is the demo account listing for the dashboard.
func SampleAccounts() []domain.AccountSummary {
	return []domain.AccountSummary{
		{
			ID:            "user_1",
			Name:          "Sarah Johnson",
			Email:         "sarah.j@email.com",
			JoinedAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			WishlistCount: 12,
			Status:        "active",
		},
		{
			ID:            "user_2",
			Name:          "Emma Wilson",
			Email:         "emma.w@email.com",
			JoinedAt:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			WishlistCount: 8,
			Status:        "active",
		},
	}
}

// SampleAnalytics is the demo headline-number snapshot.
func SampleAnalytics() domain.AnalyticsSnapshot {
	return domain.AnalyticsSnapshot{
		Revenue:         12340,
		PageViews:       24567,
		AffiliateClicks: 3421,
		WishlistAdds:    1892,
	}
}
