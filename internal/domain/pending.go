package domain

import "time"

// Moderation states for user-submitted products.
const (
	PendingStatusPending   = "pending"
	PendingStatusReviewing = "reviewing"
)

// PendingProduct is a user submission awaiting moderation. It mirrors the
// Product shape plus submission metadata; approved entries never flow into
// the seeded catalog, which is managed elsewhere.
type PendingProduct struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	SourceURL   string    `json:"sourceUrl"`
	SubmittedBy string    `json:"submittedBy"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

// SubmissionReceipt is returned when a product URL is accepted for review.
type SubmissionReceipt struct {
	Status              string `json:"status"`
	Message             string `json:"message"`
	EstimatedReviewTime string `json:"estimatedReviewTime"`
}
