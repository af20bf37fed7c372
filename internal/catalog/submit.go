package catalog

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/beautyfind/beautyfind/internal/domain"
	"github.com/beautyfind/beautyfind/internal/errs"
	"github.com/beautyfind/beautyfind/internal/flakiness"
	"github.com/beautyfind/beautyfind/pkg/common"
)

// SupportedRetailers is the domain allow-list for URL submissions.
var SupportedRetailers = []string{
	"sephora.com",
	"ulta.com",
	"amazon.com",
	"target.com",
	"cvs.com",
}

// SubmissionSink receives accepted submissions for moderation. In the full
// system this is the scraping/ingestion service; here it is the admin
// moderation queue.
type SubmissionSink interface {
	Enqueue(p domain.PendingProduct)
}

// Submitter validates product-URL submissions against the retailer
// allow-list and hands accepted ones to the sink. It never mutates the
// catalog.
type Submitter struct {
	policy *flakiness.Policy
	sink   SubmissionSink
}

func NewSubmitter(policy *flakiness.Policy, sink SubmissionSink) *Submitter {
	return &Submitter{policy: policy, sink: sink}
}

// SubmitByURL checks the URL's host against the supported retailer domains
// and, after the simulated ingestion round trip, reports the submission as
// accepted for review.
func (s *Submitter) SubmitByURL(ctx context.Context, rawURL, submittedBy string) (*domain.SubmissionReceipt, error) {
	host := hostOf(rawURL)
	if host == "" {
		return nil, errs.Validation("Please enter a valid product URL")
	}
	if !retailerSupported(host) {
		return nil, errs.Unsupported("Retailer not supported. Supported retailers: %s",
			strings.Join(SupportedRetailers, ", "))
	}

	if err := s.policy.Request(ctx); err != nil {
		return nil, err
	}

	if s.sink != nil {
		if submittedBy == "" {
			submittedBy = "guest"
		}
		s.sink.Enqueue(domain.PendingProduct{
			ID:          "pending_" + common.UUIDstr(),
			SourceURL:   rawURL,
			SubmittedBy: submittedBy,
			SubmittedAt: time.Now(),
			Status:      domain.PendingStatusPending,
		})
	}

	return &domain.SubmissionReceipt{
		Status:              "pending",
		Message:             "Product submitted for review. It will appear in the catalog once approved.",
		EstimatedReviewTime: "24-48 hours",
	}, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

func retailerSupported(host string) bool {
	for _, d := range SupportedRetailers {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
