package catalog

import (
	"context"
	"testing"

	"github.com/beautyfind/beautyfind/internal/domain"
	"github.com/beautyfind/beautyfind/internal/errs"
	"github.com/beautyfind/beautyfind/internal/flakiness"
)

type captureSink struct {
	got []domain.PendingProduct
}

func (c *captureSink) Enqueue(p domain.PendingProduct) { c.got = append(c.got, p) }

func TestSubmitByURL(t *testing.T) {
	sink := &captureSink{}
	s := NewSubmitter(flakiness.Disabled(), sink)

	receipt, err := s.SubmitByURL(context.Background(), "https://www.sephora.com/product/some-cream", "user@example.com")
	if err != nil {
		t.Fatalf("SubmitByURL: %v", err)
	}
	if receipt.Status != "pending" || receipt.EstimatedReviewTime != "24-48 hours" {
		t.Errorf("receipt = %+v", receipt)
	}
	if len(sink.got) != 1 {
		t.Fatalf("sink received %d submissions, want 1", len(sink.got))
	}
	p := sink.got[0]
	if p.SubmittedBy != "user@example.com" || p.Status != domain.PendingStatusPending {
		t.Errorf("pending entry = %+v", p)
	}
	if p.ID == "" || p.SourceURL == "" {
		t.Errorf("pending entry missing id or source URL: %+v", p)
	}
}

func TestSubmitByURLAnonymousFallsBackToGuest(t *testing.T) {
	sink := &captureSink{}
	s := NewSubmitter(flakiness.Disabled(), sink)

	if _, err := s.SubmitByURL(context.Background(), "https://ulta.com/p/x", ""); err != nil {
		t.Fatalf("SubmitByURL: %v", err)
	}
	if sink.got[0].SubmittedBy != "guest" {
		t.Errorf("SubmittedBy = %q, want guest", sink.got[0].SubmittedBy)
	}
}

func TestSubmitByURLRejections(t *testing.T) {
	sink := &captureSink{}
	s := NewSubmitter(flakiness.Disabled(), sink)

	tests := []struct {
		name string
		url  string
		kind errs.Kind
	}{
		{"no host", "not a url", errs.KindValidation},
		{"empty", "", errs.KindValidation},
		{"unsupported retailer", "https://walmart.com/item/123", errs.KindUnsupported},
		{"lookalike domain", "https://sephora.com.evil.example/x", errs.KindUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.SubmitByURL(context.Background(), tc.url, "user@example.com")
			if !errs.IsKind(err, tc.kind) {
				t.Errorf("err = %v, want kind %s", err, tc.kind)
			}
		})
	}
	if len(sink.got) != 0 {
		t.Errorf("rejected submissions reached the sink: %d", len(sink.got))
	}
}

func TestSubmitByURLTransientFailureSkipsSink(t *testing.T) {
	sink := &captureSink{}
	s := NewSubmitter(flakiness.AlwaysFailing(), sink)

	_, err := s.SubmitByURL(context.Background(), "https://amazon.com/dp/B00X", "user@example.com")
	if !errs.IsKind(err, errs.KindTransient) {
		t.Fatalf("err = %v, want transient", err)
	}
	if len(sink.got) != 0 {
		t.Error("failed submission still reached the sink")
	}
}

func TestSubdomainsOfSupportedRetailersAccepted(t *testing.T) {
	s := NewSubmitter(flakiness.Disabled(), &captureSink{})
	if _, err := s.SubmitByURL(context.Background(), "https://smile.amazon.com/dp/B00X", ""); err != nil {
		t.Errorf("subdomain of supported retailer rejected: %v", err)
	}
}
