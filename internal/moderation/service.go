// Package moderation holds the admin dashboard's pending-product queue and
// sample reporting data. Approve/reject only settle the queue entry; the
// seeded catalog is managed elsewhere and is never touched from here.
package moderation

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/beautyfind/beautyfind/internal/domain"
	"github.com/beautyfind/beautyfind/internal/errs"
)

// TopicDecided is published with (id, decision) after approve/reject.
const TopicDecided = "moderation.decided"

const activityFeedLimit = 50

// Service is the in-memory moderation queue.
type Service struct {
	bus EventBus.Bus

	mu       sync.Mutex
	pending  []domain.PendingProduct
	activity []domain.Activity
}

// NewService builds a moderation queue seeded with the demo submissions.
// The bus may be nil.
func NewService(bus EventBus.Bus) *Service {
	return &Service{bus: bus, pending: seedPending()}
}

// Enqueue adds a submission to the pending queue.
func (s *Service) Enqueue(p domain.PendingProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Status == "" {
		p.Status = domain.PendingStatusPending
	}
	s.pending = append(s.pending, p)
	s.record("product_submitted", "New product submitted from "+p.SourceURL)
	zap.L().Info("submission queued", zap.String("id", p.ID), zap.String("source", p.SourceURL))
}

// Pending lists the queue, newest submissions last.
func (s *Service) Pending() []domain.PendingProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PendingProduct, len(s.pending))
	copy(out, s.pending)
	return out
}

// PendingCount reports the queue length.
func (s *Service) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// StartReview marks a submission as being reviewed.
func (s *Service) StartReview(id string) (*domain.PendingProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pending {
		if s.pending[i].ID == id {
			s.pending[i].Status = domain.PendingStatusReviewing
			p := s.pending[i]
			return &p, nil
		}
	}
	return nil, errs.NotFound("Pending product not found")
}

// Approve settles a submission positively and removes it from the queue.
func (s *Service) Approve(id string) (*domain.PendingProduct, error) {
	return s.decide(id, "approved")
}

// Reject settles a submission negatively and removes it from the queue.
func (s *Service) Reject(id string) (*domain.PendingProduct, error) {
	return s.decide(id, "rejected")
}

func (s *Service) decide(id, decision string) (*domain.PendingProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pending {
		if s.pending[i].ID != id {
			continue
		}
		p := s.pending[i]
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		s.record("product_"+decision, p.Name+" has been "+decision)
		if s.bus != nil {
			s.bus.Publish(TopicDecided, p.ID, decision)
		}
		zap.L().Info("submission settled", zap.String("id", p.ID), zap.String("decision", decision))
		return &p, nil
	}
	return nil, errs.NotFound("Pending product not found")
}

// RecentActivity returns the activity feed, newest first.
func (s *Service) RecentActivity() []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Activity, len(s.activity))
	copy(out, s.activity)
	return out
}

// PruneActivity drops activity entries older than maxAge.
func (s *Service) PruneActivity(maxAge time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	kept := s.activity[:0]
	for _, a := range s.activity {
		if a.Time.After(cutoff) {
			kept = append(kept, a)
		}
	}
	s.activity = kept
}

func (s *Service) record(kind, message string) {
	s.activity = append([]domain.Activity{{
		Type:    kind,
		Message: message,
		Time:    time.Now(),
	}}, s.activity...)
	if len(s.activity) > activityFeedLimit {
		s.activity = s.activity[:activityFeedLimit]
	}
}
