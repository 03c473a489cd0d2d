package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

var (
	_ datasources.FeedbackSaver  = (*FeedbackStore)(nil)
	_ datasources.FeedbackLister = (*FeedbackStore)(nil)
)

// FeedbackStore keeps submitted feedback for the lifetime of the process.
type FeedbackStore struct {
	mu      sync.RWMutex
	records []domain.FeedbackRecord
}

func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{}
}

func (s *FeedbackStore) SaveFeedback(_ context.Context, record domain.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	return nil
}

func (s *FeedbackStore) ListFeedback(_ context.Context) ([]domain.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.records), nil
}
