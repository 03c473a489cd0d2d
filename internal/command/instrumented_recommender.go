package command

import (
	"context"
	"time"

	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/metrics"
)

// InstrumentedRecommender records latency, errors and result counts of the
// wrapped recommender under its algorithm label.
type InstrumentedRecommender struct {
	Algorithm domain.Algorithm
	Next      Recommender
}

// NewInstrumentedRecommender wraps next with Prometheus instrumentation.
func NewInstrumentedRecommender(algorithm domain.Algorithm, next Recommender) *InstrumentedRecommender {
	return &InstrumentedRecommender{
		Algorithm: algorithm,
		Next:      next,
	}
}

var _ Recommender = (*InstrumentedRecommender)(nil)

func (c *InstrumentedRecommender) Execute(ctx context.Context, req RecommendRequest) ([]domain.Recommendation, error) {
	start := time.Now()
	recs, err := c.Next.Execute(ctx, req)
	metrics.RecordRecommendation(string(c.Algorithm), time.Since(start), len(recs), err)
	return recs, err
}
