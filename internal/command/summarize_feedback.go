package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/datasources"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

// SummarizeFeedback analyses every saved feedback record.
type SummarizeFeedback struct {
	Lister datasources.FeedbackLister
}

// NewSummarizeFeedback creates a properly initialized SummarizeFeedback command.
func NewSummarizeFeedback(lister datasources.FeedbackLister) *SummarizeFeedback {
	return &SummarizeFeedback{Lister: lister}
}

var _ Command[Empty, domain.SurveyAnalysis] = (*SummarizeFeedback)(nil)

func (c *SummarizeFeedback) Execute(ctx context.Context, _ Empty) (domain.SurveyAnalysis, error) {
	records, err := c.Lister.ListFeedback(ctx)
	if err != nil {
		return domain.SurveyAnalysis{}, fmt.Errorf("listing feedback: %w", err)
	}

	return domain.AnalyzeSurveys(records), nil
}
