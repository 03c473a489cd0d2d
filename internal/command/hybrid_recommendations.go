package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/domain"
)

// HybridRecommendations runs the content-based and collaborative recommenders
// and merges their results with domain.MergeRecommendations.
type HybridRecommendations struct {
	Content       Recommender
	Collaborative Recommender
}

// NewHybridRecommendations creates a properly initialized HybridRecommendations command.
func NewHybridRecommendations(content, collaborative Recommender) *HybridRecommendations {
	return &HybridRecommendations{
		Content:       content,
		Collaborative: collaborative,
	}
}

var _ Recommender = (*HybridRecommendations)(nil)

func (c *HybridRecommendations) Execute(ctx context.Context, req RecommendRequest) ([]domain.Recommendation, error) {
	content, err := c.Content.Execute(ctx, RecommendRequest{StudentID: req.StudentID})
	if err != nil {
		return nil, fmt.Errorf("getting content-based recommendations: %w", err)
	}

	collaborative, err := c.Collaborative.Execute(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("getting collaborative recommendations: %w", err)
	}

	return domain.MergeRecommendations(content, collaborative), nil
}
