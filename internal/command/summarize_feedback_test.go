package command

import (
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/internship-recommender/internal/datasources/mocks"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummarizeFeedback_Execute(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	lister := mocks.NewMockFeedbackLister(t)
	lister.EXPECT().ListFeedback(mock.Anything).Return([]domain.FeedbackRecord{
		domain.NewFeedbackRecord(1, 101, 5, "", now),
		domain.NewFeedbackRecord(2, 101, 4, "", now),
		domain.NewFeedbackRecord(3, 102, 2, "", now),
		domain.NewFeedbackRecord(4, 103, 5, "", now),
	}, nil)

	analysis, err := NewSummarizeFeedback(lister).Execute(testContext(), Empty{})
	require.NoError(t, err)

	assert.Equal(t, 4, analysis.TotalFeedback)
	assert.InDelta(t, 4.0, analysis.AverageRating, 0.0001)
	assert.InDelta(t, 0.75, analysis.SatisfactionRate, 0.0001)
	assert.Equal(t, map[int]int{2: 1, 4: 1, 5: 2}, analysis.RatingDistribution)
}

func TestSummarizeFeedback_Execute_Error(t *testing.T) {
	errStore := errors.New("store unavailable")

	lister := mocks.NewMockFeedbackLister(t)
	lister.EXPECT().ListFeedback(mock.Anything).Return(nil, errStore)

	_, err := NewSummarizeFeedback(lister).Execute(testContext(), Empty{})
	assert.ErrorIs(t, err, errStore)
}
