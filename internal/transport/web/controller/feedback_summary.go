package controller

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

type FeedbackSummaryResponse struct {
	Data domain.SurveyAnalysis `json:"data"`
}

// FeedbackSummary reports rating statistics over all submitted feedback.
type FeedbackSummary struct {
	Command command.Command[command.Empty, domain.SurveyAnalysis]
}

func (c FeedbackSummary) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	analysis, err := c.Command.Execute(ctx, command.Empty{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to summarize feedback", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if analysis.RatingDistribution == nil {
		analysis.RatingDistribution = map[int]int{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(FeedbackSummaryResponse{Data: analysis}); err != nil {
		logger.ErrorContext(ctx, "unable to write feedback summary to response", "error", err)
	}
}
