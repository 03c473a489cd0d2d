package controller

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
)

type RecommendationsListResponse struct {
	Data []domain.Recommendation `json:"data"`
}

// RecommendationsList serves a student's recommendations from the algorithm
// named by the "algorithm" query parameter, hybrid by default.
type RecommendationsList struct {
	Recommenders map[domain.Algorithm]command.Recommender
}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	studentID, err := studentIDFromRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse student id", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	algorithm := domain.AlgorithmHybrid
	if q := r.URL.Query(); q.Has("algorithm") {
		algorithm, err = domain.ParseAlgorithm(q.Get("algorithm"))
		if err != nil {
			logger.ErrorContext(ctx, "unable to parse algorithm", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	recommender, ok := c.Recommenders[algorithm]
	if !ok {
		logger.ErrorContext(ctx, "no recommender configured", "algorithm", string(algorithm))
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	recs, err := recommender.Execute(ctx, command.RecommendRequest{StudentID: studentID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommendations",
			"student_id", studentID, "algorithm", string(algorithm), "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if recs == nil {
		recs = []domain.Recommendation{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationsListResponse{Data: recs}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommendations to response", "error", err)
	}
}
