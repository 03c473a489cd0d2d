package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/internship-recommender/internal/command"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/transport/web/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func MakeRouter(
	recommenders map[domain.Algorithm]command.Recommender,
	validateAlgorithms command.Command[command.Empty, domain.HybridValidation],
	saveFeedback command.Command[domain.FeedbackRecord, command.Empty],
	summarizeFeedback command.Command[command.Empty, domain.SurveyAnalysis],
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
	limiter *RateLimiter,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestLoggerMiddleware)
	if limiter != nil {
		r.Use(limiter.middleware)
	}

	r.Handle("/v1/students/{student_id:[0-9]+}/recommendations", controller.RecommendationsList{
		Recommenders: recommenders,
	}).Methods(http.MethodGet)

	r.Handle("/v1/students/{student_id:[0-9]+}/feedback", controller.FeedbackCreate{
		Command: saveFeedback,
		Now:     time.Now,
	}).Methods(http.MethodPost)

	r.Handle("/v1/feedback/summary", controller.FeedbackSummary{
		Command: summarizeFeedback,
	}).Methods(http.MethodGet)

	r.Handle("/v1/diagnostics", controller.Diagnostics{
		Command: validateAlgorithms,
	}).Methods(http.MethodGet)

	r.Handle("/students/{student_id:[0-9]+}/rss", controller.RecommendationsRSS{
		FeedHostname:    rssFeedBaseURL,
		FeedAuthorName:  rssFeedAuthorName,
		FeedAuthorEmail: rssFeedAuthorEmail,
		Recommender:     recommenders[domain.AlgorithmHybrid],
		CacheMaxAge:     rssCacheMaxAge,
		Now:             time.Now,
	}).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return corsSettings().Handler(r), nil
}
