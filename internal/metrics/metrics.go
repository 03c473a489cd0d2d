// Package metrics exposes Prometheus instrumentation for recommendation
// serving and offline evaluation runs.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

var (
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommender_request_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"algorithm"},
	)

	RecommendationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_request_errors_total",
			Help: "Total number of failed recommendation requests",
		},
		[]string{"algorithm"},
	)

	RecommendationsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommender_results_count",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 5, 10, 20},
		},
		[]string{"algorithm"},
	)

	EvaluatedStudents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_evaluated_students_total",
			Help: "Total number of students scored during offline evaluation, by outcome",
		},
		[]string{"algorithm", "outcome"},
	)

	EvaluationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommender_evaluation_duration_seconds",
			Help:    "Duration of a per-algorithm offline evaluation in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"algorithm"},
	)

	EvaluationScore = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recommender_evaluation_score",
			Help: "Latest averaged offline evaluation score per algorithm, metric and cutoff",
		},
		[]string{"algorithm", "metric", "k"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommender_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// RecordRecommendation records one recommendation request.
func RecordRecommendation(algorithm string, duration time.Duration, results int, err error) {
	RecommendationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if err != nil {
		RecommendationErrors.WithLabelValues(algorithm).Inc()
		return
	}
	RecommendationsReturned.WithLabelValues(algorithm).Observe(float64(results))
}

// RecordEvaluatedStudent records the outcome of scoring one student.
func RecordEvaluatedStudent(algorithm, outcome string) {
	EvaluatedStudents.WithLabelValues(algorithm, outcome).Inc()
}

// RecordEvaluation records a completed per-algorithm evaluation.
func RecordEvaluation(algorithm string, duration time.Duration) {
	EvaluationDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// SetEvaluationScore publishes an averaged evaluation score.
func SetEvaluationScore(algorithm, metric string, k int, score float64) {
	EvaluationScore.WithLabelValues(algorithm, metric, strconv.Itoa(k)).Set(score)
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}
