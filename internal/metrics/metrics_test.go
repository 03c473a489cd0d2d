package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRecommendation(t *testing.T) {
	cases := []struct {
		name      string
		algorithm string
		results   int
		err       error
		wantErrs  float64
	}{
		{name: "success", algorithm: "test_success", results: 3, wantErrs: 0},
		{name: "failure", algorithm: "test_failure", err: errors.New("db down"), wantErrs: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			RecordRecommendation(tc.algorithm, 5*time.Millisecond, tc.results, tc.err)
			assert.Equal(t, tc.wantErrs, testutil.ToFloat64(RecommendationErrors.WithLabelValues(tc.algorithm)))
		})
	}
}

func TestRecordEvaluatedStudent(t *testing.T) {
	before := testutil.ToFloat64(EvaluatedStudents.WithLabelValues("test_algo", OutcomeSkipped))
	RecordEvaluatedStudent("test_algo", OutcomeSkipped)
	RecordEvaluatedStudent("test_algo", OutcomeSkipped)
	after := testutil.ToFloat64(EvaluatedStudents.WithLabelValues("test_algo", OutcomeSkipped))

	assert.Equal(t, before+2, after)
}

func TestSetEvaluationScore(t *testing.T) {
	SetEvaluationScore("test_algo", "precision", 10, 0.42)
	assert.InDelta(t, 0.42, testutil.ToFloat64(EvaluationScore.WithLabelValues("test_algo", "precision", "10")), 0.0001)
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/test", 404, time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test", "404")))
}
