package command

import (
	"context"
	"errors"
	"testing"
	"time"

	cmdmocks "github.com/jbeshir/internship-recommender/internal/command/mocks"
	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 4, 5, 6, 7, 890000000, time.UTC)
}

func TestRunComprehensiveEvaluation_Execute(t *testing.T) {
	gt := groundTruthOf([2]int64{1, 101}, [2]int64{1, 102}, [2]int64{2, 103})

	loader := newGroundTruthMock(t)
	evaluator := newEvaluatorMock(t)
	writer := cmdmocks.NewMockReportWriter(t)

	loader.EXPECT().Execute(mock.Anything, LoadGroundTruthRequest{}).Return(gt, nil)
	scores := map[domain.Algorithm]float64{
		domain.AlgorithmContent:       0.2,
		domain.AlgorithmCollaborative: 0.6,
		domain.AlgorithmHybrid:        0.4,
	}
	for algorithm, score := range scores {
		evaluator.EXPECT().Execute(mock.Anything, EvaluateAlgorithmRequest{
			Algorithm: algorithm, StudentIDs: []int64{1, 2}, GroundTruth: gt, KValues: []int{5},
		}).Return(metricsWithPrecision(5, score), nil).Once()
	}

	var written domain.EvaluationReport
	writer.EXPECT().WriteReport(mock.Anything, mock.Anything).
		Run(func(_ context.Context, report domain.EvaluationReport) { written = report }).
		Return(nil)

	cmd := NewRunComprehensiveEvaluation(loader, evaluator, writer)
	cmd.Now = fixedNow

	report, err := cmd.Execute(testContext(), RunComprehensiveEvaluationRequest{KValues: []int{5}})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-04T05:06:07.890000", report.Timestamp)
	assert.Nil(t, report.ABTest)
	assert.Equal(t, report, written)

	entry, ok := report.Comparison.Precision.Get(5)
	require.True(t, ok)
	assert.Equal(t, "collaborative_filtering", entry.BestAlgorithm)
	assert.InDelta(t, 0.2, entry.ContentBased, 0.0001)
	assert.Contains(t, report.Summary.Recommendations, "Collaborative performs best for PRECISION@5")
}

func TestRunComprehensiveEvaluation_Execute_WithABTest(t *testing.T) {
	gt := groundTruthOf([2]int64{1, 101}, [2]int64{2, 102}, [2]int64{3, 103}, [2]int64{4, 104})

	loader := newGroundTruthMock(t)
	evaluator := newEvaluatorMock(t)
	writer := cmdmocks.NewMockReportWriter(t)

	loader.EXPECT().Execute(mock.Anything, LoadGroundTruthRequest{}).Return(gt, nil).Times(2)
	evaluator.EXPECT().Execute(mock.Anything, mock.Anything).Return(metricsWithPrecision(5, 0.3), nil).Times(5)
	writer.EXPECT().WriteReport(mock.Anything, mock.MatchedBy(func(r domain.EvaluationReport) bool {
		return r.ABTest != nil
	})).Return(nil)

	cmd := NewRunComprehensiveEvaluation(loader, evaluator, writer)
	report, err := cmd.Execute(testContext(), RunComprehensiveEvaluationRequest{
		KValues:   []int{5},
		RunABTest: true,
		ABTest:    ABTestPlan{AlgorithmA: "content", AlgorithmB: "hybrid", SplitRatio: 0.5, Seed: 42},
	})

	require.NoError(t, err)
	require.NotNil(t, report.ABTest)
	assert.Equal(t, domain.AlgorithmContent, report.ABTest.GroupA.Algorithm)
	assert.Equal(t, domain.AlgorithmHybrid, report.ABTest.GroupB.Algorithm)
	assert.Equal(t, 4, report.ABTest.GroupA.Users+report.ABTest.GroupB.Users)
}

func TestRunComprehensiveEvaluation_Execute_Errors(t *testing.T) {
	errDB := errors.New("connection reset")

	cases := []struct {
		name    string
		setup   func(*cmdmocks.MockCommand[LoadGroundTruthRequest, domain.GroundTruth], *cmdmocks.MockCommand[EvaluateAlgorithmRequest, domain.AlgorithmMetrics], *cmdmocks.MockReportWriter)
		req     RunComprehensiveEvaluationRequest
		wantErr error
	}{
		{
			name: "no_ground_truth",
			setup: func(l *cmdmocks.MockCommand[LoadGroundTruthRequest, domain.GroundTruth], _ *cmdmocks.MockCommand[EvaluateAlgorithmRequest, domain.AlgorithmMetrics], _ *cmdmocks.MockReportWriter) {
				l.EXPECT().Execute(mock.Anything, mock.Anything).Return(groundTruthOf(), nil)
			},
			wantErr: domain.ErrNoGroundTruth,
		},
		{
			name: "loader_error",
			setup: func(l *cmdmocks.MockCommand[LoadGroundTruthRequest, domain.GroundTruth], _ *cmdmocks.MockCommand[EvaluateAlgorithmRequest, domain.AlgorithmMetrics], _ *cmdmocks.MockReportWriter) {
				l.EXPECT().Execute(mock.Anything, mock.Anything).Return(domain.GroundTruth{}, errDB)
			},
			wantErr: errDB,
		},
		{
			// Rejected before ground truth is loaded or anything is evaluated.
			name:  "unknown_ab_algorithm_b",
			setup: func(*cmdmocks.MockCommand[LoadGroundTruthRequest, domain.GroundTruth], *cmdmocks.MockCommand[EvaluateAlgorithmRequest, domain.AlgorithmMetrics], *cmdmocks.MockReportWriter) {},
			req: RunComprehensiveEvaluationRequest{
				KValues:   []int{5},
				RunABTest: true,
				ABTest:    ABTestPlan{AlgorithmA: "content", AlgorithmB: "popularity"},
			},
			wantErr: domain.ErrUnknownAlgorithm,
		},
		{
			name:  "unknown_ab_algorithm_a",
			setup: func(*cmdmocks.MockCommand[LoadGroundTruthRequest, domain.GroundTruth], *cmdmocks.MockCommand[EvaluateAlgorithmRequest, domain.AlgorithmMetrics], *cmdmocks.MockReportWriter) {},
			req: RunComprehensiveEvaluationRequest{
				KValues:   []int{5},
				RunABTest: true,
				ABTest:    ABTestPlan{AlgorithmA: "", AlgorithmB: "hybrid"},
			},
			wantErr: domain.ErrUnknownAlgorithm,
		},
		{
			name: "writer_error",
			setup: func(l *cmdmocks.MockCommand[LoadGroundTruthRequest, domain.GroundTruth], e *cmdmocks.MockCommand[EvaluateAlgorithmRequest, domain.AlgorithmMetrics], w *cmdmocks.MockReportWriter) {
				l.EXPECT().Execute(mock.Anything, mock.Anything).Return(groundTruthOf([2]int64{1, 101}), nil)
				e.EXPECT().Execute(mock.Anything, mock.Anything).Return(metricsWithPrecision(5, 0), nil).Times(3)
				w.EXPECT().WriteReport(mock.Anything, mock.Anything).Return(errDB)
			},
			req:     RunComprehensiveEvaluationRequest{KValues: []int{5}},
			wantErr: errDB,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loader := newGroundTruthMock(t)
			evaluator := newEvaluatorMock(t)
			writer := cmdmocks.NewMockReportWriter(t)
			tc.setup(loader, evaluator, writer)

			_, err := NewRunComprehensiveEvaluation(loader, evaluator, writer).Execute(testContext(), tc.req)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
