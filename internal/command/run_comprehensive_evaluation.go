package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/internship-recommender/internal/domain"
)

// minStudentsForEvaluation is the fewest students with applications for
// averaged metrics to mean much. Fewer only produces a warning.
const minStudentsForEvaluation = 2

// ReportWriter persists or displays a finished evaluation report.
type ReportWriter interface {
	WriteReport(ctx context.Context, report domain.EvaluationReport) error
}

// ABTestPlan configures the optional A/B test of a comprehensive evaluation.
type ABTestPlan struct {
	AlgorithmA string
	AlgorithmB string
	SplitRatio float64
	Seed       uint64
}

// RunComprehensiveEvaluationRequest is the request for the RunComprehensiveEvaluation command.
type RunComprehensiveEvaluationRequest struct {
	KValues   []int
	RunABTest bool
	ABTest    ABTestPlan
}

// RunComprehensiveEvaluation evaluates all three recommenders against every
// student with application history, builds the comparative report,
// optionally attaches an A/B test, and hands the result to each writer.
type RunComprehensiveEvaluation struct {
	GroundTruth Command[LoadGroundTruthRequest, domain.GroundTruth]
	Evaluator   Command[EvaluateAlgorithmRequest, domain.AlgorithmMetrics]
	Writers     []ReportWriter
	Now         func() time.Time
}

// NewRunComprehensiveEvaluation creates a properly initialized RunComprehensiveEvaluation command.
func NewRunComprehensiveEvaluation(
	groundTruth Command[LoadGroundTruthRequest, domain.GroundTruth],
	evaluator Command[EvaluateAlgorithmRequest, domain.AlgorithmMetrics],
	writers ...ReportWriter,
) *RunComprehensiveEvaluation {
	return &RunComprehensiveEvaluation{
		GroundTruth: groundTruth,
		Evaluator:   evaluator,
		Writers:     writers,
		Now:         time.Now,
	}
}

var _ Command[RunComprehensiveEvaluationRequest, domain.EvaluationReport] = (*RunComprehensiveEvaluation)(nil)

func (c *RunComprehensiveEvaluation) Execute(
	ctx context.Context, req RunComprehensiveEvaluationRequest,
) (domain.EvaluationReport, error) {
	logger := domain.LoggerFromContext(ctx)

	var abTest *ABTest
	if req.RunABTest {
		var err error
		abTest, err = NewABTest(c.Evaluator, c.GroundTruth, req.ABTest.AlgorithmA, req.ABTest.AlgorithmB)
		if err != nil {
			return domain.EvaluationReport{}, fmt.Errorf("configuring a/b test: %w", err)
		}
	}

	logger.InfoContext(ctx, "loading ground truth")
	gt, err := c.GroundTruth.Execute(ctx, LoadGroundTruthRequest{})
	if err != nil {
		return domain.EvaluationReport{}, fmt.Errorf("loading ground truth: %w", err)
	}

	logger.InfoContext(ctx, "loaded ground truth",
		"students", gt.Len(), "applications", gt.TotalApplications())

	if gt.Len() == 0 {
		return domain.EvaluationReport{}, domain.ErrNoGroundTruth
	}
	if gt.Len() < minStudentsForEvaluation {
		logger.WarnContext(ctx, "not enough students for a meaningful evaluation", "students", gt.Len())
	}

	results := make(map[domain.Algorithm]domain.AlgorithmMetrics, len(domain.Algorithms))
	for _, algorithm := range domain.Algorithms {
		logger.InfoContext(ctx, "evaluating algorithm", "algorithm", string(algorithm))

		metrics, err := c.Evaluator.Execute(ctx, EvaluateAlgorithmRequest{
			Algorithm:   algorithm,
			StudentIDs:  gt.Students(),
			GroundTruth: gt,
			KValues:     req.KValues,
		})
		if err != nil {
			return domain.EvaluationReport{}, fmt.Errorf("evaluating %s: %w", algorithm, err)
		}
		results[algorithm] = metrics
	}

	report := domain.NewEvaluationReport(
		results[domain.AlgorithmContent],
		results[domain.AlgorithmCollaborative],
		results[domain.AlgorithmHybrid],
		c.Now(),
	)

	if abTest != nil {
		abTest.SplitUsers(ctx, gt.Students(), req.ABTest.SplitRatio, req.ABTest.Seed)
		abResult, err := abTest.Run(ctx, req.KValues)
		if err != nil {
			return domain.EvaluationReport{}, fmt.Errorf("running a/b test: %w", err)
		}
		report.ABTest = &abResult
	}

	for _, w := range c.Writers {
		if err := w.WriteReport(ctx, report); err != nil {
			return domain.EvaluationReport{}, fmt.Errorf("writing report: %w", err)
		}
	}

	return report, nil
}
