package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/internship-recommender/internal/domain"
)

// ABTest compares two algorithms by evaluating each on a disjoint random
// half of the students. Call SplitUsers before Run.
type ABTest struct {
	Evaluator   Command[EvaluateAlgorithmRequest, domain.AlgorithmMetrics]
	GroundTruth Command[LoadGroundTruthRequest, domain.GroundTruth]
	AlgorithmA  domain.Algorithm
	AlgorithmB  domain.Algorithm

	groupA []int64
	groupB []int64
}

// NewABTest creates an ABTest between two named algorithms, failing fast on
// an unknown name.
func NewABTest(
	evaluator Command[EvaluateAlgorithmRequest, domain.AlgorithmMetrics],
	groundTruth Command[LoadGroundTruthRequest, domain.GroundTruth],
	algorithmA, algorithmB string,
) (*ABTest, error) {
	a, err := domain.ParseAlgorithm(algorithmA)
	if err != nil {
		return nil, fmt.Errorf("parsing group A algorithm: %w", err)
	}
	b, err := domain.ParseAlgorithm(algorithmB)
	if err != nil {
		return nil, fmt.Errorf("parsing group B algorithm: %w", err)
	}

	return &ABTest{
		Evaluator:   evaluator,
		GroundTruth: groundTruth,
		AlgorithmA:  a,
		AlgorithmB:  b,
	}, nil
}

// SplitUsers shuffles studentIDs with a generator seeded from seed and gives
// the first int(len*ratio) to group A and the rest to group B. The same seed
// and input always produce the same groups.
func (t *ABTest) SplitUsers(ctx context.Context, studentIDs []int64, ratio float64, seed uint64) {
	t.groupA, t.groupB = domain.SplitGroups(studentIDs, ratio, domain.NewSeededRand(seed))

	domain.LoggerFromContext(ctx).InfoContext(ctx, "split users for a/b test",
		"group_a_algorithm", string(t.AlgorithmA), "group_a_users", len(t.groupA),
		"group_b_algorithm", string(t.AlgorithmB), "group_b_users", len(t.groupB))
}

// Groups returns the current group A and group B students.
func (t *ABTest) Groups() (a, b []int64) {
	return t.groupA, t.groupB
}

// Run reloads the full ground truth and evaluates each group with its algorithm.
func (t *ABTest) Run(ctx context.Context, kValues []int) (domain.ABTestResult, error) {
	gt, err := t.GroundTruth.Execute(ctx, LoadGroundTruthRequest{})
	if err != nil {
		return domain.ABTestResult{}, fmt.Errorf("loading ground truth: %w", err)
	}

	groupA, err := t.evaluateGroup(ctx, t.AlgorithmA, t.groupA, gt, kValues)
	if err != nil {
		return domain.ABTestResult{}, fmt.Errorf("evaluating group A: %w", err)
	}

	groupB, err := t.evaluateGroup(ctx, t.AlgorithmB, t.groupB, gt, kValues)
	if err != nil {
		return domain.ABTestResult{}, fmt.Errorf("evaluating group B: %w", err)
	}

	return domain.ABTestResult{GroupA: groupA, GroupB: groupB}, nil
}

func (t *ABTest) evaluateGroup(
	ctx context.Context,
	algorithm domain.Algorithm,
	studentIDs []int64,
	gt domain.GroundTruth,
	kValues []int,
) (domain.ABTestGroup, error) {
	domain.LoggerFromContext(ctx).InfoContext(ctx, "evaluating a/b group",
		"algorithm", string(algorithm), "users", len(studentIDs))

	results, err := t.Evaluator.Execute(ctx, EvaluateAlgorithmRequest{
		Algorithm:   algorithm,
		StudentIDs:  studentIDs,
		GroundTruth: gt,
		KValues:     kValues,
	})
	if err != nil {
		return domain.ABTestGroup{}, err
	}

	return domain.ABTestGroup{
		Algorithm: algorithm,
		Users:     len(studentIDs),
		Results:   results,
	}, nil
}
