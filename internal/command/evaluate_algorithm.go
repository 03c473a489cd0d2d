package command

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jbeshir/internship-recommender/internal/domain"
	"github.com/jbeshir/internship-recommender/internal/metrics"
)

// EvaluationConfig holds configuration for offline evaluation.
type EvaluationConfig struct {
	// TestSplitRatio is the share of each student's applications held out
	// when evaluating collaborative filtering.
	TestSplitRatio float64

	// Seed makes the collaborative train/test split reproducible.
	Seed uint64
}

// minApplicationsForSplit is the smallest history that can be split into a
// non-empty training and test set.
const minApplicationsForSplit = 2

// EvaluateAlgorithmRequest scores one algorithm against the ground truth.
type EvaluateAlgorithmRequest struct {
	Algorithm   domain.Algorithm
	StudentIDs  []int64
	GroundTruth domain.GroundTruth
	KValues     []int
}

// EvaluateAlgorithm computes averaged ranking metrics for one recommender.
// Content-based and hybrid recommendations are scored against each student's
// full application history. Collaborative filtering holds out a random test
// split of the history, recommends from the rest, and is scored against the
// held-out applications.
type EvaluateAlgorithm struct {
	Content              Recommender
	HeldOutCollaborative Recommender
	Hybrid               Recommender
	Config               EvaluationConfig
}

// NewEvaluateAlgorithm creates a properly initialized EvaluateAlgorithm command.
// heldOutCollaborative should honour RecommendRequest.ExcludeInternshipIDs and
// return a deeper list than live serving.
func NewEvaluateAlgorithm(
	content, heldOutCollaborative, hybrid Recommender,
	config EvaluationConfig,
) *EvaluateAlgorithm {
	return &EvaluateAlgorithm{
		Content:              content,
		HeldOutCollaborative: heldOutCollaborative,
		Hybrid:               hybrid,
		Config:               config,
	}
}

var _ Command[EvaluateAlgorithmRequest, domain.AlgorithmMetrics] = (*EvaluateAlgorithm)(nil)

// scoredStudent is one evaluated student's ranked recommendation ids and relevant set.
type scoredStudent struct {
	studentID   int64
	recommended []int64
	relevant    []int64
}

// Execute scores every requested student that appears in the ground truth.
// A failure for one student is logged and the student left out of the
// averages; the run continues.
func (c *EvaluateAlgorithm) Execute(
	ctx context.Context, req EvaluateAlgorithmRequest,
) (domain.AlgorithmMetrics, error) {
	logger := domain.LoggerFromContext(ctx).With("algorithm", string(req.Algorithm))
	start := time.Now()

	var scored []scoredStudent
	switch req.Algorithm {
	case domain.AlgorithmContent:
		scored = c.scoreFullHistory(ctx, logger, c.Content, req)
	case domain.AlgorithmHybrid:
		scored = c.scoreFullHistory(ctx, logger, c.Hybrid, req)
	case domain.AlgorithmCollaborative:
		scored = c.scoreHeldOut(ctx, logger, req)
	default:
		return domain.AlgorithmMetrics{}, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, req.Algorithm)
	}

	result := aggregateMetrics(scored, req.KValues)

	metrics.RecordEvaluation(string(req.Algorithm), time.Since(start))
	for _, metric := range domain.ReportMetrics {
		for _, kv := range result.Get(metric) {
			metrics.SetEvaluationScore(string(req.Algorithm), string(metric), kv.K, kv.Value)
		}
	}

	logger.InfoContext(ctx, "evaluated algorithm",
		"students", len(scored), "duration", time.Since(start))

	return result, nil
}

func (c *EvaluateAlgorithm) scoreFullHistory(
	ctx context.Context, logger *slog.Logger, recommender Recommender, req EvaluateAlgorithmRequest,
) []scoredStudent {
	scored := make([]scoredStudent, 0, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		relevant, ok := req.GroundTruth.Relevant(studentID)
		if !ok {
			continue
		}

		recs, err := recommender.Execute(ctx, RecommendRequest{StudentID: studentID})
		if err != nil {
			logger.ErrorContext(ctx, "failed to evaluate student", "student_id", studentID, "error", err)
			metrics.RecordEvaluatedStudent(string(req.Algorithm), metrics.OutcomeFailure)
			continue
		}

		scored = append(scored, scoredStudent{
			studentID:   studentID,
			recommended: domain.RecommendationIDs(recs),
			relevant:    relevant,
		})
		metrics.RecordEvaluatedStudent(string(req.Algorithm), metrics.OutcomeSuccess)
	}
	return scored
}

func (c *EvaluateAlgorithm) scoreHeldOut(
	ctx context.Context, logger *slog.Logger, req EvaluateAlgorithmRequest,
) []scoredStudent {
	rng := domain.NewSeededRand(c.Config.Seed)

	scored := make([]scoredStudent, 0, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		history, ok := req.GroundTruth.Relevant(studentID)
		if !ok {
			continue
		}
		if len(history) < minApplicationsForSplit {
			metrics.RecordEvaluatedStudent(string(req.Algorithm), metrics.OutcomeSkipped)
			continue
		}

		student, err := c.scoreHeldOutStudent(ctx, studentID, history, rng)
		if err != nil {
			logger.ErrorContext(ctx, "failed to evaluate student", "student_id", studentID, "error", err)
			metrics.RecordEvaluatedStudent(string(req.Algorithm), metrics.OutcomeFailure)
			continue
		}

		scored = append(scored, student)
		metrics.RecordEvaluatedStudent(string(req.Algorithm), metrics.OutcomeSuccess)
	}
	return scored
}

func (c *EvaluateAlgorithm) scoreHeldOutStudent(
	ctx context.Context, studentID int64, history []int64, rng *rand.Rand,
) (scoredStudent, error) {
	_, test := domain.TrainTestSplit(history, c.Config.TestSplitRatio, rng)

	recs, err := c.HeldOutCollaborative.Execute(ctx, RecommendRequest{
		StudentID:            studentID,
		ExcludeInternshipIDs: test,
	})
	if err != nil {
		return scoredStudent{}, fmt.Errorf("recommending from training set: %w", err)
	}

	return scoredStudent{
		studentID:   studentID,
		recommended: domain.RecommendationIDs(recs),
		relevant:    test,
	}, nil
}

// aggregateMetrics averages precision, recall and NDCG over the scored
// students and computes MAP over those with a non-empty relevant set.
func aggregateMetrics(scored []scoredStudent, kValues []int) domain.AlgorithmMetrics {
	students := make([]int64, 0, len(scored))
	recommended := make(map[int64][]int64, len(scored))
	relevant := make(map[int64][]int64, len(scored))
	for _, s := range scored {
		students = append(students, s.studentID)
		recommended[s.studentID] = s.recommended
		relevant[s.studentID] = s.relevant
	}

	var result domain.AlgorithmMetrics
	for _, k := range kValues {
		var precision, recall, ndcg float64
		for _, s := range scored {
			precision += domain.PrecisionAtK(s.recommended, s.relevant, k)
			recall += domain.RecallAtK(s.recommended, s.relevant, k)
			ndcg += domain.NDCGAtK(s.recommended, s.relevant, k)
		}
		if n := float64(len(scored)); n > 0 {
			precision /= n
			recall /= n
			ndcg /= n
		}

		result.Precision = append(result.Precision, domain.KValue[float64]{K: k, Value: precision})
		result.Recall = append(result.Recall, domain.KValue[float64]{K: k, Value: recall})
		result.NDCG = append(result.NDCG, domain.KValue[float64]{K: k, Value: ndcg})
		result.MAP = append(result.MAP, domain.KValue[float64]{
			K:     k,
			Value: domain.MeanAveragePrecision(students, recommended, relevant, k),
		})
	}
	return result
}
