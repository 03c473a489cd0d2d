package domain

import (
	"errors"
	"math/rand/v2"
)

// ErrNoGroundTruth is returned when no student has any application history to evaluate against.
var ErrNoGroundTruth = errors.New("no students with application history")

// GroundTruth maps each student to the internships they actually applied to.
// Students are kept in order of first appearance.
type GroundTruth struct {
	students []int64
	items    map[int64][]int64
}

func NewGroundTruth(applications []Application) GroundTruth {
	gt := GroundTruth{items: make(map[int64][]int64)}
	for _, app := range applications {
		if _, ok := gt.items[app.StudentID]; !ok {
			gt.students = append(gt.students, app.StudentID)
		}
		gt.items[app.StudentID] = append(gt.items[app.StudentID], app.InternshipID)
	}
	return gt
}

// Students returns the ids of students with at least one application.
func (g GroundTruth) Students() []int64 {
	return g.students
}

// Relevant returns the internships the student applied to, and whether the student has any.
func (g GroundTruth) Relevant(studentID int64) ([]int64, bool) {
	items, ok := g.items[studentID]
	return items, ok
}

func (g GroundTruth) Len() int {
	return len(g.students)
}

func (g GroundTruth) TotalApplications() int {
	total := 0
	for _, items := range g.items {
		total += len(items)
	}
	return total
}

// TrainTestSplit shuffles a copy of items with rng and holds out the first
// max(1, int(len(items)*testRatio)) of them as the test set.
func TrainTestSplit(items []int64, testRatio float64, rng *rand.Rand) (train, test []int64) {
	shuffled := make([]int64, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	testSize := min(max(1, int(float64(len(shuffled))*testRatio)), len(shuffled))
	return shuffled[testSize:], shuffled[:testSize]
}

// SplitGroups shuffles a copy of ids with rng and splits it at int(len(ids)*ratio).
func SplitGroups(ids []int64, ratio float64, rng *rand.Rand) (a, b []int64) {
	shuffled := make([]int64, len(ids))
	copy(shuffled, ids)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	splitPoint := min(max(0, int(float64(len(shuffled))*ratio)), len(shuffled))
	return shuffled[:splitPoint], shuffled[splitPoint:]
}

// NewSeededRand returns a deterministic generator for evaluation runs.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // reproducibility matters, not unpredictability
}
