package domain

import "math"

// Ranking metrics compare a ranked list of recommended internship ids against
// the ids a student actually applied to. All of them return 0 for degenerate
// input (k <= 0, no relevant items) rather than failing.

func topK(recommended []int64, k int) []int64 {
	if k < len(recommended) {
		return recommended[:k]
	}
	return recommended
}

func hitCount(recommended []int64, relevant Set[int64], k int) int {
	hits := 0
	for item := range NewSet(topK(recommended, k)...) {
		if relevant.Contains(item) {
			hits++
		}
	}
	return hits
}

// PrecisionAtK is the share of the top k recommendations that are relevant.
func PrecisionAtK(recommended, relevant []int64, k int) float64 {
	if k <= 0 {
		return 0
	}
	return float64(hitCount(recommended, NewSet(relevant...), k)) / float64(k)
}

// RecallAtK is the share of relevant items found in the top k recommendations.
func RecallAtK(recommended, relevant []int64, k int) float64 {
	relevantSet := NewSet(relevant...)
	if len(relevantSet) == 0 || k <= 0 {
		return 0
	}
	return float64(hitCount(recommended, relevantSet, k)) / float64(len(relevantSet))
}

// AveragePrecision accumulates precision at each relevant position within the
// top k and divides by the number of relevant items, so it never exceeds recall.
func AveragePrecision(recommended, relevant []int64, k int) float64 {
	relevantSet := NewSet(relevant...)
	if len(relevantSet) == 0 || k <= 0 {
		return 0
	}

	var found int
	var sum float64
	for i, item := range topK(recommended, k) {
		if relevantSet.Contains(item) {
			found++
			sum += float64(found) / float64(i+1)
		}
	}

	return sum / float64(len(relevantSet))
}

// MeanAveragePrecision averages AveragePrecision over users with at least one
// relevant item. Users are visited in the order of users so the floating point
// sum is reproducible.
func MeanAveragePrecision(
	users []int64,
	recommended map[int64][]int64,
	relevant map[int64][]int64,
	k int,
) float64 {
	var sum float64
	var counted int
	for _, user := range users {
		recs, ok := recommended[user]
		if !ok {
			continue
		}
		if len(relevant[user]) == 0 {
			continue
		}
		sum += AveragePrecision(recs, relevant[user], k)
		counted++
	}

	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// DCGAtK is the binary-relevance discounted cumulative gain of the top k.
func DCGAtK(recommended, relevant []int64, k int) float64 {
	if k <= 0 {
		return 0
	}
	return dcg(topK(recommended, k), NewSet(relevant...))
}

func dcg(ranked []int64, relevant Set[int64]) float64 {
	var gain float64
	for i, item := range ranked {
		if relevant.Contains(item) {
			gain += 1 / math.Log2(float64(i+2))
		}
	}
	return gain
}

// NDCGAtK normalises DCGAtK by the gain of an ideal ranking that places every
// relevant item first.
func NDCGAtK(recommended, relevant []int64, k int) float64 {
	relevantSet := NewSet(relevant...)
	if len(relevantSet) == 0 || k <= 0 {
		return 0
	}

	var ideal float64
	for i := range min(len(relevantSet), k) {
		ideal += 1 / math.Log2(float64(i+2))
	}

	return dcg(topK(recommended, k), relevantSet) / ideal
}
