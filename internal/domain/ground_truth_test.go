package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroundTruth(t *testing.T) {
	gt := NewGroundTruth(apps(
		[2]int64{5, 1},
		[2]int64{3, 2},
		[2]int64{5, 3},
	))

	assert.Equal(t, []int64{5, 3}, gt.Students())
	assert.Equal(t, 2, gt.Len())
	assert.Equal(t, 3, gt.TotalApplications())

	items, ok := gt.Relevant(5)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 3}, items)

	_, ok = gt.Relevant(4)
	assert.False(t, ok)
}

func TestNewGroundTruth_Empty(t *testing.T) {
	gt := NewGroundTruth(nil)
	assert.Zero(t, gt.Len())
	assert.Empty(t, gt.Students())
}

func TestTrainTestSplit(t *testing.T) {
	cases := []struct {
		name     string
		items    []int64
		ratio    float64
		wantTest int
	}{
		{name: "at_least_one_held_out", items: []int64{1, 2}, ratio: 0.2, wantTest: 1},
		{name: "twenty_percent_of_ten", items: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ratio: 0.2, wantTest: 2},
		{name: "truncates", items: []int64{1, 2, 3, 4, 5, 6, 7}, ratio: 0.5, wantTest: 3},
		{name: "never_more_than_all", items: []int64{1, 2}, ratio: 1.5, wantTest: 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			train, test := TrainTestSplit(tc.items, tc.ratio, NewSeededRand(42))

			assert.Len(t, test, tc.wantTest)
			assert.Len(t, train, len(tc.items)-tc.wantTest)
			assert.ElementsMatch(t, tc.items, append(append([]int64{}, train...), test...))
		})
	}
}

func TestTrainTestSplit_DoesNotModifyInput(t *testing.T) {
	items := []int64{1, 2, 3, 4, 5}
	TrainTestSplit(items, 0.4, NewSeededRand(1))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, items)
}

func TestTrainTestSplit_Deterministic(t *testing.T) {
	items := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	train1, test1 := TrainTestSplit(items, 0.3, NewSeededRand(42))
	train2, test2 := TrainTestSplit(items, 0.3, NewSeededRand(42))

	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)
}

func TestSplitGroups(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	a1, b1 := SplitGroups(ids, 0.5, NewSeededRand(42))
	a2, b2 := SplitGroups(ids, 0.5, NewSeededRand(42))

	assert.Len(t, a1, 4)
	assert.Len(t, b1, 5)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.ElementsMatch(t, ids, append(append([]int64{}, a1...), b1...))
}

func TestSplitGroups_Empty(t *testing.T) {
	a, b := SplitGroups(nil, 0.5, NewSeededRand(42))
	assert.Empty(t, a)
	assert.Empty(t, b)
}
