package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func apps(pairs ...[2]int64) []Application {
	result := make([]Application, 0, len(pairs))
	for i, p := range pairs {
		result = append(result, Application{ID: int64(i + 1), StudentID: p[0], InternshipID: p[1]})
	}
	return result
}

func TestBuildUserItemMatrix(t *testing.T) {
	m := BuildUserItemMatrix(apps(
		[2]int64{2, 30},
		[2]int64{1, 10},
		[2]int64{2, 10},
		[2]int64{1, 20},
		[2]int64{2, 30},
	))

	assert.Equal(t, []int64{2, 1}, m.Students())
	assert.Equal(t, []int64{30, 10}, m.Items(2))
	assert.Equal(t, []int64{10, 20}, m.Items(1))
	assert.Equal(t, NewSet[int64](10, 30), m.ItemSet(2))
	assert.Empty(t, m.ItemSet(99))
	assert.Nil(t, m.Items(99))
}

func TestUserItemMatrix_SimilarStudents(t *testing.T) {
	m := BuildUserItemMatrix(apps(
		[2]int64{1, 10}, [2]int64{1, 20},
		[2]int64{2, 10}, [2]int64{2, 30},
		[2]int64{3, 10}, [2]int64{3, 20}, [2]int64{3, 40},
		[2]int64{4, 50},
		[2]int64{5, 20}, [2]int64{5, 60},
	))

	cases := []struct {
		name    string
		student int64
		current Set[int64]
		want    []Peer
	}{
		{
			name:    "ranked_descending_zero_excluded",
			student: 1,
			current: m.ItemSet(1),
			want: []Peer{
				{StudentID: 3, Similarity: 2.0 / 3.0},
				{StudentID: 2, Similarity: 1.0 / 3.0},
				{StudentID: 5, Similarity: 1.0 / 3.0},
			},
		},
		{
			name:    "cold_start_has_no_peers",
			student: 99,
			current: Set[int64]{},
			want:    nil,
		},
		{
			name:    "reduced_history",
			student: 1,
			current: NewSet[int64](20),
			want: []Peer{
				{StudentID: 5, Similarity: 0.5},
				{StudentID: 3, Similarity: 1.0 / 3.0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.SimilarStudents(tc.student, tc.current)
			if tc.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.Equal(t, tc.want[i].StudentID, got[i].StudentID, "peer at %d", i)
				assert.InDelta(t, tc.want[i].Similarity, got[i].Similarity, 0.0001)
			}
		})
	}
}
