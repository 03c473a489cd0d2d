package domain

import (
	"cmp"
	"slices"
)

// UserItemMatrix maps each student to the internships they applied to.
// Students are kept in order of first appearance and each student's
// internships in retrieval order, so iteration is deterministic.
type UserItemMatrix struct {
	students []int64
	items    map[int64][]int64
	sets     map[int64]Set[int64]
}

// BuildUserItemMatrix builds the matrix from applications in retrieval order.
// Repeated applications to the same internship are counted once.
func BuildUserItemMatrix(applications []Application) *UserItemMatrix {
	m := &UserItemMatrix{
		items: make(map[int64][]int64),
		sets:  make(map[int64]Set[int64]),
	}

	for _, app := range applications {
		set, ok := m.sets[app.StudentID]
		if !ok {
			set = Set[int64]{}
			m.sets[app.StudentID] = set
			m.students = append(m.students, app.StudentID)
		}
		if set.Contains(app.InternshipID) {
			continue
		}
		set[app.InternshipID] = struct{}{}
		m.items[app.StudentID] = append(m.items[app.StudentID], app.InternshipID)
	}

	return m
}

// Students returns student ids in order of first appearance.
func (m *UserItemMatrix) Students() []int64 {
	return m.students
}

// Items returns the internships the student applied to, in retrieval order.
func (m *UserItemMatrix) Items(studentID int64) []int64 {
	return m.items[studentID]
}

// ItemSet returns the student's internships as a set. Unknown students get an empty set.
func (m *UserItemMatrix) ItemSet(studentID int64) Set[int64] {
	if set, ok := m.sets[studentID]; ok {
		return set
	}
	return Set[int64]{}
}

// Peer is another student ranked by similarity of application history.
type Peer struct {
	StudentID  int64
	Similarity float64
}

// SimilarStudents ranks every other student by Jaccard similarity between
// their applications and current. Only peers with similarity above zero are
// returned, most similar first; ties keep first-appearance order.
func (m *UserItemMatrix) SimilarStudents(studentID int64, current Set[int64]) []Peer {
	var peers []Peer
	for _, other := range m.students {
		if other == studentID {
			continue
		}
		similarity := Jaccard(current, m.sets[other])
		if similarity > 0 {
			peers = append(peers, Peer{StudentID: other, Similarity: similarity})
		}
	}

	slices.SortStableFunc(peers, func(a, b Peer) int {
		return cmp.Compare(b.Similarity, a.Similarity)
	})

	return peers
}
