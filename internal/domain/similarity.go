package domain

import "strings"

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Difference returns the items of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	diff := make(Set[T], len(s))
	for item := range s {
		if !other.Contains(item) {
			diff[item] = struct{}{}
		}
	}
	return diff
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard[T comparable](a, b Set[T]) float64 {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for item := range small {
		if large.Contains(item) {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// ParseSkillSet splits a comma-separated skills string into a set of
// trimmed, lowercased, non-empty tokens.
func ParseSkillSet(skills string) Set[string] {
	set := Set[string]{}
	for _, token := range strings.Split(skills, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}
