// Package track provides the uniqueness trackers the generation loop
// relies on: sets of combinadic ranks with an all-or-nothing batch
// insert.
package track

import "sort"

// RankSet is a set of combinadic ranks.
type RankSet struct {
	ranks map[int64]struct{}
}

// NewRankSet returns an empty set.
func NewRankSet() *RankSet {
	return &RankSet{ranks: make(map[int64]struct{})}
}

// Add inserts rank and reports whether it was newly added. The set is
// unchanged when the rank was already present.
func (s *RankSet) Add(rank int64) bool {
	if _, ok := s.ranks[rank]; ok {
		return false
	}
	s.ranks[rank] = struct{}{}
	return true
}

// AddAll inserts every rank, or none: if any rank is already present
// the set is left untouched and AddAll returns false. Partial inserts
// would poison later membership checks against the same batch.
func (s *RankSet) AddAll(ranks []int64) bool {
	for _, r := range ranks {
		if _, ok := s.ranks[r]; ok {
			return false
		}
	}
	for _, r := range ranks {
		s.ranks[r] = struct{}{}
	}
	return true
}

// Contains reports membership.
func (s *RankSet) Contains(rank int64) bool {
	_, ok := s.ranks[rank]
	return ok
}

// Len returns the number of ranks in the set.
func (s *RankSet) Len() int {
	return len(s.ranks)
}

// Members returns the ranks in ascending order.
func (s *RankSet) Members() []int64 {
	out := make([]int64, 0, len(s.ranks))
	for r := range s.ranks {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
