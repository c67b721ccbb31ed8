package prover

import (
	"slices"

	"resolution/pkg/logic"
)

// ClauseStore is the growing working set of one proof attempt. Clauses are
// deduplicated by alpha-equivalence and never removed; ids are insertion
// indices. The store is owned by a single prover and is not safe for
// concurrent use.
type ClauseStore struct {
	clauses []logic.Clause
	ids     map[string]int
}

func NewClauseStore() *ClauseStore {
	return &ClauseStore{ids: make(map[string]int)}
}

func (s *ClauseStore) Contains(clause logic.Clause) bool {
	_, present := s.ids[clause.Key()]
	return present
}

// Insert adds the clause unless an alpha-equivalent one is already present.
// It returns the clause's id and whether the clause was new.
func (s *ClauseStore) Insert(clause logic.Clause) (int, bool) {
	key := clause.Key()
	if id, present := s.ids[key]; present {
		return id, false
	}
	id := len(s.clauses)
	s.clauses = append(s.clauses, clause)
	s.ids[key] = id
	return id, true
}

// All returns a stable snapshot in insertion order; insertions after the
// call are not visible through it.
func (s *ClauseStore) All() []logic.Clause {
	return slices.Clone(s.clauses)
}

func (s *ClauseStore) Size() int {
	return len(s.clauses)
}
