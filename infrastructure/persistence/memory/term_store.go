// Package memory holds the glossary dataset in process memory.
package memory

import (
	"context"

	"glossary/application/ports"
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
)

// TermStore is the read-only, in-memory dataset holder.
// It is populated once and never written to again, so it needs no locking.
type TermStore struct {
	terms  []*entities.Term
	index  map[valueobjects.TermID]int
	source string
}

var _ ports.TermReader = (*TermStore)(nil)

// NewTermStore creates a store over terms, keeping their order.
// When IDs repeat, lookups resolve to the first occurrence.
func NewTermStore(terms []*entities.Term, source string) *TermStore {
	store := &TermStore{
		terms:  make([]*entities.Term, len(terms)),
		index:  make(map[valueobjects.TermID]int, len(terms)),
		source: source,
	}
	copy(store.terms, terms)

	for i, term := range store.terms {
		if _, exists := store.index[term.ID()]; !exists {
			store.index[term.ID()] = i
		}
	}

	return store
}

// All returns every term in dataset order. The returned slice is a copy;
// the terms themselves are immutable.
func (s *TermStore) All(_ context.Context) []*entities.Term {
	out := make([]*entities.Term, len(s.terms))
	copy(out, s.terms)
	return out
}

// FindByID returns the first term with the given ID
func (s *TermStore) FindByID(_ context.Context, id valueobjects.TermID) (*entities.Term, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.terms[i], true
}

// Len returns the number of terms
func (s *TermStore) Len() int {
	return len(s.terms)
}

// Source describes where the dataset was loaded from
func (s *TermStore) Source() string {
	return s.source
}

// DuplicateIDs returns every ID that appears more than once, in first-seen order
func (s *TermStore) DuplicateIDs() []valueobjects.TermID {
	seen := make(map[valueobjects.TermID]int, len(s.terms))
	var dups []valueobjects.TermID
	for _, term := range s.terms {
		seen[term.ID()]++
		if seen[term.ID()] == 2 {
			dups = append(dups, term.ID())
		}
	}
	return dups
}
