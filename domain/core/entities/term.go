package entities

import (
	"glossary/domain/core/valueobjects"
)

// Term is a single glossary entry: a display term, its definition and the
// ordered outgoing links to other terms.
// A Term never changes after construction; accessors hand out copies.
type Term struct {
	id         valueobjects.TermID
	name       string
	definition string
	links      []valueobjects.TermID
}

// NewTerm creates a term. Links are copied and kept in the given order;
// they may be empty, point back at the term itself, or reference IDs that
// do not exist in the dataset.
func NewTerm(id valueobjects.TermID, name, definition string, links []valueobjects.TermID) *Term {
	copied := make([]valueobjects.TermID, len(links))
	copy(copied, links)

	return &Term{
		id:         id,
		name:       name,
		definition: definition,
		links:      copied,
	}
}

// ID returns the term identifier
func (t *Term) ID() valueobjects.TermID {
	return t.id
}

// Name returns the display term
func (t *Term) Name() string {
	return t.name
}

// Definition returns the term definition
func (t *Term) Definition() string {
	return t.definition
}

// Links returns a copy of the outgoing links in authored order
func (t *Term) Links() []valueobjects.TermID {
	out := make([]valueobjects.TermID, len(t.links))
	copy(out, t.links)
	return out
}

// LinkCount returns the number of outgoing links
func (t *Term) LinkCount() int {
	return len(t.links)
}

