package ports

import (
	"context"

	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
)

// TermReader is the read-only view of the glossary dataset.
// Implementations are built once before any listener accepts connections and
// are never mutated afterwards, so they are safe for concurrent use without
// locking.
type TermReader interface {
	// All returns every term in dataset order
	All(ctx context.Context) []*entities.Term

	// FindByID returns the first term with the given ID
	FindByID(ctx context.Context, id valueobjects.TermID) (*entities.Term, bool)

	// Len returns the number of terms in the dataset
	Len() int
}
