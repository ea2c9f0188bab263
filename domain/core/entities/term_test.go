package entities

import (
	"testing"

	"glossary/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
)

func TestNewTerm(t *testing.T) {
	links := []valueobjects.TermID{2, 3}

	term := NewTerm(1, "API", "Application Programming Interface", links)

	assert.Equal(t, valueobjects.TermID(1), term.ID())
	assert.Equal(t, "API", term.Name())
	assert.Equal(t, "Application Programming Interface", term.Definition())
	assert.Equal(t, []valueobjects.TermID{2, 3}, term.Links())
	assert.Equal(t, 2, term.LinkCount())
}

func TestTerm_IsImmutable(t *testing.T) {
	links := []valueobjects.TermID{2}
	term := NewTerm(1, "API", "def", links)

	// Mutating the constructor input must not leak into the term
	links[0] = 99
	assert.Equal(t, []valueobjects.TermID{2}, term.Links())

	// Mutating an accessor result must not leak either
	got := term.Links()
	got[0] = 42
	assert.Equal(t, []valueobjects.TermID{2}, term.Links())
}

func TestTerm_NilLinks(t *testing.T) {
	term := NewTerm(5, "Leaf", "no links", nil)

	assert.NotNil(t, term.Links())
	assert.Empty(t, term.Links())
	assert.Zero(t, term.LinkCount())
}

