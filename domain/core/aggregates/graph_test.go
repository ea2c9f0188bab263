package aggregates

import (
	"testing"

	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(v ...int32) []valueobjects.TermID {
	out := make([]valueobjects.TermID, len(v))
	for i, id := range v {
		out[i] = valueobjects.TermID(id)
	}
	return out
}

func TestProjectGraph(t *testing.T) {
	tests := []struct {
		name      string
		terms     []*entities.Term
		wantNodes []Node
		wantEdges []Edge
	}{
		{
			name:      "empty dataset yields empty graph",
			terms:     nil,
			wantNodes: []Node{},
			wantEdges: []Edge{},
		},
		{
			name: "one edge per link",
			terms: []*entities.Term{
				entities.NewTerm(1, "API", "Application Programming Interface", ids(2)),
				entities.NewTerm(2, "REST", "Representational State Transfer", nil),
			},
			wantNodes: []Node{
				{ID: 1, Label: "API", Definition: "Application Programming Interface"},
				{ID: 2, Label: "REST", Definition: "Representational State Transfer"},
			},
			wantEdges: []Edge{{Source: 1, Target: 2}},
		},
		{
			name: "record order then link order",
			terms: []*entities.Term{
				entities.NewTerm(3, "C", "c", ids(1, 2)),
				entities.NewTerm(1, "A", "a", ids(3)),
				entities.NewTerm(2, "B", "b", ids(3, 1)),
			},
			wantNodes: []Node{
				{ID: 3, Label: "C", Definition: "c"},
				{ID: 1, Label: "A", Definition: "a"},
				{ID: 2, Label: "B", Definition: "b"},
			},
			wantEdges: []Edge{
				{Source: 3, Target: 1},
				{Source: 3, Target: 2},
				{Source: 1, Target: 3},
				{Source: 2, Target: 3},
				{Source: 2, Target: 1},
			},
		},
		{
			name: "self, duplicate and dangling links are kept verbatim",
			terms: []*entities.Term{
				entities.NewTerm(1, "Loop", "self", ids(1, 1, 42)),
			},
			wantNodes: []Node{{ID: 1, Label: "Loop", Definition: "self"}},
			wantEdges: []Edge{
				{Source: 1, Target: 1},
				{Source: 1, Target: 1},
				{Source: 1, Target: 42},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graph := ProjectGraph(tt.terms)

			require.NotNil(t, graph)
			assert.Equal(t, tt.wantNodes, graph.Nodes)
			assert.Equal(t, tt.wantEdges, graph.Edges)
		})
	}
}

func TestProjectGraph_IsDeterministic(t *testing.T) {
	terms := []*entities.Term{
		entities.NewTerm(1, "API", "a", ids(2, 3)),
		entities.NewTerm(2, "REST", "b", ids(1)),
		entities.NewTerm(3, "gRPC", "c", nil),
	}

	first := ProjectGraph(terms)
	second := ProjectGraph(terms)

	assert.Equal(t, first, second)
}

func TestGraph_Stats(t *testing.T) {
	graph := ProjectGraph([]*entities.Term{
		entities.NewTerm(1, "A", "a", ids(2, 1)),
		entities.NewTerm(2, "B", "b", ids(99)),
	})

	stats := graph.Stats()

	assert.Equal(t, GraphStats{
		NodeCount:     2,
		EdgeCount:     3,
		DanglingEdges: 1,
		SelfLoops:     1,
	}, stats)
}

