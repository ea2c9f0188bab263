package aggregates

import (
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
)

// Node is the graph view of a single term
type Node struct {
	ID         valueobjects.TermID
	Label      string
	Definition string
}

// Edge is a directed link from one term to another. Target may name a term
// that is absent from the graph's nodes.
type Edge struct {
	Source valueobjects.TermID
	Target valueobjects.TermID
}

// Graph is the node/edge projection of a term list
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// GraphStats summarises a projected graph
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	DanglingEdges int
	SelfLoops     int
}

// ProjectGraph maps terms to one node per term, in input order, and one edge
// per (term, link) pair, in term order then link order. Links are copied
// verbatim: duplicates, self links and dangling targets are all kept.
func ProjectGraph(terms []*entities.Term) *Graph {
	edgeCount := 0
	for _, term := range terms {
		edgeCount += term.LinkCount()
	}

	graph := &Graph{
		Nodes: make([]Node, 0, len(terms)),
		Edges: make([]Edge, 0, edgeCount),
	}

	for _, term := range terms {
		graph.Nodes = append(graph.Nodes, Node{
			ID:         term.ID(),
			Label:      term.Name(),
			Definition: term.Definition(),
		})
		for _, target := range term.Links() {
			graph.Edges = append(graph.Edges, Edge{
				Source: term.ID(),
				Target: target,
			})
		}
	}

	return graph
}

// Stats counts nodes, edges, edges whose target has no node, and self loops
func (g *Graph) Stats() GraphStats {
	known := make(map[valueobjects.TermID]struct{}, len(g.Nodes))
	for _, node := range g.Nodes {
		known[node.ID] = struct{}{}
	}

	stats := GraphStats{
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}
	for _, edge := range g.Edges {
		if _, ok := known[edge.Target]; !ok {
			stats.DanglingEdges++
		}
		if edge.Source == edge.Target {
			stats.SelfLoops++
		}
	}
	return stats
}
