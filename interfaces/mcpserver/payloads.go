package mcpserver

import (
	"glossary/domain/core/aggregates"
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
)

// TermEntry is one glossary record as returned by the tools
type TermEntry struct {
	ID         int32   `json:"id"`
	Term       string  `json:"term"`
	Definition string  `json:"definition"`
	Links      []int32 `json:"links"`
}

// ListTermsInput takes no arguments
type ListTermsInput struct{}

// ListTermsResult wraps the term list; tool results must be JSON objects
type ListTermsResult struct {
	Terms []TermEntry `json:"terms"`
}

// GetTermInput selects one term
type GetTermInput struct {
	ID int32 `json:"id" jsonschema:"numeric id of the glossary term"`
}

// GetGraphInput takes no arguments
type GetGraphInput struct{}

// NodeEntry is one graph node
type NodeEntry struct {
	ID         int32  `json:"id"`
	Label      string `json:"label"`
	Definition string `json:"definition"`
}

// EdgeEntry is one directed graph edge
type EdgeEntry struct {
	Source int32 `json:"source"`
	Target int32 `json:"target"`
}

// GraphStatsEntry summarises the graph
type GraphStatsEntry struct {
	NodeCount     int `json:"node_count"`
	EdgeCount     int `json:"edge_count"`
	DanglingEdges int `json:"dangling_edges"`
	SelfLoops     int `json:"self_loops"`
}

// GraphResult is the node/edge projection plus its stats
type GraphResult struct {
	Nodes []NodeEntry     `json:"nodes"`
	Edges []EdgeEntry     `json:"edges"`
	Stats GraphStatsEntry `json:"stats"`
}

func termEntry(term *entities.Term) TermEntry {
	return TermEntry{
		ID:         term.ID().Int32(),
		Term:       term.Name(),
		Definition: term.Definition(),
		Links:      valueobjects.TermIDsToInt32(term.Links()),
	}
}

func graphResult(graph *aggregates.Graph) GraphResult {
	stats := graph.Stats()
	result := GraphResult{
		Nodes: make([]NodeEntry, 0, len(graph.Nodes)),
		Edges: make([]EdgeEntry, 0, len(graph.Edges)),
		Stats: GraphStatsEntry{
			NodeCount:     stats.NodeCount,
			EdgeCount:     stats.EdgeCount,
			DanglingEdges: stats.DanglingEdges,
			SelfLoops:     stats.SelfLoops,
		},
	}
	for _, n := range graph.Nodes {
		result.Nodes = append(result.Nodes, NodeEntry{ID: n.ID.Int32(), Label: n.Label, Definition: n.Definition})
	}
	for _, e := range graph.Edges {
		result.Edges = append(result.Edges, EdgeEntry{Source: e.Source.Int32(), Target: e.Target.Int32()})
	}
	return result
}
