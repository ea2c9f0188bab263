package handlers

import (
	"glossary/domain/core/aggregates"
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
)

// TermResponse is the wire shape of one glossary record
type TermResponse struct {
	ID         int32   `json:"id"`
	Term       string  `json:"term"`
	Definition string  `json:"definition"`
	Links      []int32 `json:"links"`
}

// NodeResponse is one graph node
type NodeResponse struct {
	ID         int32  `json:"id"`
	Label      string `json:"label"`
	Definition string `json:"definition"`
}

// EdgeResponse is one directed graph edge
type EdgeResponse struct {
	Source int32 `json:"source"`
	Target int32 `json:"target"`
}

// GraphResponse is the node/edge projection served on /api/graph
type GraphResponse struct {
	Nodes []NodeResponse `json:"nodes"`
	Edges []EdgeResponse `json:"edges"`
}

// ToTermResponse converts a domain term. Links encode as [] when empty, never null.
func ToTermResponse(term *entities.Term) TermResponse {
	return TermResponse{
		ID:         term.ID().Int32(),
		Term:       term.Name(),
		Definition: term.Definition(),
		Links:      valueobjects.TermIDsToInt32(term.Links()),
	}
}

// ToTermResponses converts terms keeping their order
func ToTermResponses(terms []*entities.Term) []TermResponse {
	out := make([]TermResponse, 0, len(terms))
	for _, term := range terms {
		out = append(out, ToTermResponse(term))
	}
	return out
}

// ToGraphResponse converts the graph projection
func ToGraphResponse(graph *aggregates.Graph) GraphResponse {
	resp := GraphResponse{
		Nodes: make([]NodeResponse, 0, len(graph.Nodes)),
		Edges: make([]EdgeResponse, 0, len(graph.Edges)),
	}
	for _, n := range graph.Nodes {
		resp.Nodes = append(resp.Nodes, NodeResponse{
			ID:         n.ID.Int32(),
			Label:      n.Label,
			Definition: n.Definition,
		})
	}
	for _, e := range graph.Edges {
		resp.Edges = append(resp.Edges, EdgeResponse{
			Source: e.Source.Int32(),
			Target: e.Target.Int32(),
		})
	}
	return resp
}
