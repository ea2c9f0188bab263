// Package glossary implements the glossary.v1 gRPC API.
package glossary

import (
	"context"

	glossaryv1 "glossary/api/gen/go/glossary/v1"
	"glossary/application/services"
	"glossary/domain/core/aggregates"
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
	pkgerrors "glossary/pkg/errors"
)

// Service implements glossaryv1.GlossaryServiceServer on top of the
// protocol-agnostic glossary service
type Service struct {
	glossaryv1.UnimplementedGlossaryServiceServer
	glossary services.GlossaryService
}

// NewService creates the gRPC glossary service
func NewService(glossary services.GlossaryService) *Service {
	return &Service{glossary: glossary}
}

// GetAllTerms returns every term in dataset order
func (s *Service) GetAllTerms(ctx context.Context, _ *glossaryv1.Empty) (*glossaryv1.TermList, error) {
	terms, err := s.glossary.ListTerms(ctx)
	if err != nil {
		return nil, pkgerrors.ToGRPCStatus(err)
	}

	resp := &glossaryv1.TermList{Terms: make([]*glossaryv1.Term, 0, len(terms))}
	for _, term := range terms {
		resp.Terms = append(resp.Terms, termToProto(term))
	}
	return resp, nil
}

// GetTerm returns one term. A missing id is reported as codes.NotFound and
// never as an empty Term.
func (s *Service) GetTerm(ctx context.Context, in *glossaryv1.TermRequest) (*glossaryv1.Term, error) {
	term, err := s.glossary.GetTerm(ctx, valueobjects.TermID(in.GetId()))
	if err != nil {
		return nil, pkgerrors.ToGRPCStatus(err)
	}
	return termToProto(term), nil
}

// GetGraph returns the node/edge projection of the dataset
func (s *Service) GetGraph(ctx context.Context, _ *glossaryv1.Empty) (*glossaryv1.Graph, error) {
	graph, err := s.glossary.GetGraph(ctx)
	if err != nil {
		return nil, pkgerrors.ToGRPCStatus(err)
	}
	return graphToProto(graph), nil
}

func termToProto(term *entities.Term) *glossaryv1.Term {
	return &glossaryv1.Term{
		Id:         term.ID().Int32(),
		Term:       term.Name(),
		Definition: term.Definition(),
		Links:      valueobjects.TermIDsToInt32(term.Links()),
	}
}

func graphToProto(graph *aggregates.Graph) *glossaryv1.Graph {
	resp := &glossaryv1.Graph{
		Nodes: make([]*glossaryv1.Node, 0, len(graph.Nodes)),
		Edges: make([]*glossaryv1.Edge, 0, len(graph.Edges)),
	}
	for _, n := range graph.Nodes {
		resp.Nodes = append(resp.Nodes, &glossaryv1.Node{
			Id:         n.ID.Int32(),
			Label:      n.Label,
			Definition: n.Definition,
		})
	}
	for _, e := range graph.Edges {
		resp.Edges = append(resp.Edges, &glossaryv1.Edge{
			Source: e.Source.Int32(),
			Target: e.Target.Int32(),
		})
	}
	return resp
}
