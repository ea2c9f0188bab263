package services

import (
	"context"
	"fmt"

	"glossary/application/ports"
	"glossary/domain/core/aggregates"
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
	pkgerrors "glossary/pkg/errors"
	"glossary/pkg/observability"

	"go.uber.org/zap"
)

// GlossaryService answers the three read queries over the glossary dataset.
// The REST, gRPC and MCP adapters are thin translations on top of it.
type GlossaryService interface {
	// ListTerms returns every term in dataset order
	ListTerms(ctx context.Context) ([]*entities.Term, error)

	// GetTerm returns the term with the given ID or a NOT_FOUND AppError
	GetTerm(ctx context.Context, id valueobjects.TermID) (*entities.Term, error)

	// GetGraph returns the node/edge projection of the dataset
	GetGraph(ctx context.Context) (*aggregates.Graph, error)
}

// GlossaryQueryService is the in-process GlossaryService backed by a TermReader
type GlossaryQueryService struct {
	terms  ports.TermReader
	tracer *observability.Tracer
	logger *zap.Logger

	// graph is projected once at construction since the dataset never changes
	graph *aggregates.Graph
}

var _ GlossaryService = (*GlossaryQueryService)(nil)

// NewGlossaryQueryService creates a new glossary query service and projects
// the dataset graph
func NewGlossaryQueryService(terms ports.TermReader, tracer *observability.Tracer, logger *zap.Logger) *GlossaryQueryService {
	if tracer == nil {
		tracer = observability.NewTracer("glossary")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	graph := aggregates.ProjectGraph(terms.All(context.Background()))
	stats := graph.Stats()
	logger.Info("Glossary ready",
		zap.Int("terms", stats.NodeCount),
		zap.Int("edges", stats.EdgeCount),
		zap.Int("danglingEdges", stats.DanglingEdges),
	)

	return &GlossaryQueryService{
		terms:  terms,
		tracer: tracer,
		logger: logger,
		graph:  graph,
	}
}

// ListTerms returns every term in dataset order
func (s *GlossaryQueryService) ListTerms(ctx context.Context) ([]*entities.Term, error) {
	var terms []*entities.Term
	err := s.tracer.TraceFunction(ctx, "GlossaryService.ListTerms", func(ctx context.Context) error {
		terms = s.terms.All(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Listed terms", zap.Int("count", len(terms)))

	return terms, nil
}

// GetTerm returns the first term whose ID matches
func (s *GlossaryQueryService) GetTerm(ctx context.Context, id valueobjects.TermID) (*entities.Term, error) {
	var term *entities.Term
	err := s.tracer.TraceFunction(ctx, "GlossaryService.GetTerm", func(ctx context.Context) error {
		s.tracer.AddAnnotation(ctx, "glossary.term_id", id.String())

		found, ok := s.terms.FindByID(ctx, id)
		if !ok {
			return NewTermNotFoundError(id)
		}
		term = found
		return nil
	})
	if err != nil {
		s.logger.Debug("Term not found", zap.Int32("termID", id.Int32()))
		return nil, err
	}

	s.logger.Debug("Found term",
		zap.Int32("termID", id.Int32()),
		zap.String("term", term.Name()),
	)

	return term, nil
}

// GetGraph returns the graph projection of the dataset. Every call gets its
// own copy of the node and edge slices.
func (s *GlossaryQueryService) GetGraph(ctx context.Context) (*aggregates.Graph, error) {
	graph := &aggregates.Graph{}
	err := s.tracer.TraceFunction(ctx, "GlossaryService.GetGraph", func(context.Context) error {
		graph.Nodes = make([]aggregates.Node, len(s.graph.Nodes))
		graph.Edges = make([]aggregates.Edge, len(s.graph.Edges))
		copy(graph.Nodes, s.graph.Nodes)
		copy(graph.Edges, s.graph.Edges)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return graph, nil
}

// NewTermNotFoundError builds the NOT_FOUND error for a missing term.
// The message always names the requested ID.
func NewTermNotFoundError(id valueobjects.TermID) *pkgerrors.AppError {
	return pkgerrors.NewNotFoundError(fmt.Sprintf("Term with id %d", id.Int32())).
		WithCode("TERM_NOT_FOUND").
		WithDetails(map[string]interface{}{"id": id.Int32()})
}
