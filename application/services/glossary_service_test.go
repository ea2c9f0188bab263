package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"glossary/application/ports"
	"glossary/domain/core/aggregates"
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
	"glossary/infrastructure/persistence/memory"
	pkgerrors "glossary/pkg/errors"
	"glossary/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func newService(terms ...*entities.Term) *GlossaryQueryService {
	return NewGlossaryQueryService(memory.NewTermStore(terms, "test"), nil, zap.NewNop())
}

func sampleTerms() []*entities.Term {
	return []*entities.Term{
		entities.NewTerm(1, "API", "x", []valueobjects.TermID{2}),
		entities.NewTerm(2, "REST", "y", nil),
	}
}

func TestGlossaryService_GetTerm(t *testing.T) {
	svc := newService(sampleTerms()...)
	ctx := context.Background()

	for _, want := range sampleTerms() {
		got, err := svc.GetTerm(ctx, want.ID())

		require.NoError(t, err)
		assert.Equal(t, want.ID(), got.ID())
		assert.Equal(t, want.Name(), got.Name())
		assert.Equal(t, want.Definition(), got.Definition())
		assert.Equal(t, want.Links(), got.Links())
	}
}

func TestGlossaryService_GetTermNotFound(t *testing.T) {
	svc := newService(sampleTerms()...)

	tests := []struct {
		name string
		id   valueobjects.TermID
		want string
	}{
		{name: "absent id", id: 99, want: "Term with id 99 not found"},
		{name: "zero id", id: 0, want: "Term with id 0 not found"},
		{name: "negative id", id: -7, want: "Term with id -7 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := svc.GetTerm(context.Background(), tt.id)

			require.Error(t, err)
			assert.Nil(t, term, "a missing term is never returned as a zero record")
			assert.True(t, pkgerrors.IsNotFound(err))

			appErr := pkgerrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.want, appErr.Message)
			assert.Equal(t, "TERM_NOT_FOUND", appErr.Code)
		})
	}
}

func TestGlossaryService_GetTermFirstDuplicateWins(t *testing.T) {
	svc := newService(
		entities.NewTerm(7, "First", "a", nil),
		entities.NewTerm(7, "Second", "b", nil),
	)

	term, err := svc.GetTerm(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "First", term.Name())
}

func TestGlossaryService_ListTerms(t *testing.T) {
	svc := newService(
		entities.NewTerm(3, "C", "c", nil),
		entities.NewTerm(1, "A", "a", nil),
		entities.NewTerm(2, "B", "b", nil),
	)
	ctx := context.Background()

	first, err := svc.ListTerms(ctx)
	require.NoError(t, err)
	second, err := svc.ListTerms(ctx)
	require.NoError(t, err)

	ids := func(terms []*entities.Term) []valueobjects.TermID {
		out := make([]valueobjects.TermID, 0, len(terms))
		for _, term := range terms {
			out = append(out, term.ID())
		}
		return out
	}
	assert.Equal(t, []valueobjects.TermID{3, 1, 2}, ids(first), "dataset order, not id order")
	assert.Equal(t, ids(first), ids(second), "repeated calls return the same sequence")
}

func TestGlossaryService_ListTermsEmpty(t *testing.T) {
	terms, err := newService().ListTerms(context.Background())

	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestGlossaryService_GetGraph(t *testing.T) {
	svc := newService(sampleTerms()...)

	graph, err := svc.GetGraph(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []aggregates.Node{
		{ID: 1, Label: "API", Definition: "x"},
		{ID: 2, Label: "REST", Definition: "y"},
	}, graph.Nodes)
	assert.Equal(t, []aggregates.Edge{{Source: 1, Target: 2}}, graph.Edges)
}

func TestGlossaryService_GetGraphMatchesProjection(t *testing.T) {
	store, err := memory.NewLoader(zap.NewNop()).LoadEmbedded()
	require.NoError(t, err)
	svc := NewGlossaryQueryService(store, nil, zap.NewNop())
	ctx := context.Background()

	graph, err := svc.GetGraph(ctx)
	require.NoError(t, err)

	terms, err := svc.ListTerms(ctx)
	require.NoError(t, err)
	assert.Equal(t, aggregates.ProjectGraph(terms), graph)

	linkCount := 0
	for i, term := range terms {
		assert.Equal(t, term.ID(), graph.Nodes[i].ID)
		assert.Equal(t, term.Name(), graph.Nodes[i].Label)
		linkCount += term.LinkCount()
	}
	assert.Len(t, graph.Edges, linkCount)
}

func TestGlossaryService_GetGraphReturnsCopies(t *testing.T) {
	svc := newService(sampleTerms()...)
	ctx := context.Background()

	first, err := svc.GetGraph(ctx)
	require.NoError(t, err)
	first.Nodes[0].Label = "mutated"
	first.Edges[0].Target = 42

	second, err := svc.GetGraph(ctx)
	require.NoError(t, err)
	assert.Equal(t, "API", second.Nodes[0].Label)
	assert.Equal(t, valueobjects.TermID(2), second.Edges[0].Target)
}

func TestGlossaryService_ConcurrentReads(t *testing.T) {
	svc := newService(sampleTerms()...)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			graph, err := svc.GetGraph(ctx)
			assert.NoError(t, err)
			assert.Len(t, graph.Edges, 1)

			_, err = svc.GetTerm(ctx, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

// countingReader records how often the dataset is enumerated
type countingReader struct {
	ports.TermReader
	allCalls atomic.Int32
}

func (r *countingReader) All(ctx context.Context) []*entities.Term {
	r.allCalls.Add(1)
	return r.TermReader.All(ctx)
}

func TestGlossaryService_ProjectsGraphAtConstruction(t *testing.T) {
	reader := &countingReader{TermReader: memory.NewTermStore(sampleTerms(), "test")}

	svc := NewGlossaryQueryService(reader, nil, zap.NewNop())
	require.Equal(t, int32(1), reader.allCalls.Load())

	for i := 0; i < 3; i++ {
		graph, err := svc.GetGraph(context.Background())
		require.NoError(t, err)
		assert.Len(t, graph.Nodes, 2)
	}
	assert.Equal(t, int32(1), reader.allCalls.Load(), "graph must not be re-projected per call")
}

func TestGlossaryService_RecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	svc := NewGlossaryQueryService(
		memory.NewTermStore(sampleTerms(), "test"),
		observability.NewTracerFromProvider(tp, "test"),
		zap.NewNop(),
	)
	ctx := context.Background()

	_, err := svc.ListTerms(ctx)
	require.NoError(t, err)
	_, err = svc.GetGraph(ctx)
	require.NoError(t, err)
	_, err = svc.GetTerm(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GetTerm(ctx, 99)
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 4)

	names := make([]string, 0, len(spans))
	for _, span := range spans {
		names = append(names, span.Name())
	}
	assert.Equal(t, []string{
		"GlossaryService.ListTerms",
		"GlossaryService.GetGraph",
		"GlossaryService.GetTerm",
		"GlossaryService.GetTerm",
	}, names)

	assert.Contains(t, spans[2].Attributes(), attribute.String("glossary.term_id", "1"))
	assert.Equal(t, codes.Unset, spans[2].Status().Code)
	assert.Equal(t, codes.Error, spans[3].Status().Code)
	assert.Contains(t, spans[3].Status().Description, "Term with id 99 not found")
}
