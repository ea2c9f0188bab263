package glossary

import (
	"context"
	"errors"
	"testing"
	"time"

	glossaryv1 "glossary/api/gen/go/glossary/v1"
	"glossary/application/services"
	"glossary/domain/core/aggregates"
	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
	"glossary/infrastructure/persistence/memory"
	"glossary/pkg/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func embeddedService(t *testing.T) services.GlossaryService {
	t.Helper()
	store, err := memory.NewLoader(zap.NewNop()).LoadEmbedded()
	require.NoError(t, err)
	return services.NewGlossaryQueryService(store, nil, zap.NewNop())
}

// startServer runs a loopback server for the duration of the test
func startServer(t *testing.T, glossary services.GlossaryService, opts ServerOptions) *grpc.ClientConn {
	t.Helper()

	srv, err := NewServer("127.0.0.1:0", glossary, opts)
	require.NoError(t, err)

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, conn.Close())
		runCancel()
		select {
		case serveErr := <-serveDone:
			assert.NoError(t, serveErr)
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	return conn
}

func TestServer_GetAllTerms(t *testing.T) {
	client := glossaryv1.NewGlossaryServiceClient(startServer(t, embeddedService(t), ServerOptions{}))

	resp, err := client.GetAllTerms(context.Background(), &glossaryv1.Empty{})

	require.NoError(t, err)
	require.Len(t, resp.GetTerms(), 12)
	first := resp.GetTerms()[0]
	assert.Equal(t, int32(1), first.GetId())
	assert.Equal(t, "API", first.GetTerm())
	assert.Equal(t, []int32{2, 3, 4}, first.GetLinks())
}

func TestServer_GetTerm(t *testing.T) {
	client := glossaryv1.NewGlossaryServiceClient(startServer(t, embeddedService(t), ServerOptions{}))

	term, err := client.GetTerm(context.Background(), &glossaryv1.TermRequest{Id: 3})

	require.NoError(t, err)
	assert.Equal(t, int32(3), term.GetId())
	assert.Equal(t, "gRPC", term.GetTerm())
	assert.Equal(t, []int32{7, 5}, term.GetLinks())
}

func TestServer_GetTermNotFound(t *testing.T) {
	client := glossaryv1.NewGlossaryServiceClient(startServer(t, embeddedService(t), ServerOptions{}))

	for _, id := range []int32{99, 0, -1} {
		term, err := client.GetTerm(context.Background(), &glossaryv1.TermRequest{Id: id})

		require.Error(t, err)
		assert.Nil(t, term)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
		assert.Contains(t, st.Message(), "Term with id")
	}

	_, err := client.GetTerm(context.Background(), &glossaryv1.TermRequest{Id: 99})
	assert.Equal(t, "Term with id 99 not found", status.Convert(err).Message())
}

func TestServer_GetGraph(t *testing.T) {
	client := glossaryv1.NewGlossaryServiceClient(startServer(t, embeddedService(t), ServerOptions{}))

	graph, err := client.GetGraph(context.Background(), &glossaryv1.Empty{})

	require.NoError(t, err)
	assert.Len(t, graph.GetNodes(), 12)
	assert.Len(t, graph.GetEdges(), 21)
	assert.Equal(t, "API", graph.GetNodes()[0].GetLabel())
	assert.Equal(t, int32(1), graph.GetEdges()[0].GetSource())
	assert.Equal(t, int32(2), graph.GetEdges()[0].GetTarget())
}

func TestServer_Health(t *testing.T) {
	health := grpc_health_v1.NewHealthClient(startServer(t, embeddedService(t), ServerOptions{}))

	for _, service := range []string{"", ServiceName} {
		resp, err := health.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})

		require.NoError(t, err)
		assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestServer_RequestIDAndLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	conn := startServer(t, embeddedService(t), ServerOptions{Logger: zap.New(core)})
	client := glossaryv1.NewGlossaryServiceClient(conn)

	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestIDKey, "req-123")
	var header metadata.MD
	_, err := client.GetTerm(ctx, &glossaryv1.TermRequest{Id: 1}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-123"}, header.Get(RequestIDKey))

	header = nil
	_, err = client.GetTerm(context.Background(), &glossaryv1.TermRequest{Id: 404}, grpc.Header(&header))
	require.Error(t, err)
	require.Len(t, header.Get(RequestIDKey), 1)
	assert.NotEmpty(t, header.Get(RequestIDKey)[0], "a request id is minted when none is sent")

	calls := logs.FilterMessage("gRPC Request").All()
	require.Len(t, calls, 2)
	assert.Equal(t, zapcore.InfoLevel, calls[0].Level)
	assert.Equal(t, "req-123", calls[0].ContextMap()["requestID"])
	assert.Equal(t, zapcore.WarnLevel, calls[1].Level)
	assert.Equal(t, "NotFound", calls[1].ContextMap()["code"])
}

func TestServer_Metrics(t *testing.T) {
	collector := observability.NewCollector()
	client := glossaryv1.NewGlossaryServiceClient(startServer(t, embeddedService(t), ServerOptions{Metrics: collector}))

	_, err := client.GetAllTerms(context.Background(), &glossaryv1.Empty{})
	require.NoError(t, err)
	_, err = client.GetTerm(context.Background(), &glossaryv1.TermRequest{Id: 99})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.GRPCRequests.WithLabelValues(glossaryv1.GlossaryService_GetAllTerms_FullMethodName, "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.GRPCRequests.WithLabelValues(glossaryv1.GlossaryService_GetTerm_FullMethodName, "NotFound")))
}

func TestServer_ListenError(t *testing.T) {
	_, err := NewServer("not-an-address", embeddedService(t), ServerOptions{})

	assert.Error(t, err)
}

func TestServer_ServeNil(t *testing.T) {
	var srv *Server

	assert.Error(t, srv.Serve(context.Background()))
	assert.Empty(t, srv.Addr())
	srv.Close()
}

type failingGlossary struct{}

func (failingGlossary) ListTerms(context.Context) ([]*entities.Term, error) {
	return nil, errors.New("disk on fire")
}

func (failingGlossary) GetTerm(context.Context, valueobjects.TermID) (*entities.Term, error) {
	return nil, errors.New("disk on fire")
}

func (failingGlossary) GetGraph(context.Context) (*aggregates.Graph, error) {
	return nil, errors.New("disk on fire")
}

func TestService_UnexpectedErrorsAreInternal(t *testing.T) {
	svc := NewService(failingGlossary{})
	ctx := context.Background()

	_, err := svc.GetAllTerms(ctx, &glossaryv1.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.NotContains(t, status.Convert(err).Message(), "disk on fire")

	_, err = svc.GetTerm(ctx, &glossaryv1.TermRequest{Id: 1})
	assert.Equal(t, codes.Internal, status.Code(err))

	_, err = svc.GetGraph(ctx, &glossaryv1.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestService_EmptyDataset(t *testing.T) {
	svc := NewService(services.NewGlossaryQueryService(memory.NewTermStore(nil, "empty"), nil, zap.NewNop()))
	ctx := context.Background()

	terms, err := svc.GetAllTerms(ctx, &glossaryv1.Empty{})
	require.NoError(t, err)
	assert.Empty(t, terms.GetTerms())

	graph, err := svc.GetGraph(ctx, &glossaryv1.Empty{})
	require.NoError(t, err)
	assert.Empty(t, graph.GetNodes())
	assert.Empty(t, graph.GetEdges())

	_, err = svc.GetTerm(ctx, &glossaryv1.TermRequest{Id: 1})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
