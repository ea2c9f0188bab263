// Package mcpserver exposes the glossary to Model Context Protocol clients.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"glossary/application/services"
	"glossary/domain/core/valueobjects"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName = "glossary"

	// GraphResourceURI serves the graph projection as a resource
	GraphResourceURI = "glossary://graph"
	// TermsResourceURI serves the full term list as a resource
	TermsResourceURI = "glossary://terms"
	// TermResourceTemplate addresses a single term by id
	TermResourceTemplate = "glossary://terms/{id}"

	termResourcePrefix = TermsResourceURI + "/"
)

// Server wraps an MCP server whose tools and resources delegate to the
// glossary service
type Server struct {
	mcpServer *mcp.Server
	glossary  services.GlossaryService
	logger    *zap.Logger
}

// NewServer creates the MCP server and registers every tool and resource
func NewServer(glossary services.GlossaryService, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		mcpServer: mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
		glossary:  glossary,
		logger:    logger,
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_terms",
		Description: "List every glossary term with its definition and links, in dataset order",
	}, s.listTerms)
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_term",
		Description: "Get one glossary term by its numeric id",
	}, s.getTerm)
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_graph",
		Description: "Get the glossary as a graph: one node per term and one edge per link",
	}, s.getGraph)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         GraphResourceURI,
		Name:        "glossary-graph",
		Description: "Node/edge projection of the glossary",
		MIMEType:    "application/json",
	}, s.readGraph)
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         TermsResourceURI,
		Name:        "glossary-terms",
		Description: "All glossary terms",
		MIMEType:    "application/json",
	}, s.readTerms)
	s.mcpServer.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: TermResourceTemplate,
		Name:        "glossary-term",
		Description: "One glossary term by id",
		MIMEType:    "application/json",
	}, s.readTerm)

	return s
}

// Connect starts a session on transport and returns once the client handshake
// can proceed
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	session, err := s.mcpServer.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect MCP session: %w", err)
	}
	s.logger.Info("MCP session started", zap.String("server", serverName), zap.String("sessionID", session.ID()))
	return session, nil
}

// Run serves a single session on transport until the client disconnects or
// ctx is cancelled
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	session, err := s.Connect(ctx, transport)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- session.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = session.Close()
		<-done
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func (s *Server) listTerms(ctx context.Context, _ *mcp.CallToolRequest, _ ListTermsInput) (*mcp.CallToolResult, ListTermsResult, error) {
	terms, err := s.glossary.ListTerms(ctx)
	if err != nil {
		return nil, ListTermsResult{}, fmt.Errorf("list terms: %w", err)
	}

	result := ListTermsResult{Terms: make([]TermEntry, 0, len(terms))}
	for _, term := range terms {
		result.Terms = append(result.Terms, termEntry(term))
	}

	return s.textResult(result), result, nil
}

// getTerm reports a missing id as a tool error so the model can recover
func (s *Server) getTerm(ctx context.Context, _ *mcp.CallToolRequest, input GetTermInput) (*mcp.CallToolResult, TermEntry, error) {
	term, err := s.glossary.GetTerm(ctx, valueobjects.TermID(input.ID))
	if err != nil {
		s.logger.Debug("MCP get_term failed", zap.Int32("termID", input.ID), zap.Error(err))
		return nil, TermEntry{}, err
	}

	entry := termEntry(term)
	return s.textResult(entry), entry, nil
}

func (s *Server) getGraph(ctx context.Context, _ *mcp.CallToolRequest, _ GetGraphInput) (*mcp.CallToolResult, GraphResult, error) {
	graph, err := s.glossary.GetGraph(ctx)
	if err != nil {
		return nil, GraphResult{}, fmt.Errorf("get graph: %w", err)
	}

	result := graphResult(graph)
	return s.textResult(result), result, nil
}

func (s *Server) readGraph(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	graph, err := s.glossary.GetGraph(ctx)
	if err != nil {
		return nil, fmt.Errorf("get graph: %w", err)
	}
	return jsonResource(resourceURI(req, GraphResourceURI), graphResult(graph))
}

func (s *Server) readTerms(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	terms, err := s.glossary.ListTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}

	entries := make([]TermEntry, 0, len(terms))
	for _, term := range terms {
		entries = append(entries, termEntry(term))
	}
	return jsonResource(resourceURI(req, TermsResourceURI), ListTermsResult{Terms: entries})
}

func (s *Server) readTerm(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := resourceURI(req, "")
	id, err := valueobjects.NewTermIDFromString(strings.TrimPrefix(uri, termResourcePrefix))
	if !strings.HasPrefix(uri, termResourcePrefix) || err != nil {
		return nil, mcp.ResourceNotFoundError(uri)
	}

	term, err := s.glossary.GetTerm(ctx, id)
	if err != nil {
		s.logger.Debug("MCP term resource not found", zap.String("uri", uri), zap.Error(err))
		return nil, mcp.ResourceNotFoundError(uri)
	}
	return jsonResource(uri, termEntry(term))
}

// textResult mirrors the structured output as indented JSON text for
// clients that only read content blocks
func (s *Server) textResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Error("Failed to encode tool result", zap.Error(err))
		return nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

func resourceURI(req *mcp.ReadResourceRequest, fallback string) string {
	if req != nil && req.Params != nil && req.Params.URI != "" {
		return req.Params.URI
	}
	return fallback
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
