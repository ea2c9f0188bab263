package handlers

import (
	"net/http"

	"glossary/application/services"
	pkgerrors "glossary/pkg/errors"

	"go.uber.org/zap"
)

// GraphHandler handles graph-related HTTP requests
type GraphHandler struct {
	glossary services.GlossaryService
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(glossary services.GlossaryService, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		glossary: glossary,
		errors:   errorHandler,
		logger:   logger,
	}
}

// GetGraph handles GET /api/graph
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	graph, err := h.glossary.GetGraph(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.Wrap(err, "failed to build graph"))
		return
	}

	respondJSON(w, h.logger, http.StatusOK, ToGraphResponse(graph))
}
