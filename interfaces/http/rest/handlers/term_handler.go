package handlers

import (
	"net/http"

	"glossary/application/services"
	pkgerrors "glossary/pkg/errors"

	"go.uber.org/zap"
)

// TermHandler handles glossary term requests
type TermHandler struct {
	glossary services.GlossaryService
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewTermHandler creates a new term handler
func NewTermHandler(glossary services.GlossaryService, errorHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *TermHandler {
	return &TermHandler{
		glossary: glossary,
		errors:   errorHandler,
		logger:   logger,
	}
}

// ListTerms handles GET /api/terms
func (h *TermHandler) ListTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.glossary.ListTerms(r.Context())
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.Wrap(err, "failed to list terms"))
		return
	}

	respondJSON(w, h.logger, http.StatusOK, ToTermResponses(terms))
}
