// Package di wires the application's dependencies.
package di

import (
	"glossary/application/services"
	"glossary/infrastructure/config"
	"glossary/infrastructure/persistence/memory"
	"glossary/interfaces/http/rest"
	pkgerrors "glossary/pkg/errors"
	"glossary/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	LogLevel      zap.AtomicLevel
	Logger        *zap.Logger
	Terms         *memory.TermStore
	Glossary      services.GlossaryService
	Metrics       *observability.Collector
	Tracer        *observability.Tracer
	ErrorHandler  *pkgerrors.ErrorHandler
	Router        *rest.Router
	ConfigWatcher *config.ConfigWatcher
}
