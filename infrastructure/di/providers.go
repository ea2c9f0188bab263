package di

import (
	"context"

	"glossary/application/ports"
	"glossary/application/services"
	"glossary/infrastructure/config"
	"glossary/infrastructure/persistence/memory"
	"glossary/interfaces/http/rest"
	pkgerrors "glossary/pkg/errors"
	"glossary/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogLevel creates the adjustable level shared by the logger and the config watcher
func ProvideLogLevel(cfg *config.Config) zap.AtomicLevel {
	return zap.NewAtomicLevelAt(cfg.LogLevel())
}

// ProvideLogger creates the application logger. The cleanup flushes buffered entries.
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, func(), error) {
	logger, err := observability.NewLogger(cfg.IsProduction(), level)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = logger.Sync()
	}
	return logger, cleanup, nil
}

// ProvideTermStore loads the configured dataset, or the embedded one
func ProvideTermStore(cfg *config.Config, logger *zap.Logger) (*memory.TermStore, error) {
	return memory.NewLoader(logger).LoadPath(cfg.Dataset.Path)
}

// ProvideGlossaryService creates the protocol-agnostic glossary service
func ProvideGlossaryService(terms ports.TermReader, tracer *observability.Tracer, logger *zap.Logger) services.GlossaryService {
	return services.NewGlossaryQueryService(terms, tracer, logger)
}

// ProvideMetrics creates the Prometheus collector, or nil when metrics are disabled.
// Dataset gauges are published once since the dataset never changes.
func ProvideMetrics(cfg *config.Config, glossary services.GlossaryService, terms *memory.TermStore) (*observability.Collector, error) {
	if !cfg.Features.EnableMetrics {
		return nil, nil
	}

	graph, err := glossary.GetGraph(context.Background())
	if err != nil {
		return nil, err
	}

	collector := observability.NewCollector()
	collector.SetDataset(terms.Len(), graph.Stats().DanglingEdges)
	return collector, nil
}

// ProvideTracer creates the tracer used by the REST middleware
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(cfg.Tracing.ServiceName)
}

// ProvideErrorHandler creates the HTTP error handler. Development responses carry error detail.
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// ProvideRouter creates the REST router
func ProvideRouter(
	glossary services.GlossaryService,
	errorHandler *pkgerrors.ErrorHandler,
	metrics *observability.Collector,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(glossary, errorHandler, metrics, tracer, logger)
}

// ProvideConfigWatcher starts the config watcher and applies log level changes live
func ProvideConfigWatcher(cfg *config.Config, level zap.AtomicLevel, logger *zap.Logger) (*config.ConfigWatcher, func(), error) {
	loader := config.NewLoader(config.ConfigDir(), cfg.Environment)

	watcher, err := config.NewConfigWatcher(loader, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	watcher.OnChange(func(newConfig *config.Config) {
		if err := observability.SetLevel(level, newConfig.Logging.Level); err != nil {
			logger.Warn("Ignoring invalid log level", zap.String("level", newConfig.Logging.Level), zap.Error(err))
			return
		}
		logger.Info("Log level changed", zap.String("level", newConfig.Logging.Level))
	})

	return watcher, watcher.Stop, nil
}
