//go:build wireinject
// +build wireinject

package di

import (
	"glossary/application/ports"
	"glossary/infrastructure/config"
	"glossary/infrastructure/persistence/memory"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideTermStore,
	wire.Bind(new(ports.TermReader), new(*memory.TermStore)),
	ProvideGlossaryService,
	ProvideMetrics,
	ProvideTracer,
	ProvideErrorHandler,
	ProvideRouter,
	ProvideConfigWatcher,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
