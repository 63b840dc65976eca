//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/kik369/sankey-kiro-app-sub000/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideMetrics,
	ProvideEventPublisher,
	ProvideFlowRepository,
	ProvidePreferenceRepository,
	ProvideInputValidator,
	ProvideCollectionValidator,
	ProvideSankeyTransformer,
	ProvideAddFlowHandler,
	ProvideRecomputeService,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
