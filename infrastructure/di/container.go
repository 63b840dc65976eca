package di

import (
	"github.com/kik369/sankey-kiro-app-sub000/application/commands/bus"
	commands_handlers "github.com/kik369/sankey-kiro-app-sub000/application/commands/handlers"
	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	querybus "github.com/kik369/sankey-kiro-app-sub000/application/queries/bus"
	app_services "github.com/kik369/sankey-kiro-app-sub000/application/services"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/validators"
	"github.com/kik369/sankey-kiro-app-sub000/infrastructure/config"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/observability"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	FlowRepo       ports.FlowRepository
	PreferenceRepo ports.PreferenceRepository
	AddFlow        *commands_handlers.AddFlowHandler
	CommandBus     *bus.CommandBus
	QueryBus       *querybus.QueryBus
	Recompute      *app_services.RecomputeService
	InputValidator *validators.InputValidator
	Metrics        *observability.Collector
}

// Shutdown releases background resources held by the container
func (c *Container) Shutdown() {
	if c.Recompute != nil {
		c.Recompute.Stop()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
