package di

import (
	"context"
	"fmt"

	"github.com/kik369/sankey-kiro-app-sub000/application/commands"
	"github.com/kik369/sankey-kiro-app-sub000/application/commands/bus"
	commands_handlers "github.com/kik369/sankey-kiro-app-sub000/application/commands/handlers"
	"github.com/kik369/sankey-kiro-app-sub000/application/ports"
	"github.com/kik369/sankey-kiro-app-sub000/application/queries"
	querybus "github.com/kik369/sankey-kiro-app-sub000/application/queries/bus"
	queries_handlers "github.com/kik369/sankey-kiro-app-sub000/application/queries/handlers"
	app_services "github.com/kik369/sankey-kiro-app-sub000/application/services"
	domainconfig "github.com/kik369/sankey-kiro-app-sub000/domain/config"
	"github.com/kik369/sankey-kiro-app-sub000/domain/core/validators"
	domainservices "github.com/kik369/sankey-kiro-app-sub000/domain/services"
	"github.com/kik369/sankey-kiro-app-sub000/infrastructure/config"
	"github.com/kik369/sankey-kiro-app-sub000/infrastructure/messaging"
	"github.com/kik369/sankey-kiro-app-sub000/infrastructure/persistence/memory"
	"github.com/kik369/sankey-kiro-app-sub000/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideDomainConfig derives the domain rule set from the app config
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	dc := cfg.DomainConfig()
	return &dc
}

// ProvideMetrics creates the metrics collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("sankey")
}

// ProvideEventPublisher creates the in-process event publisher
func ProvideEventPublisher(logger *zap.Logger) *messaging.InProcessPublisher {
	return messaging.NewInProcessPublisher(logger)
}

// ProvideFlowRepository creates the in-memory flow repository
func ProvideFlowRepository(
	dc *domainconfig.DomainConfig,
	publisher *messaging.InProcessPublisher,
	logger *zap.Logger,
) ports.FlowRepository {
	return memory.NewFlowRepository(dc, publisher, logger)
}

// ProvidePreferenceRepository creates the in-memory preference store
func ProvidePreferenceRepository() ports.PreferenceRepository {
	return memory.NewPreferenceStore()
}

// ProvideInputValidator creates the flow input validator
func ProvideInputValidator(dc *domainconfig.DomainConfig) *validators.InputValidator {
	return validators.NewInputValidatorWithConfig(dc)
}

// ProvideCollectionValidator creates the collection validator
func ProvideCollectionValidator(dc *domainconfig.DomainConfig) *validators.CollectionValidator {
	return validators.NewCollectionValidatorWithConfig(dc)
}

// ProvideSankeyTransformer creates the chart data transformer
func ProvideSankeyTransformer(dc *domainconfig.DomainConfig) *domainservices.SankeyTransformer {
	return domainservices.NewSankeyTransformerWithConfig(dc)
}

// ProvideAddFlowHandler creates the add flow orchestrator. It is invoked
// directly rather than through the command bus because callers need the
// created flow and the validation result, not just an error.
func ProvideAddFlowHandler(
	flowRepo ports.FlowRepository,
	validator *validators.InputValidator,
	metrics *observability.Collector,
	logger *zap.Logger,
) *commands_handlers.AddFlowHandler {
	return commands_handlers.NewAddFlowHandler(flowRepo, validator, metrics, logger)
}

// ProvideRecomputeService creates the debounced snapshot service and
// subscribes it to domain events
func ProvideRecomputeService(
	cfg *config.Config,
	flowRepo ports.FlowRepository,
	transformer *domainservices.SankeyTransformer,
	publisher *messaging.InProcessPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *app_services.RecomputeService {
	svc := app_services.NewRecomputeService(flowRepo, transformer, metrics, logger, cfg.RecomputeDelay)
	publisher.Subscribe(svc.OnEvent)
	return svc
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	flowRepo ports.FlowRepository,
	prefRepo ports.PreferenceRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	// Register UpdateFlowValueCommand handler
	updateHandler := commands_handlers.NewUpdateFlowValueHandler(flowRepo, logger)
	commandBus.Register(commands.UpdateFlowValueCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			updateCmd, ok := cmd.(commands.UpdateFlowValueCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return updateHandler.Handle(ctx, updateCmd)
		},
	})

	// Register DeleteFlowCommand handler
	deleteHandler := commands_handlers.NewDeleteFlowHandler(flowRepo, metrics, logger)
	commandBus.Register(commands.DeleteFlowCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteFlowCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	})

	// Register ClearFlowsCommand handler
	clearHandler := commands_handlers.NewClearFlowsHandler(flowRepo, metrics, logger)
	commandBus.Register(commands.ClearFlowsCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			clearCmd, ok := cmd.(commands.ClearFlowsCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return clearHandler.Handle(ctx, clearCmd)
		},
	})

	// Register SetThemeCommand handler
	themeHandler := commands_handlers.NewSetThemeHandler(prefRepo, logger)
	commandBus.Register(commands.SetThemeCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			themeCmd, ok := cmd.(commands.SetThemeCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return themeHandler.Handle(ctx, themeCmd)
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	flowRepo ports.FlowRepository,
	prefRepo ports.PreferenceRepository,
	transformer *domainservices.SankeyTransformer,
	collectionValidator *validators.CollectionValidator,
	metrics *observability.Collector,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	// Register ListFlowsQuery handler
	listHandler := queries_handlers.NewListFlowsHandler(flowRepo, logger)
	queryBus.Register(queries.ListFlowsQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListFlowsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listHandler.Handle(ctx, listQuery)
		},
	})

	// Register GetSankeyDataQuery handler
	sankeyHandler := queries_handlers.NewGetSankeyDataHandler(flowRepo, transformer, metrics, logger)
	queryBus.Register(queries.GetSankeyDataQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			sankeyQuery, ok := query.(queries.GetSankeyDataQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return sankeyHandler.Handle(ctx, sankeyQuery)
		},
	})

	// Register GetSummaryQuery handler
	summaryHandler := queries_handlers.NewGetSummaryHandler(flowRepo, transformer)
	queryBus.Register(queries.GetSummaryQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			summaryQuery, ok := query.(queries.GetSummaryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return summaryHandler.Handle(ctx, summaryQuery)
		},
	})

	// Register FindDuplicatesQuery handler
	duplicatesHandler := queries_handlers.NewFindDuplicatesHandler(flowRepo)
	queryBus.Register(queries.FindDuplicatesQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			duplicatesQuery, ok := query.(queries.FindDuplicatesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return duplicatesHandler.Handle(ctx, duplicatesQuery)
		},
	})

	// Register ValidateCollectionQuery handler
	validateHandler := queries_handlers.NewValidateCollectionHandler(flowRepo, collectionValidator)
	queryBus.Register(queries.ValidateCollectionQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			validateQuery, ok := query.(queries.ValidateCollectionQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return validateHandler.Handle(ctx, validateQuery)
		},
	})

	// Register GetThemeQuery handler
	themeHandler := queries_handlers.NewGetThemeHandler(prefRepo)
	queryBus.Register(queries.GetThemeQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			themeQuery, ok := query.(queries.GetThemeQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return themeHandler.Handle(ctx, themeQuery)
		},
	})

	return queryBus
}
