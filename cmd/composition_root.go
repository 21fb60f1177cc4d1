package cmd

import (
	"ordering/internal/adapters/out/inmemory"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	"github.com/rs/zerolog"
)

type CompositionRoot struct {
	config     Config
	logger     zerolog.Logger
	uowFactory *inmemory.UnitOfWorkFactory
}

func NewCompositionRoot(config Config, logger zerolog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		logger:     logger.Level(config.LogLevel),
		uowFactory: inmemory.NewUnitOfWorkFactory(inmemory.NewStore()),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.config.PriceTolerance)
}

func (c *CompositionRoot) CreateAddItemCommandHandler() commands.AddItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddItemCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) Logger() zerolog.Logger {
	return c.logger
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
