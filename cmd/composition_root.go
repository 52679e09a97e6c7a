package cmd

import (
	"log/slog"

	internalhttp "fleetrent/internal/adapters/in/http"
	"fleetrent/internal/adapters/out/notify"
	"fleetrent/internal/adapters/out/postgres"
	"fleetrent/internal/core/application/usecases/commands"
	"fleetrent/internal/core/application/usecases/queries"
	"fleetrent/internal/core/ports"
	"fleetrent/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateHTTPServer() *internalhttp.Server {
	return internalhttp.NewServer(internalhttp.Handlers{
		CreatePedido:   c.CreateCreatePedidoCommandHandler(),
		AssignMachines: c.CreateAssignMachinesCommandHandler(),
		MarkDelivered:  c.CreateMarkDeliveredCommandHandler(),
		RegisterReturn: c.CreateRegisterReturnCommandHandler(),
		ConfirmReturn:  c.CreateConfirmReturnCommandHandler(),
		DeclareMissing: c.CreateDeclareMissingReturnedCommandHandler(),
		OverrideStatus: c.CreateOverrideStatusCommandHandler(),
		DeletePedido:   c.CreateDeletePedidoCommandHandler(),
		RegisterMach:   c.CreateRegisterMachineCommandHandler(),
		UpdateMach:     c.CreateUpdateMachineCommandHandler(),
		GetPedido:      c.CreateGetPedidoQueryHandler(),
		ListPedidos:    c.CreateListPedidosQueryHandler(),
		ListMachines:   c.CreateListMachinesQueryHandler(),
		StockSummary:   c.CreateStockSummaryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.logger)
}

func (c *CompositionRoot) CreateCreatePedidoCommandHandler() commands.CreatePedidoCommandHandler {
	var f commands.PedidoUoWFactory = FuncPedidoUoWFactory(func() commands.PedidoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePedidoCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAssignMachinesCommandHandler() commands.AssignMachinesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignMachinesCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.PedidoUoWFactory = FuncPedidoUoWFactory(func() commands.PedidoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRegisterReturnCommandHandler() commands.RegisterReturnCommandHandler {
	var f commands.PedidoUoWFactory = FuncPedidoUoWFactory(func() commands.PedidoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterReturnCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateConfirmReturnCommandHandler() commands.ConfirmReturnCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmReturnCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeclareMissingReturnedCommandHandler() commands.DeclareMissingReturnedCommandHandler {
	var f commands.PedidoUoWFactory = FuncPedidoUoWFactory(func() commands.PedidoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeclareMissingReturnedCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateOverrideStatusCommandHandler() commands.OverrideStatusCommandHandler {
	var f commands.PedidoUoWFactory = FuncPedidoUoWFactory(func() commands.PedidoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOverrideStatusCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateDeletePedidoCommandHandler() commands.DeletePedidoCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePedidoCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterMachineCommandHandler() commands.RegisterMachineCommandHandler {
	var f commands.MachineUoWFactory = FuncMachineUoWFactory(func() commands.MachineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMachineCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMachineCommandHandler() commands.UpdateMachineCommandHandler {
	var f commands.MachineUoWFactory = FuncMachineUoWFactory(func() commands.MachineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMachineCommandHandler(f)
}

func (c *CompositionRoot) CreateGetPedidoQueryHandler() queries.GetPedidoQueryHandler {
	return queries.NewGetPedidoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPedidosQueryHandler() queries.ListPedidosQueryHandler {
	return queries.NewListPedidosQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMachinesQueryHandler() queries.ListMachinesQueryHandler {
	return queries.NewListMachinesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStockSummaryQueryHandler() queries.StockSummaryQueryHandler {
	return queries.NewStockSummaryQueryHandler(c.gormDB)
}

type FuncPedidoUoWFactory func() commands.PedidoUoW

func (f FuncPedidoUoWFactory) Create() commands.PedidoUoW {
	return f()
}

type FuncMachineUoWFactory func() commands.MachineUoW

func (f FuncMachineUoWFactory) Create() commands.MachineUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
