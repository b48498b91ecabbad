package cmd

import (
	"dronedelivery/internal/adapters/out/postgres"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/tracking"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hub        *tracking.Hub
	selector   services.DroneSelector
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:        tracking.NewHub(configs.TrackingBufferSize),
		selector:   services.NewDroneSelector(configs.MinDispatchBatteryPercent),
	}
}

func (c *CompositionRoot) TrackingHub() *tracking.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateRegisterDroneCommandHandler() commands.RegisterDroneCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDroneCommandHandler(f)
}

func (c *CompositionRoot) CreateSetDroneStatusCommandHandler() commands.SetDroneStatusCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDroneStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateSetBatteryLevelCommandHandler() commands.SetBatteryLevelCommandHandler {
	var f commands.DroneUoWFactory = FuncDroneUoWFactory(func() commands.DroneUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetBatteryLevelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDroneCommandHandler() commands.AssignDroneCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDroneCommandHandler(f, c.selector)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableDronesQueryHandler() queries.GetAvailableDronesQueryHandler {
	return queries.NewGetAvailableDronesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByUserQueryHandler() queries.GetOrdersByUserQueryHandler {
	return queries.NewGetOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDroneStatusCountsQueryHandler() queries.GetDroneStatusCountsQueryHandler {
	return queries.NewGetDroneStatusCountsQueryHandler(c.gormDB)
}

type FuncDroneUoWFactory func() commands.DroneUoW

func (f FuncDroneUoWFactory) Create() commands.DroneUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
