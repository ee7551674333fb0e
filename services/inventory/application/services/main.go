package services

import (
	appcontainer "github.com/ghuser/stockroom/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Inventory *Inventory
}

// New wires the inventory facade with infrastructure from the Application
// container. The memory store serves as both item store and adjustment ledger.
func New(a *appcontainer.Application) *Services {
	return &Services{
		Inventory: NewInventory(a.Store, a.Store, InventoryConfig{
			SimulatedLatency: a.Config.SimulatedLatency,
			ViewCacheSize:    a.Config.ViewCacheSize,
			ViewCacheTTL:     a.Config.ViewCacheTTL,
		}, a.Logger),
	}
}
