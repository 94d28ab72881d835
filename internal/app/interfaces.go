package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/parking"
	"github.com/talkincode/catalogd/internal/repository"
	"github.com/talkincode/catalogd/internal/service"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BusProvider provides the application event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// CatalogProvider provides the catalog service layer
type CatalogProvider interface {
	ProductService() *service.ProductService
	ParkingService() *parking.Service
	Birds() *repository.BirdRepository
}

// AppContext combines all provider interfaces for full application context.
// Components should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	BusProvider
	SchedulerProvider
	CatalogProvider
}
