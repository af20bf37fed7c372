package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/beautyfind/beautyfind/config"
	"github.com/beautyfind/beautyfind/internal/catalog"
	"github.com/beautyfind/beautyfind/internal/kvstore"
	"github.com/beautyfind/beautyfind/internal/moderation"
	"github.com/beautyfind/beautyfind/internal/session"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides durable key-value storage access
type StoreProvider interface {
	Store() kvstore.Store
}

// CatalogProvider provides the product catalog query engine
type CatalogProvider interface {
	Catalog() *catalog.Engine
	Submitter() *catalog.Submitter
}

// SessionProvider provides the session manager
type SessionProvider interface {
	Sessions() *session.Manager
}

// ModerationProvider provides the pending-product moderation queue
type ModerationProvider interface {
	Moderation() *moderation.Service
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Handlers should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	CatalogProvider
	SessionProvider
	ModerationProvider
	SchedulerProvider

	Bus() EventBus.Bus
	Release()
}
