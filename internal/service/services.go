package service

import (
	"braindrop/internal/adapter"
	"braindrop/internal/logger"
	"braindrop/internal/store"
)

// Services bundles the application services for wiring into the client
// app.
type Services struct {
	Data    DataService
	Sync    SyncService
	SyncJob SyncJob
}

// NewServices wires the services over the local cache and the API
// adapter.
func NewServices(storages *store.Storages, api adapter.RaindropAPI, log *logger.Logger) *Services {
	syncSvc := NewSyncService(storages, api, log)

	return &Services{
		Data:    NewDataService(storages, api, log),
		Sync:    syncSvc,
		SyncJob: NewSyncJob(syncSvc, log),
	}
}
