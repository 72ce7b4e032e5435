package service

import (
	"kind_contact_server/internal/dao/mysql/repository"
	myredis "kind_contact_server/internal/dao/redis"
	"kind_contact_server/internal/infrastructure/events"
	"kind_contact_server/internal/service/auth"
	"kind_contact_server/internal/service/contact"
	"kind_contact_server/internal/service/sync"
)

// Services bundles every business service for the handler layer.
type Services struct {
	Contact ContactService
	Sync    SyncService
	Auth    AuthService
}

// Svc is the process-wide service set, populated by InitServices at startup.
var Svc *Services

// NewServices wires the services to their dependencies.
func NewServices(repos *repository.Repositories, cache myredis.CacheService, directory sync.DirectoryClient, writer events.Writer) *Services {
	return &Services{
		Contact: contact.NewContactService(repos, cache),
		Sync:    sync.NewSyncService(repos, directory, writer),
		Auth:    auth.NewAuthService(repos),
	}
}

// InitServices sets the global service set.
func InitServices(repos *repository.Repositories, cache myredis.CacheService, directory sync.DirectoryClient, writer events.Writer) {
	Svc = NewServices(repos, cache, directory, writer)
}
