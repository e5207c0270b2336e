package services

import (
	portsrepo "github.com/dailyforge/journal_backend/internal/core/ports/repositories"
	portssvc "github.com/dailyforge/journal_backend/internal/core/ports/services"
	"github.com/dailyforge/journal_backend/internal/platform/cache"
	"github.com/dailyforge/journal_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	listCache := cache.NewEntryListCache(cfg.ListCacheTTL)

	container.Entry = NewEntryService(repos.EntryRepo, listCache)
	container.Token = NewTokenService(cfg)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.EntrySvcFacade = (*entryService)(nil)
	_ portssvc.TokenSvcFacade = (*tokenService)(nil)
)
