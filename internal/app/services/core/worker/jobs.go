package worker

import (
	"context"
	"sirsak-service/internal/app/config"
	"sirsak-service/internal/app/contracts"
	"sirsak-service/internal/app/models"
	"sirsak-service/internal/app/services/core/reservations"
	"sirsak-service/internal/pkg/constvars"
	"time"
)

const (
	CatalogRefreshJobName = "catalog-refresh"
	BuilderSweepJobName   = "builder-sweep"

	catalogRefreshLockKey = "catalog:refresh:leader"
)

// CatalogRefreshJob re-reads rooms and locations with the service token. It
// is a no-op when no service token is configured.
func CatalogRefreshJob(catalog contracts.CatalogUsecase, cfg *config.InternalConfig) Job {
	return Job{
		Name:          CatalogRefreshJobName,
		Spec:          cfg.Catalog.CronSpec,
		FallbackSpec:  constvars.DefaultCatalogCronSpec,
		LeaderLockKey: catalogRefreshLockKey,
		LeaderLockTTL: 2 * time.Minute,
		Run: func(ctx context.Context) error {
			if cfg.SirsakAPI.ServiceToken == "" {
				return nil
			}
			ctx = models.ContextWithSession(ctx, &models.Session{
				UserID: "service",
				Role:   constvars.SirsakRoleAdmin,
				Token:  cfg.SirsakAPI.ServiceToken,
			})
			return catalog.Refresh(ctx)
		},
	}
}

// BuilderSweepJob drops builders idle for longer than the configured TTL.
// Builders live in process memory, so every instance sweeps its own.
func BuilderSweepJob(registry *reservations.Registry, cfg *config.InternalConfig) Job {
	return Job{
		Name:         BuilderSweepJobName,
		Spec:         cfg.Builder.SweepCronSpec,
		FallbackSpec: constvars.DefaultBuilderSweepSpec,
		Run: func(ctx context.Context) error {
			registry.Sweep(time.Now(), cfg.Builder.IdleTTL)
			return nil
		},
	}
}
