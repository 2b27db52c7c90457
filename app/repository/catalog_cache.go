package repository

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/MarcSteiner/BaseForge/app/models"
	"github.com/MarcSteiner/BaseForge/internal/pkg/cache"
)

const catalogCacheTTL = 5 * time.Minute

// cachedCatalogRepository wraps a CatalogRepository with a Redis cache for
// the per-tier listing. Catalog rows are reference data that only change on
// reseeding, so a short TTL is enough; any cache failure falls through to
// the database.
type cachedCatalogRepository struct {
	inner CatalogRepository
}

// NewCachedCatalogRepository decorates the given repository with caching.
func NewCachedCatalogRepository(inner CatalogRepository) CatalogRepository {
	return &cachedCatalogRepository{inner: inner}
}

func (r *cachedCatalogRepository) GetByID(id uint) (*models.CatalogEntry, error) {
	return r.inner.GetByID(id)
}

func (r *cachedCatalogRepository) ListUpToTier(tier int) ([]models.CatalogEntry, error) {
	key := fmt.Sprintf("catalog:tier:%d", tier)

	if raw, err := cache.Get(key); err == nil && raw != "" {
		var entries []models.CatalogEntry
		if err := json.Unmarshal([]byte(raw), &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := r.inner.ListUpToTier(tier)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(entries); err == nil {
		if err := cache.Set(key, string(raw), catalogCacheTTL); err != nil {
			log.Printf("Warning: could not cache catalog listing for tier %d: %v", tier, err)
		}
	}

	return entries, nil
}

// InvalidateCatalogCache drops cached catalog listings up to the given tier.
// Called after reseeding the catalog table.
func InvalidateCatalogCache(maxTier int) {
	for tier := 1; tier <= maxTier; tier++ {
		if err := cache.Delete(fmt.Sprintf("catalog:tier:%d", tier)); err != nil {
			log.Printf("Warning: could not invalidate catalog cache for tier %d: %v", tier, err)
		}
	}
}
