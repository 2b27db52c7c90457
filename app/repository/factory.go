package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db         *gorm.DB
	repos      *Repositories
	transactor Transactor
	once       sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories. The
// catalog repository is wrapped with the Redis cache decorator.
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
		f.repos.Catalog = NewCachedCatalogRepository(f.repos.Catalog)
		f.transactor = NewTransactor(f.db)
	})
	return f.repos
}

// GetTransactor returns the shared transactor instance
func (f *Factory) GetTransactor() Transactor {
	f.GetRepositories()
	return f.transactor
}

// GetCatalogRepository returns the catalog repository instance
func (f *Factory) GetCatalogRepository() CatalogRepository {
	return f.GetRepositories().Catalog
}

// GetAccountRepository returns the account repository instance
func (f *Factory) GetAccountRepository() AccountRepository {
	return f.GetRepositories().Account
}

// GetUpgradeRepository returns the active-upgrade repository instance
func (f *Factory) GetUpgradeRepository() UpgradeRepository {
	return f.GetRepositories().Upgrade
}

// GetStructureRepository returns the structure repository instance
func (f *Factory) GetStructureRepository() StructureRepository {
	return f.GetRepositories().Structure
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}
