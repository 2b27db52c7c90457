package repository

import (
	"time"

	"github.com/MarcSteiner/BaseForge/app/models"
	"gorm.io/gorm"
)

// CatalogRepository defines read access to the immutable upgrade catalog
type CatalogRepository interface {
	GetByID(id uint) (*models.CatalogEntry, error)
	ListUpToTier(tier int) ([]models.CatalogEntry, error)
}

// AccountRepository defines the interface for economy-account operations
type AccountRepository interface {
	GetByUserID(userID string) (*models.EconomyAccount, error)
	// GetByUserIDForUpdate loads the account with a row-level write lock so a
	// concurrent start cannot pass the capacity or funds checks in parallel.
	// Only meaningful inside a transaction.
	GetByUserIDForUpdate(userID string) (*models.EconomyAccount, error)
	Create(account *models.EconomyAccount) error
	Update(account *models.EconomyAccount) error
	UpdateBalance(userID string, kind models.ResourceKind, newAmount int64) error
	TouchLastSeen(userID string, seenAt time.Time) error
}

// UpgradeRepository defines the interface for active-upgrade records
type UpgradeRepository interface {
	ListInProgress(userID string) ([]models.ActiveUpgrade, error)
	CountInProgress(userID string) (int64, error)
	BusyInstanceNames(userID string) ([]string, error)
	Insert(upgrade *models.ActiveUpgrade) error
	// DeleteMatching removes the row identified by (id, userID, instanceName)
	// and returns how many rows were actually removed. Zero means the upgrade
	// was already resolved by an earlier call.
	DeleteMatching(id uint, userID, instanceName string) (int64, error)
}

// StructureRepository defines the interface for placed base structures
type StructureRepository interface {
	GetByName(userID, name string) (*models.StructureInstance, error)
	ListByUserID(userID string) ([]models.StructureInstance, error)
	SetLevel(id uint, level int) error
	Insert(instance *models.StructureInstance) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Catalog   CatalogRepository
	Account   AccountRepository
	Upgrade   UpgradeRepository
	Structure StructureRepository
}

// Transactor runs a function against a transactional view of all
// repositories. The callback's repositories share one database transaction;
// returning an error rolls everything back.
type Transactor interface {
	Transaction(fn func(repos *Repositories) error) error
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Catalog:   NewCatalogRepository(db),
		Account:   NewAccountRepository(db),
		Upgrade:   NewUpgradeRepository(db),
		Structure: NewStructureRepository(db),
	}
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor backed by GORM transactions.
func NewTransactor(db *gorm.DB) Transactor {
	return &gormTransactor{db: db}
}

func (t *gormTransactor) Transaction(fn func(repos *Repositories) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
