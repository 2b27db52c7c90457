package upgrade_test

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/MarcSteiner/BaseForge/app/models"
	"github.com/MarcSteiner/BaseForge/app/repository"
)

// In-memory repositories backing the engine tests.

type fakeCatalog struct {
	entries map[uint]models.CatalogEntry
}

func (f *fakeCatalog) GetByID(id uint) (*models.CatalogEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &entry, nil
}

func (f *fakeCatalog) ListUpToTier(tier int) ([]models.CatalogEntry, error) {
	var out []models.CatalogEntry
	for _, entry := range f.entries {
		if entry.UnlocksAtTier <= tier {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StructureType != out[j].StructureType {
			return out[i].StructureType < out[j].StructureType
		}
		return out[i].Level < out[j].Level
	})
	return out, nil
}

type fakeAccounts struct {
	byUser map[string]*models.EconomyAccount
	nextID uint
}

func (f *fakeAccounts) get(userID string) (*models.EconomyAccount, error) {
	account, ok := f.byUser[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccounts) GetByUserID(userID string) (*models.EconomyAccount, error) {
	return f.get(userID)
}

func (f *fakeAccounts) GetByUserIDForUpdate(userID string) (*models.EconomyAccount, error) {
	return f.get(userID)
}

func (f *fakeAccounts) Create(account *models.EconomyAccount) error {
	f.nextID++
	account.ID = f.nextID
	copied := *account
	f.byUser[account.UserID] = &copied
	return nil
}

func (f *fakeAccounts) Update(account *models.EconomyAccount) error {
	copied := *account
	f.byUser[account.UserID] = &copied
	return nil
}

func (f *fakeAccounts) UpdateBalance(userID string, kind models.ResourceKind, newAmount int64) error {
	account, ok := f.byUser[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	account.SetBalance(kind, newAmount)
	return nil
}

func (f *fakeAccounts) TouchLastSeen(userID string, seenAt time.Time) error {
	account, ok := f.byUser[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	account.LastSeenAt = &seenAt
	return nil
}

type fakeUpgrades struct {
	rows      []models.ActiveUpgrade
	nextID    uint
	insertErr error
	deleteErr error
}

func (f *fakeUpgrades) ListInProgress(userID string) ([]models.ActiveUpgrade, error) {
	var out []models.ActiveUpgrade
	for _, row := range f.rows {
		if row.UserID == userID && row.Status == models.STATUS_IN_PROGRESS {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FinishesAt.Before(out[j].FinishesAt) })
	return out, nil
}

func (f *fakeUpgrades) CountInProgress(userID string) (int64, error) {
	rows, _ := f.ListInProgress(userID)
	return int64(len(rows)), nil
}

func (f *fakeUpgrades) BusyInstanceNames(userID string) ([]string, error) {
	rows, _ := f.ListInProgress(userID)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.InstanceName)
	}
	return names, nil
}

func (f *fakeUpgrades) Insert(upgrade *models.ActiveUpgrade) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	upgrade.ID = f.nextID
	f.rows = append(f.rows, *upgrade)
	return nil
}

func (f *fakeUpgrades) DeleteMatching(id uint, userID, instanceName string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	kept := f.rows[:0]
	var removed int64
	for _, row := range f.rows {
		if row.ID == id && row.UserID == userID && row.InstanceName == instanceName {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return removed, nil
}

type fakeStructures struct {
	rows   []models.StructureInstance
	nextID uint
}

func (f *fakeStructures) GetByName(userID, name string) (*models.StructureInstance, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.Name == name {
			copied := row
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStructures) ListByUserID(userID string) ([]models.StructureInstance, error) {
	var out []models.StructureInstance
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStructures) SetLevel(id uint, level int) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].CurrentLevel = level
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStructures) Insert(instance *models.StructureInstance) error {
	f.nextID++
	instance.ID = f.nextID
	f.rows = append(f.rows, *instance)
	return nil
}

// fakeTransactor runs the callback against the same repositories; the tests
// exercise engine logic, not transaction isolation.
type fakeTransactor struct {
	repos *repository.Repositories
}

func (t *fakeTransactor) Transaction(fn func(repos *repository.Repositories) error) error {
	return fn(t.repos)
}

type world struct {
	catalog    *fakeCatalog
	accounts   *fakeAccounts
	upgrades   *fakeUpgrades
	structures *fakeStructures
	repos      *repository.Repositories
	tx         repository.Transactor
}

func newWorld() *world {
	w := &world{
		catalog:    &fakeCatalog{entries: make(map[uint]models.CatalogEntry)},
		accounts:   &fakeAccounts{byUser: make(map[string]*models.EconomyAccount)},
		upgrades:   &fakeUpgrades{},
		structures: &fakeStructures{},
	}
	w.repos = &repository.Repositories{
		Catalog:   w.catalog,
		Account:   w.accounts,
		Upgrade:   w.upgrades,
		Structure: w.structures,
	}
	w.tx = &fakeTransactor{repos: w.repos}
	return w
}
