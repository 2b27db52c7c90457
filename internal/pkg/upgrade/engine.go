package upgrade

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MarcSteiner/BaseForge/app/models"
	"github.com/MarcSteiner/BaseForge/app/repository"
	"github.com/MarcSteiner/BaseForge/internal/pkg/clock"
)

// Options tunes deployment-specific engine behavior.
type Options struct {
	// DurationOffset is added to every computed build duration. Some
	// deployments carry catalog data with a known flat skew (historically
	// +2h); the default is zero. The effective duration never drops below
	// zero.
	DurationOffset time.Duration

	// CreateMissingAccounts makes Start lazily create a zero-balance account
	// for users seen for the first time instead of failing with not-found.
	CreateMissingAccounts bool
}

// Engine decides whether an upgrade may start, reserves a builder slot,
// debits the ledger and persists the timed job; later it resolves the job to
// completion exactly once. All storage access goes through the injected
// repositories.
type Engine struct {
	repos *repository.Repositories
	tx    repository.Transactor
	clock clock.Clock
	opts  Options
}

// NewEngine creates an engine bound to the given repositories.
func NewEngine(repos *repository.Repositories, tx repository.Transactor, clk clock.Clock, opts Options) *Engine {
	return &Engine{
		repos: repos,
		tx:    tx,
		clock: clk,
		opts:  opts,
	}
}

// Start validates and admits an upgrade request. Checks run in a fixed
// order: catalog entry, account, builder capacity, funds. All effects
// (debit, job insert) happen in one transaction with the account row locked,
// so two concurrent starts for the same user cannot both pass the capacity
// check.
func (e *Engine) Start(userID string, catalogEntryID uint, targetLevel int, instanceName string) (*models.ActiveUpgrade, error) {
	entry, err := e.repos.Catalog.GetByID(catalogEntryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "catalog entry"}
		}
		return nil, err
	}

	var created *models.ActiveUpgrade
	err = e.tx.Transaction(func(repos *repository.Repositories) error {
		account, err := repos.Account.GetByUserIDForUpdate(userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if !e.opts.CreateMissingAccounts {
				return &NotFoundError{Entity: "economy account"}
			}
			account = models.NewEconomyAccount(userID)
			if err := repos.Account.Create(account); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		inProgress, err := repos.Upgrade.CountInProgress(userID)
		if err != nil {
			return err
		}
		if inProgress >= int64(account.BuildersCount) {
			return ErrCapacityExceeded
		}

		cost := FinalCost(entry.BuildCost, account.GoldPass)
		balance := account.Balance(entry.BuildResource)
		if balance < cost {
			return &InsufficientResourcesError{Resource: entry.BuildResource}
		}

		if err := repos.Account.UpdateBalance(userID, entry.BuildResource, balance-cost); err != nil {
			return err
		}

		duration := time.Duration(entry.BuildTimeSeconds)*time.Second + e.opts.DurationOffset
		if duration < 0 {
			duration = 0
		}
		now := e.clock.Now()

		record := &models.ActiveUpgrade{
			UUID:           uuid.New().String(),
			UserID:         userID,
			CatalogEntryID: entry.ID,
			InstanceName:   instanceName,
			TargetLevel:    targetLevel,
			Status:         models.STATUS_IN_PROGRESS,
			StartedAt:      now,
			FinishesAt:     now.Add(duration),
		}
		if err := repos.Upgrade.Insert(record); err != nil {
			return err
		}
		created = record

		log.Printf("upgrade started: user=%s instance=%q level=%d cost=%d %s finishes=%s",
			userID, instanceName, targetLevel, cost, entry.BuildResource, record.FinishesAt.Format(time.RFC3339))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Complete resolves a finished upgrade. The in-flight row is deleted first;
// when nothing was deleted a previous call already resolved the job and the
// result is reported as success without further writes, which makes retries
// and concurrent completion calls safe. Levels never move backward: a target
// at or below the recorded level leaves the instance untouched.
func (e *Engine) Complete(userID string, upgradeID uint, instanceName string, targetLevel int) (string, error) {
	removed, err := e.repos.Upgrade.DeleteMatching(upgradeID, userID, instanceName)
	if err != nil {
		return "", err
	}
	if removed == 0 {
		log.Printf("upgrade %d for user=%s already resolved", upgradeID, userID)
		return fmt.Sprintf("Upgrade for %s to level %d was already completed.", instanceName, targetLevel), nil
	}

	instance, err := e.repos.Structure.GetByName(userID, instanceName)
	switch {
	case err == nil:
		if targetLevel <= instance.CurrentLevel {
			return fmt.Sprintf("%s is already at level %d, level retained.", instanceName, instance.CurrentLevel), nil
		}
		if err := e.repos.Structure.SetLevel(instance.ID, targetLevel); err != nil {
			return "", err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first build, level 0 -> N
		newInstance := &models.StructureInstance{
			UserID:       userID,
			Name:         instanceName,
			CurrentLevel: targetLevel,
		}
		if err := e.repos.Structure.Insert(newInstance); err != nil {
			return "", err
		}
	default:
		return "", err
	}

	return fmt.Sprintf("Upgrade to %s level %d finished successfully.", instanceName, targetLevel), nil
}

// InProgress lists a user's pending upgrade jobs, soonest finish first.
func (e *Engine) InProgress(userID string) ([]models.ActiveUpgrade, error) {
	return e.repos.Upgrade.ListInProgress(userID)
}

// unlockTier derives the user's progression tier from the designated tier
// structure's current level.
func (e *Engine) unlockTier(userID string) (int, error) {
	tierStructure, err := e.repos.Structure.GetByName(userID, TierStructureName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, &NotFoundError{Entity: TierStructureName}
		}
		return 0, err
	}
	return tierStructure.CurrentLevel, nil
}
