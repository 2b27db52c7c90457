package upgrade

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MarcSteiner/BaseForge/app/models"
)

// StatusSummary reports the account snapshot together with the total cost
// and time still needed to max out the base within the current tier.
type StatusSummary struct {
	GoldAmount        int64 `json:"gold_amount"`
	ElixirAmount      int64 `json:"elixir_amount"`
	GoldPass          bool  `json:"gold_pass"`
	BuildersCount     int   `json:"builders_count"`
	TotalGoldNeeded   int64 `json:"total_gold_needed"`
	TotalElixirNeeded int64 `json:"total_elixir_needed"`
	TotalTimeSeconds  int64 `json:"total_time_seconds"`
}

// Status computes the remaining-upgrades summary for a user. Every catalog
// entry within the current tier that the base has not reached yet counts
// once per applicable instance; types without any instance count their
// level-1 entry. The gold-pass discount is applied per entry.
func (e *Engine) Status(userID string) (*StatusSummary, error) {
	account, err := e.repos.Account.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "economy account"}
		}
		return nil, err
	}

	tier, err := e.unlockTier(userID)
	if err != nil {
		return nil, err
	}

	entries, err := e.repos.Catalog.ListUpToTier(tier)
	if err != nil {
		return nil, err
	}

	instances, err := e.repos.Structure.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	instancesByType := make(map[string][]models.StructureInstance)
	for _, instance := range instances {
		key := BaseType(instance.Name)
		instancesByType[key] = append(instancesByType[key], instance)
	}

	summary := &StatusSummary{
		GoldAmount:    account.GoldAmount,
		ElixirAmount:  account.ElixirAmount,
		GoldPass:      account.GoldPass,
		BuildersCount: account.BuildersCount,
	}

	add := func(entry models.CatalogEntry, times int64) {
		if times <= 0 {
			return
		}
		cost := FinalCost(entry.BuildCost, account.GoldPass) * times
		switch entry.BuildResource {
		case models.ResourceElixir:
			summary.TotalElixirNeeded += cost
		default:
			summary.TotalGoldNeeded += cost
		}
		summary.TotalTimeSeconds += int64(entry.BuildTimeSeconds) * times
	}

	for _, entry := range entries {
		placed := instancesByType[entry.StructureType]
		if len(placed) == 0 {
			if entry.Level == 1 {
				add(entry, 1)
			}
			continue
		}
		var remaining int64
		for _, instance := range placed {
			if entry.Level > instance.CurrentLevel {
				remaining++
			}
		}
		add(entry, remaining)
	}

	return summary, nil
}
