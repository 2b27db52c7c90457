package upgrade

import (
	"github.com/MarcSteiner/BaseForge/app/models"
)

// Candidate is one eligible next upgrade: either the next level of an
// existing idle instance, or a brand-new slot that may be built at level 1.
type Candidate struct {
	InstanceName string              `json:"instance_name"`
	CurrentLevel int                 `json:"current_level"`
	NextUpgrade  models.CatalogEntry `json:"next_upgrade"`
}

type typeLevel struct {
	structureType string
	level         int
}

// Available derives the set of upgrades a user could start right now.
// Instances locked by an in-progress upgrade are omitted entirely; new
// slots are synthesized up to each type's placement cap. The result set is
// deterministic for fixed inputs, its order is not significant.
func (e *Engine) Available(userID string) ([]Candidate, error) {
	busyNames, err := e.repos.Upgrade.BusyInstanceNames(userID)
	if err != nil {
		return nil, err
	}
	busy := make(map[string]struct{}, len(busyNames))
	for _, name := range busyNames {
		busy[name] = struct{}{}
	}

	tier, err := e.unlockTier(userID)
	if err != nil {
		return nil, err
	}

	entries, err := e.repos.Catalog.ListUpToTier(tier)
	if err != nil {
		return nil, err
	}
	byTypeLevel := make(map[typeLevel]models.CatalogEntry, len(entries))
	for _, entry := range entries {
		byTypeLevel[typeLevel{entry.StructureType, entry.Level}] = entry
	}

	instances, err := e.repos.Structure.ListByUserID(userID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]struct{}, len(instances))
	countByType := make(map[string]int)
	for _, instance := range instances {
		existing[instance.Name] = struct{}{}
		countByType[BaseType(instance.Name)]++
	}

	candidates := make([]Candidate, 0)

	// next level for every idle existing instance
	for _, instance := range instances {
		if _, isBusy := busy[instance.Name]; isBusy {
			continue
		}
		next, ok := byTypeLevel[typeLevel{BaseType(instance.Name), instance.CurrentLevel + 1}]
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{
			InstanceName: instance.Name,
			CurrentLevel: instance.CurrentLevel,
			NextUpgrade:  next,
		})
	}

	// new slots up to the placement cap of each type with a level-1 entry
	for _, entry := range entries {
		if entry.Level != 1 {
			continue
		}
		for i := countByType[entry.StructureType]; i < entry.MaxPerTier; i++ {
			name := InstanceName(entry.StructureType, i+1)
			if _, isBusy := busy[name]; isBusy {
				continue
			}
			if _, exists := existing[name]; exists {
				continue
			}
			candidates = append(candidates, Candidate{
				InstanceName: name,
				CurrentLevel: 0,
				NextUpgrade:  entry,
			})
		}
	}

	return candidates, nil
}
