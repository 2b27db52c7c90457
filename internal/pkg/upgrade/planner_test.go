package upgrade_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcSteiner/BaseForge/app/models"
	"github.com/MarcSteiner/BaseForge/internal/pkg/upgrade"
)

func seedPlannerWorld(w *world) {
	w.catalog.entries[1] = models.CatalogEntry{
		ID: 1, StructureType: "Cannon", Level: 1, BuildCost: 250,
		BuildResource: models.ResourceGold, BuildTimeSeconds: 60,
		UnlocksAtTier: 1, MaxPerTier: 2,
	}
	w.catalog.entries[2] = models.CatalogEntry{
		ID: 2, StructureType: "Cannon", Level: 2, BuildCost: 1000,
		BuildResource: models.ResourceGold, BuildTimeSeconds: 300,
		UnlocksAtTier: 1, MaxPerTier: 2,
	}
	w.catalog.entries[3] = models.CatalogEntry{
		ID: 3, StructureType: "Archer Tower", Level: 1, BuildCost: 1000,
		BuildResource: models.ResourceGold, BuildTimeSeconds: 900,
		UnlocksAtTier: 2, MaxPerTier: 1,
	}
	w.structures.rows = append(w.structures.rows, models.StructureInstance{
		ID: 1, UserID: "u1", Name: upgrade.TierStructureName, CurrentLevel: 1,
	})
}

func candidateNames(candidates []upgrade.Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.InstanceName)
	}
	sort.Strings(names)
	return names
}

func TestAvailableSynthesizesNewSlots(t *testing.T) {
	w := newWorld()
	seedPlannerWorld(w)
	engine, _ := newTestEngine(w, upgrade.Options{})

	candidates, err := engine.Available("u1")
	require.NoError(t, err)

	// no Cannon placed, cap 2: both slots offered at level 0
	assert.Equal(t, []string{"Cannon #1", "Cannon #2"}, candidateNames(candidates))
	for _, c := range candidates {
		assert.Equal(t, 0, c.CurrentLevel)
		assert.Equal(t, 1, c.NextUpgrade.Level)
	}
}

func TestAvailableOffersNextLevelForExistingInstance(t *testing.T) {
	w := newWorld()
	seedPlannerWorld(w)
	w.structures.rows = append(w.structures.rows, models.StructureInstance{
		ID: 2, UserID: "u1", Name: "Cannon #1", CurrentLevel: 1,
	})
	engine, _ := newTestEngine(w, upgrade.Options{})

	candidates, err := engine.Available("u1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Cannon #1", "Cannon #2"}, candidateNames(candidates))
	for _, c := range candidates {
		switch c.InstanceName {
		case "Cannon #1":
			assert.Equal(t, 1, c.CurrentLevel)
			assert.Equal(t, 2, c.NextUpgrade.Level)
		case "Cannon #2":
			assert.Equal(t, 0, c.CurrentLevel)
			assert.Equal(t, 1, c.NextUpgrade.Level)
		}
	}
}

func TestAvailableOmitsBusyInstances(t *testing.T) {
	w := newWorld()
	seedPlannerWorld(w)
	w.structures.rows = append(w.structures.rows, models.StructureInstance{
		ID: 2, UserID: "u1", Name: "Cannon #1", CurrentLevel: 1,
	})
	w.upgrades.rows = append(w.upgrades.rows, models.ActiveUpgrade{
		ID: 9, UserID: "u1", InstanceName: "Cannon #1", TargetLevel: 2,
		Status: models.STATUS_IN_PROGRESS,
	})
	engine, _ := newTestEngine(w, upgrade.Options{})

	candidates, err := engine.Available("u1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Cannon #2"}, candidateNames(candidates))
}

func TestAvailableRespectsUnlockTier(t *testing.T) {
	w := newWorld()
	seedPlannerWorld(w)
	engine, _ := newTestEngine(w, upgrade.Options{})

	candidates, err := engine.Available("u1")
	require.NoError(t, err)
	assert.NotContains(t, candidateNames(candidates), "Archer Tower #1")

	// raising the tier structure unlocks the Archer Tower
	w.structures.rows[0].CurrentLevel = 2
	candidates, err = engine.Available("u1")
	require.NoError(t, err)
	assert.Contains(t, candidateNames(candidates), "Archer Tower #1")
}

func TestAvailableMissingTierStructure(t *testing.T) {
	w := newWorld()
	engine, _ := newTestEngine(w, upgrade.Options{})

	_, err := engine.Available("u1")
	require.True(t, upgrade.IsNotFound(err))
	assert.Contains(t, err.Error(), upgrade.TierStructureName)
}

func TestAvailableIsDeterministicAndDuplicateFree(t *testing.T) {
	w := newWorld()
	seedPlannerWorld(w)
	w.structures.rows = append(w.structures.rows, models.StructureInstance{
		ID: 2, UserID: "u1", Name: "Cannon #1", CurrentLevel: 1,
	})
	engine, _ := newTestEngine(w, upgrade.Options{})

	first, err := engine.Available("u1")
	require.NoError(t, err)
	second, err := engine.Available("u1")
	require.NoError(t, err)

	assert.Equal(t, candidateNames(first), candidateNames(second))

	seen := make(map[string]bool)
	for _, c := range first {
		assert.False(t, seen[c.InstanceName], "duplicate candidate %s", c.InstanceName)
		seen[c.InstanceName] = true
	}
}
