package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm/clause"

	"github.com/MarcSteiner/BaseForge/app/models"
	"github.com/MarcSteiner/BaseForge/app/repository"
	"github.com/MarcSteiner/BaseForge/internal/pkg/cache"
	"github.com/MarcSteiner/BaseForge/internal/pkg/database"
	"github.com/MarcSteiner/BaseForge/internal/pkg/env"
)

// catalogFile is the YAML shape of a catalog data file.
type catalogFile struct {
	Entries []catalogEntry `yaml:"entries"`
}

type catalogEntry struct {
	StructureType    string `yaml:"structure_type"`
	Level            int    `yaml:"level"`
	BuildCost        int64  `yaml:"build_cost"`
	BuildResource    string `yaml:"build_resource"`
	BuildTimeSeconds int    `yaml:"build_time_seconds"`
	UnlocksAtTier    int    `yaml:"unlocks_at_tier"`
	MaxPerTier       int    `yaml:"max_per_tier"`
}

// Loads a YAML catalog file into the catalog_entries table. Existing
// (structure_type, level) rows are updated in place so the seed can be
// re-run after data fixes.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: catalogseed <catalog.yml>")
	}

	env.SetupEnvFile()
	database.SetupDatabase()

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read catalog file: %v", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		log.Fatalf("Failed to parse catalog file: %v", err)
	}
	if len(file.Entries) == 0 {
		log.Fatal("Catalog file contains no entries")
	}

	db := database.GetDB()
	seeded := 0
	maxTier := 0
	for _, in := range file.Entries {
		if in.UnlocksAtTier > maxTier {
			maxTier = in.UnlocksAtTier
		}
		entry := models.CatalogEntry{
			StructureType:    in.StructureType,
			Level:            in.Level,
			BuildCost:        in.BuildCost,
			BuildResource:    models.ResourceKind(in.BuildResource),
			BuildTimeSeconds: in.BuildTimeSeconds,
			UnlocksAtTier:    in.UnlocksAtTier,
			MaxPerTier:       in.MaxPerTier,
		}
		if err := entry.Validate(); err != nil {
			log.Fatalf("Invalid catalog entry %s L%d: %v", in.StructureType, in.Level, err)
		}

		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "structure_type"},
				{Name: "level"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"build_cost", "build_resource", "build_time_seconds", "unlocks_at_tier", "max_per_tier",
			}),
		}).Create(&entry).Error
		if err != nil {
			log.Fatalf("Failed to seed %s L%d: %v", in.StructureType, in.Level, err)
		}
		seeded++
	}

	cache.SetupCache()
	repository.InvalidateCatalogCache(maxTier)

	log.Printf("Seeded %d catalog entries", seeded)
}
