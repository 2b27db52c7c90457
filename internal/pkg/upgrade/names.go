package upgrade

import (
	"fmt"
	"regexp"
)

// TierStructureName is the structure whose level defines a user's unlock
// tier. Catalog entries above this tier are not yet reachable.
const TierStructureName = "Town Hall"

var instanceSuffix = regexp.MustCompile(`\s#\d+$`)

// BaseType strips the trailing instance suffix, e.g. "Mortar #1" -> "Mortar".
func BaseType(instanceName string) string {
	return instanceSuffix.ReplaceAllString(instanceName, "")
}

// InstanceName builds the canonical name for the index-th instance of a
// structure type, e.g. ("Cannon", 2) -> "Cannon #2".
func InstanceName(structureType string, index int) string {
	return fmt.Sprintf("%s #%d", structureType, index)
}
