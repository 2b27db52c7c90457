package upgrade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcSteiner/BaseForge/internal/pkg/upgrade"
)

func TestBaseType(t *testing.T) {
	assert.Equal(t, "Mortar", upgrade.BaseType("Mortar #1"))
	assert.Equal(t, "Cannon", upgrade.BaseType("Cannon #12"))
	assert.Equal(t, "Archer Tower", upgrade.BaseType("Archer Tower #2"))
	assert.Equal(t, "Town Hall", upgrade.BaseType("Town Hall"))
	assert.Equal(t, "Cannon #1 Extra", upgrade.BaseType("Cannon #1 Extra"))
}

func TestInstanceName(t *testing.T) {
	assert.Equal(t, "Cannon #1", upgrade.InstanceName("Cannon", 1))
	assert.Equal(t, "Archer Tower #3", upgrade.InstanceName("Archer Tower", 3))
}
