package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEconomyAccountDefaults(t *testing.T) {
	account := NewEconomyAccount("u1")

	assert.Equal(t, "u1", account.UserID)
	assert.Zero(t, account.GoldAmount)
	assert.Zero(t, account.ElixirAmount)
	assert.False(t, account.GoldPass)
	assert.Equal(t, DefaultBuildersCount, account.BuildersCount)
	require.NoError(t, account.Validate())
}

func TestBalanceSelectsTypedField(t *testing.T) {
	account := &EconomyAccount{GoldAmount: 100, ElixirAmount: 200}

	assert.Equal(t, int64(100), account.Balance(ResourceGold))
	assert.Equal(t, int64(200), account.Balance(ResourceElixir))
}

func TestSetBalanceClampsToCap(t *testing.T) {
	account := &EconomyAccount{}

	account.SetBalance(ResourceGold, ResourceCap+1)
	assert.Equal(t, int64(ResourceCap), account.GoldAmount)

	account.SetBalance(ResourceElixir, -50)
	assert.Zero(t, account.ElixirAmount)

	account.SetBalance(ResourceGold, 1234)
	assert.Equal(t, int64(1234), account.GoldAmount)
}

func TestEconomyAccountValidate(t *testing.T) {
	account := NewEconomyAccount("u1")
	account.BuildersCount = 0
	assert.Error(t, account.Validate())

	account = NewEconomyAccount("")
	assert.Error(t, account.Validate())
}

func TestResourceKindValid(t *testing.T) {
	assert.True(t, ResourceGold.Valid())
	assert.True(t, ResourceElixir.Valid())
	assert.False(t, ResourceKind("dark_elixir").Valid())
}
