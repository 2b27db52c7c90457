package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// ResourceCap is the hard ceiling for every stored balance.
	ResourceCap = 24_000_000

	// Passive production rates, per second offline.
	GoldRatePerSecond   = 500
	ElixirRatePerSecond = 500

	DefaultBuildersCount = 4
)

// EconomyAccount is the per-user resource ledger plus the builder pool size.
// Balances are authoritative here; in-flight upgrades debit them at admission
// time, never at completion.
type EconomyAccount struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        string     `gorm:"uniqueIndex;type:varchar(64)" json:"user_id" validate:"required,min=1,max=64"`
	GoldAmount    int64      `gorm:"not null;default:0" json:"gold_amount" validate:"min=0,max=24000000"`
	ElixirAmount  int64      `gorm:"not null;default:0" json:"elixir_amount" validate:"min=0,max=24000000"`
	GoldPass      bool       `gorm:"not null;default:false" json:"gold_pass"`
	BuildersCount int        `gorm:"not null;default:4" json:"builders_count" validate:"min=1,max=10"`
	LastSeenAt    *time.Time `gorm:"type:timestamp;default:null" json:"last_seen_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *EconomyAccount) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// NewEconomyAccount returns a fresh zero-balance account with default
// builder capacity and no gold pass.
func NewEconomyAccount(userID string) *EconomyAccount {
	return &EconomyAccount{
		UserID:        userID,
		BuildersCount: DefaultBuildersCount,
	}
}

// Balance returns the stored amount for the given resource.
func (a *EconomyAccount) Balance(kind ResourceKind) int64 {
	if kind == ResourceElixir {
		return a.ElixirAmount
	}
	return a.GoldAmount
}

// SetBalance writes the amount for the given resource, clamped to [0, cap].
func (a *EconomyAccount) SetBalance(kind ResourceKind, amount int64) {
	amount = ClampResource(amount)
	if kind == ResourceElixir {
		a.ElixirAmount = amount
		return
	}
	a.GoldAmount = amount
}

// ClampResource bounds an amount to the valid balance range.
func ClampResource(amount int64) int64 {
	if amount < 0 {
		return 0
	}
	if amount > ResourceCap {
		return ResourceCap
	}
	return amount
}
