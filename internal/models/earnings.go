package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EarningBalance holds the balances shown on a user's earnings dashboard.
type EarningBalance struct {
	UserID          string            `json:"userId"`
	CurrentBalance  *decimal.Decimal  `json:"currentBalance,omitempty"`
	LifetimeBalance *decimal.Decimal  `json:"lifetimeBalance,omitempty"`
	TotalXP         *float64          `json:"totalXp,omitempty"`
	Bonus           *BonusEarningRate `json:"bonusEarningRate,omitempty"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// BonusEarningRate describes an active earning multiplier and how much of its cap is used.
type BonusEarningRate struct {
	Multiplier        float64         `json:"multiplier"`
	EarnedAmount      decimal.Decimal `json:"earnedAmount"`
	EarnedAmountLimit decimal.Decimal `json:"earnedAmountLimit"`
}
