// Package earnings builds the earnings dashboard summary shown to a user:
// balances, experience points and any active bonus rate.
package earnings

import (
	"fmt"
	"math"
	"strconv"

	"github.com/GooferByte/rewardcatalog/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const balancePlaces = 3

const xpInfo = `XP stands for "Experience Points". You are awarded 1 XP per minute of confirmed mining time. ` +
	`The more XP you have, the more veggies you will unlock in the Pantry.`

// Stat is a single titled figure on the dashboard.
type Stat struct {
	Title    string   `json:"title"`
	Values   []string `json:"values"`
	InfoText string   `json:"infoText"`
}

// Summary is the ordered list of dashboard stats for one user.
type Summary struct {
	UserID string `json:"userId"`
	Stats  []Stat `json:"stats"`
}

var printer = message.NewPrinter(language.English)

// Summarize renders balance into dashboard stats. The bonus stat is present
// only when a bonus earning rate is active.
func Summarize(balance models.EarningBalance) Summary {
	stats := []Stat{
		{
			Title:    "Current Balance",
			Values:   []string{FormatBalance(balance.CurrentBalance)},
			InfoText: "Current balance available to spend",
		},
		{
			Title:    "Lifetime Balance",
			Values:   []string{FormatBalance(balance.LifetimeBalance)},
			InfoText: "Total balance earned",
		},
		{
			Title:    "Total XP",
			Values:   []string{formatCount(valueOrZero(balance.TotalXP))},
			InfoText: xpInfo,
		},
	}

	if bonus := balance.Bonus; bonus != nil {
		stats = append(stats, Stat{
			Title:  "Earning Bonus",
			Values: []string{formatCount(bonus.Multiplier) + "x"},
			InfoText: fmt.Sprintf(
				"You are currently earning %sx your normal earning rate. You have already earned %s/%s of your bonus amount",
				strconv.FormatFloat(bonus.Multiplier, 'f', -1, 64),
				FormatBalance(&bonus.EarnedAmount),
				FormatBalance(&bonus.EarnedAmountLimit),
			),
		})
	}
	return Summary{UserID: balance.UserID, Stats: stats}
}

// FormatBalance renders a balance in dollars with three decimal places. A
// missing balance renders as zero.
func FormatBalance(balance *decimal.Decimal) string {
	if balance == nil {
		return "$" + decimal.Zero.StringFixed(balancePlaces)
	}
	return "$" + balance.StringFixed(balancePlaces)
}

// formatCount rounds half up and groups thousands.
func formatCount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return printer.Sprintf("%d", int64(math.Floor(v+0.5)))
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
