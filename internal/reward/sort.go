package reward

import (
	"cmp"
	"slices"

	"github.com/GooferByte/rewardcatalog/internal/models"
)

// RewardSort selects the display order of a reward list.
type RewardSort string

const (
	SortDefault         RewardSort = "default"
	SortAlphabetical    RewardSort = "alphabetical"
	SortPriceAscending  RewardSort = "price-ascending"
	SortPriceDescending RewardSort = "price-descending"
)

// Valid reports whether s is one of the known sort modes.
func (s RewardSort) Valid() bool {
	switch s {
	case SortDefault, SortAlphabetical, SortPriceAscending, SortPriceDescending:
		return true
	default:
		return false
	}
}

// SortRewards orders rewards in place and returns the same slice. Unknown
// sort modes use the default order: in-stock rewards first, then by name.
//
// Price sorts compare Price only; ties keep their input order.
func SortRewards(rewards []models.Reward, sort RewardSort) []models.Reward {
	slices.SortStableFunc(rewards, comparator(sort))
	return rewards
}

// SortedRewards returns a sorted copy, leaving rewards untouched.
func SortedRewards(rewards []models.Reward, sort RewardSort) []models.Reward {
	return SortRewards(slices.Clone(rewards), sort)
}

func comparator(sort RewardSort) func(a, b models.Reward) int {
	switch sort {
	case SortAlphabetical:
		return byName
	case SortPriceAscending:
		return func(a, b models.Reward) int {
			return a.Price.Cmp(b.Price)
		}
	case SortPriceDescending:
		return func(a, b models.Reward) int {
			return b.Price.Cmp(a.Price)
		}
	case SortDefault:
		return byStockThenName
	default:
		return byStockThenName
	}
}

func byName(a, b models.Reward) int {
	return cmp.Compare(a.Name, b.Name)
}

func byStockThenName(a, b models.Reward) int {
	if a.OutOfStock() != b.OutOfStock() {
		if a.OutOfStock() {
			return 1
		}
		return -1
	}
	return byName(a, b)
}
