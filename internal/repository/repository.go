package repository

import (
	"context"
	"errors"

	"github.com/GooferByte/rewardcatalog/internal/models"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not_found")
)

//go:generate mockgen -destination=./../service/mock_repository_test.go -package=service . RewardResourceRepository,BalanceRepository

// RewardResourceRepository abstracts persistence for raw catalog resources.
type RewardResourceRepository interface {
	ListResources(ctx context.Context) ([]models.RewardResource, error)
	GetResource(ctx context.Context, id string) (*models.RewardResource, error)
	UpsertResource(ctx context.Context, resource models.RewardResource) error
}

// BalanceRepository abstracts persistence for per-user earning balances.
type BalanceRepository interface {
	GetBalance(ctx context.Context, userID string) (*models.EarningBalance, error)
	SaveBalance(ctx context.Context, balance models.EarningBalance) error
}
