package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/GooferByte/rewardcatalog/internal/models"
	"github.com/GooferByte/rewardcatalog/internal/repository"
)

type InMemoryRepo struct {
	mu        sync.RWMutex
	resources map[string]models.RewardResource
	balances  map[string]models.EarningBalance
}

func New() *InMemoryRepo {
	return &InMemoryRepo{
		resources: make(map[string]models.RewardResource),
		balances:  make(map[string]models.EarningBalance),
	}
}

func (r *InMemoryRepo) ListResources(ctx context.Context) ([]models.RewardResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.RewardResource, 0, len(r.resources))
	for _, res := range r.resources {
		out = append(out, cloneResource(res))
	}
	slices.SortFunc(out, func(a, b models.RewardResource) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (r *InMemoryRepo) GetResource(ctx context.Context, id string) (*models.RewardResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.resources[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := cloneResource(res)
	return &copy, nil
}

func (r *InMemoryRepo) UpsertResource(ctx context.Context, resource models.RewardResource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[resource.ID] = cloneResource(resource)
	return nil
}

func (r *InMemoryRepo) GetBalance(ctx context.Context, userID string) (*models.EarningBalance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bal, ok := r.balances[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := cloneBalance(bal)
	return &copy, nil
}

func (r *InMemoryRepo) SaveBalance(ctx context.Context, balance models.EarningBalance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[balance.UserID] = cloneBalance(balance)
	return nil
}

func cloneResource(res models.RewardResource) models.RewardResource {
	res.CoverImage = cloneString(res.CoverImage)
	res.HeroImage = cloneString(res.HeroImage)
	res.Image = cloneString(res.Image)
	res.Images = slices.Clone(res.Images)
	res.Tags = slices.Clone(res.Tags)
	if res.Quantity != nil {
		q := *res.Quantity
		res.Quantity = &q
	}
	return res
}

func cloneBalance(bal models.EarningBalance) models.EarningBalance {
	if bal.CurrentBalance != nil {
		v := *bal.CurrentBalance
		bal.CurrentBalance = &v
	}
	if bal.LifetimeBalance != nil {
		v := *bal.LifetimeBalance
		bal.LifetimeBalance = &v
	}
	if bal.TotalXP != nil {
		v := *bal.TotalXP
		bal.TotalXP = &v
	}
	if bal.Bonus != nil {
		v := *bal.Bonus
		bal.Bonus = &v
	}
	return bal
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
