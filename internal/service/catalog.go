package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/GooferByte/rewardcatalog/internal/catalogcache"
	"github.com/GooferByte/rewardcatalog/internal/models"
	"github.com/GooferByte/rewardcatalog/internal/repository"
	"github.com/GooferByte/rewardcatalog/internal/reward"
	"github.com/sirupsen/logrus"
)

var (
	ErrValidation = errors.New("validation_error")
	ErrNotFound   = repository.ErrNotFound
)

// CatalogService serves the normalized, filtered and sorted reward catalog.
type CatalogService struct {
	repo       repository.RewardResourceRepository
	normalizer *reward.Normalizer
	cache      *catalogcache.Cache
	logger     *logrus.Entry
}

// NewCatalogService builds a CatalogService. cache may be nil to disable caching.
func NewCatalogService(repo repository.RewardResourceRepository, normalizer *reward.Normalizer, cache *catalogcache.Cache, logger *logrus.Logger) *CatalogService {
	return &CatalogService{
		repo:       repo,
		normalizer: normalizer,
		cache:      cache,
		logger:     logger.WithField("component", "catalog-service"),
	}
}

// ListRewards returns the rewards matching the query's categories, ordered by
// its sort mode. A reward matches when one of its tags equals one of the
// categories; a query without categories matches everything.
func (s *CatalogService) ListRewards(ctx context.Context, query reward.RewardQuery) ([]models.Reward, error) {
	all, err := s.loadRewards(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Reward, 0, len(all))
	wanted := reward.NewCategorySet(query.Category...)
	if wanted.Len() == 0 {
		filtered = append(filtered, all...)
	} else {
		for _, r := range all {
			if matchesCategory(r, wanted) {
				filtered = append(filtered, r)
			}
		}
	}
	return reward.SortRewards(filtered, query.Sort), nil
}

// GetReward loads and normalizes a single reward.
func (s *CatalogService) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	res, err := s.repo.GetResource(ctx, id)
	if err != nil {
		return nil, err
	}
	r, err := s.normalize(*res)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// SaveResource validates and stores a catalog resource, dropping cached rewards.
func (s *CatalogService) SaveResource(ctx context.Context, res models.RewardResource) error {
	if res.ID == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if res.Quantity != nil && *res.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if _, err := s.normalizer.FromResource(res); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.repo.UpsertResource(ctx, res); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate()
	}
	s.logger.WithField("rewardId", res.ID).Info("reward resource saved")
	return nil
}

func (s *CatalogService) loadRewards(ctx context.Context) ([]models.Reward, error) {
	var generation uint64
	if s.cache != nil {
		if cached, ok := s.cache.Get(); ok {
			return cached, nil
		}
		generation = s.cache.Generation()
	}
	resources, err := s.repo.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	rewards := make([]models.Reward, 0, len(resources))
	for _, res := range resources {
		r, err := s.normalize(res)
		if err != nil {
			s.logger.WithError(err).WithField("rewardId", res.ID).Error("skipping reward that failed to normalize")
			continue
		}
		rewards = append(rewards, r)
	}
	if s.cache != nil {
		if !s.cache.Set(generation, rewards) {
			s.logger.Debug("catalog changed while loading, result not cached")
		}
	}
	return rewards, nil
}

func (s *CatalogService) normalize(res models.RewardResource) (models.Reward, error) {
	r, err := s.normalizer.FromResource(res)
	if err != nil {
		return models.Reward{}, err
	}
	if len(r.InvalidDates) > 0 {
		s.logger.WithFields(logrus.Fields{
			"rewardId": r.ID,
			"fields":   r.InvalidDates,
		}).Warn("unparseable reward dates treated as absent")
	}
	return r, nil
}

func matchesCategory(r models.Reward, wanted *reward.CategorySet) bool {
	for _, tag := range r.Tags {
		if wanted.Contains(tag) {
			return true
		}
	}
	return false
}
