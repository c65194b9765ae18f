package service

import (
	"context"
	"fmt"
	"time"

	"github.com/GooferByte/rewardcatalog/internal/earnings"
	"github.com/GooferByte/rewardcatalog/internal/models"
	"github.com/GooferByte/rewardcatalog/internal/repository"
	"github.com/sirupsen/logrus"
)

// EarningsService exposes the earnings dashboard for a user.
type EarningsService struct {
	repo   repository.BalanceRepository
	now    func() time.Time
	logger *logrus.Entry
}

func NewEarningsService(repo repository.BalanceRepository, logger *logrus.Logger) *EarningsService {
	return &EarningsService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.WithField("component", "earnings-service"),
	}
}

func (s *EarningsService) Summary(ctx context.Context, userID string) (*earnings.Summary, error) {
	bal, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := earnings.Summarize(*bal)
	return &summary, nil
}

func (s *EarningsService) SaveBalance(ctx context.Context, bal models.EarningBalance) error {
	if bal.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}
	if bal.TotalXP != nil && *bal.TotalXP < 0 {
		return fmt.Errorf("%w: totalXp must not be negative", ErrValidation)
	}
	if bal.Bonus != nil && bal.Bonus.Multiplier <= 0 {
		return fmt.Errorf("%w: bonus multiplier must be positive", ErrValidation)
	}
	bal.UpdatedAt = s.now()
	if err := s.repo.SaveBalance(ctx, bal); err != nil {
		return err
	}
	s.logger.WithField("userId", bal.UserID).Debug("earning balance saved")
	return nil
}
