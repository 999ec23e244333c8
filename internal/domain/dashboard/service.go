package dashboard

import (
	"context"

	"FutureYako/internal/domain/goal"
	"FutureYako/internal/domain/settings"
	"FutureYako/internal/domain/transaction"
	appErrors "FutureYako/internal/errors"

	"github.com/shopspring/decimal"
)

const recentTransactionsLimit = 5

type Service struct {
	Repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	goals, err := s.Repository.GetGoals(ctx)
	if err != nil {
		return nil, appErrors.FromError(err)
	}

	recent, err := s.Repository.GetRecentTransactions(ctx, recentTransactionsLimit)
	if err != nil {
		return nil, appErrors.FromError(err)
	}

	invested, err := s.Repository.GetTotalInvested(ctx)
	if err != nil {
		return nil, appErrors.FromError(err)
	}

	current, err := s.Repository.GetSettings(ctx)
	if err != nil {
		return nil, appErrors.FromError(err)
	}

	summaries := make([]GoalSummary, 0, len(goals))
	completed := 0
	for _, g := range goals {
		progress := g.Progress()
		if progress.Status == goal.Completed {
			completed++
		}
		summaries = append(summaries, GoalSummary{
			Progress:        progress,
			Category:        g.Category,
			AllocationType:  g.AllocationType,
			AllocationValue: g.AllocationValue,
		})
	}

	return &Summary{
		TotalBalance:       goal.Total(goals),
		TotalInvested:      invested,
		Goals:              summaries,
		CompletedGoals:     completed,
		RecentTransactions: recent,
		CanPayBills:        current.CanPayBills(),
		Settings:           current,
	}, nil
}

type Summary struct {
	TotalBalance       decimal.Decimal           `json:"totalBalance"`
	TotalInvested      decimal.Decimal           `json:"totalInvested"`
	Goals              []GoalSummary             `json:"goals"`
	CompletedGoals     int                       `json:"completedGoals"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions"`
	CanPayBills        bool                      `json:"canPayBills"`
	Settings           settings.Settings         `json:"settings"`
}

type GoalSummary struct {
	goal.Progress
	Category        string              `json:"category"`
	AllocationType  goal.AllocationType `json:"allocationType"`
	AllocationValue decimal.Decimal     `json:"allocationValue"`
}
