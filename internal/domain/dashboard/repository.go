package dashboard

import (
	"context"

	"FutureYako/internal/domain/goal"
	"FutureYako/internal/domain/investment"
	"FutureYako/internal/domain/settings"
	"FutureYako/internal/domain/transaction"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetGoals(ctx context.Context) ([]goal.Goal, error)
	GetRecentTransactions(ctx context.Context, limit int) ([]transaction.Transaction, error)
	GetTotalInvested(ctx context.Context) (decimal.Decimal, error)
	GetSettings(ctx context.Context) (settings.Settings, error)
}

type stateRepository struct {
	registry     *goal.Registry
	settings     *settings.Provider
	transactions *transaction.Store
	portfolio    *investment.Portfolio
}

// NewRepository reads the dashboard figures from the in-memory session state.
func NewRepository(registry *goal.Registry, settingsProvider *settings.Provider, transactions *transaction.Store, portfolio *investment.Portfolio) Repository {
	return &stateRepository{
		registry:     registry,
		settings:     settingsProvider,
		transactions: transactions,
		portfolio:    portfolio,
	}
}

func (r *stateRepository) GetGoals(ctx context.Context) ([]goal.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.registry.Goals(), nil
}

func (r *stateRepository) GetRecentTransactions(ctx context.Context, limit int) ([]transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.transactions.Recent(limit), nil
}

func (r *stateRepository) GetTotalInvested(ctx context.Context) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return r.portfolio.TotalInvested(), nil
}

func (r *stateRepository) GetSettings(ctx context.Context) (settings.Settings, error) {
	if err := ctx.Err(); err != nil {
		return settings.Settings{}, err
	}
	return r.settings.Get(), nil
}
