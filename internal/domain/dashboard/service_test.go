package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"FutureYako/internal/domain/dashboard"
	"FutureYako/internal/domain/goal"
	"FutureYako/internal/domain/investment"
	"FutureYako/internal/domain/settings"
	"FutureYako/internal/domain/transaction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceSummary(t *testing.T) {
	t.Parallel()

	registry := goal.NewRegistry()
	provider := settings.NewProvider(settings.DemoDefaults())
	store := transaction.NewStore()
	portfolio := investment.NewPortfolio()

	_, err := registry.Create(goal.CreateRequest{
		Name:            "Phone",
		TargetAmount:    decimal.NewFromInt(1000),
		AllocationType:  goal.AllocationPercentage,
		AllocationValue: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	_, err = registry.Create(goal.CreateRequest{
		Name:            "Fees",
		TargetAmount:    decimal.NewFromInt(200),
		AllocationType:  goal.AllocationPercentage,
		AllocationValue: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	registry.Distribute(decimal.NewFromInt(600))

	for i := 0; i < 7; i++ {
		store.Record(transaction.Deposit, transaction.CategorySavings, decimal.NewFromInt(10), "deposit", nil)
	}
	crdb, err := investment.FindAsset("crdb")
	require.NoError(t, err)
	portfolio.Add(crdb, decimal.NewFromInt(50000))

	svc := dashboard.NewService(dashboard.NewRepository(registry, provider, store, portfolio))
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(600).Equal(summary.TotalBalance))
	assert.True(t, decimal.NewFromInt(50000).Equal(summary.TotalInvested))
	assert.Len(t, summary.RecentTransactions, 5)
	assert.False(t, summary.CanPayBills)
	assert.Equal(t, provider.Get(), summary.Settings)

	require.Len(t, summary.Goals, 2)
	assert.Equal(t, "Phone", summary.Goals[0].Name)
	assert.True(t, decimal.NewFromInt(30).Equal(summary.Goals[0].Percentage))
	assert.True(t, decimal.NewFromInt(700).Equal(summary.Goals[0].Remaining))
	assert.True(t, decimal.NewFromInt(100).Equal(summary.Goals[1].Percentage))
	assert.True(t, summary.Goals[1].Remaining.IsZero())
	assert.Equal(t, goal.Completed, summary.Goals[1].Status)
	assert.Equal(t, 1, summary.CompletedGoals)
}

func TestServiceSummaryEmptyState(t *testing.T) {
	t.Parallel()

	svc := dashboard.NewService(dashboard.NewRepository(
		goal.NewRegistry(),
		settings.NewProvider(settings.DemoDefaults()),
		transaction.NewStore(),
		investment.NewPortfolio(),
	))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.True(t, summary.TotalBalance.IsZero())
	assert.Empty(t, summary.Goals)
	assert.Empty(t, summary.RecentTransactions)
}

func TestServiceSummaryCanceled(t *testing.T) {
	t.Parallel()

	svc := dashboard.NewService(dashboard.NewRepository(
		goal.NewRegistry(),
		settings.NewProvider(settings.DemoDefaults()),
		transaction.NewStore(),
		investment.NewPortfolio(),
	))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Summary(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
