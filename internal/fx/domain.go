package fx

import (
	"FutureYako/config"
	"FutureYako/internal/domain/bill"
	"FutureYako/internal/domain/dashboard"
	"FutureYako/internal/domain/goal"
	"FutureYako/internal/domain/investment"
	"FutureYako/internal/domain/reset"
	"FutureYako/internal/domain/savings"
	"FutureYako/internal/domain/settings"
	"FutureYako/internal/domain/transaction"
	"FutureYako/internal/logger"

	"go.uber.org/fx"
)

// DomainModule provides the session state and the services working on it.
var DomainModule = fx.Module("domain",
	fx.Provide(
		// State
		goal.NewRegistry,
		newSettingsProvider,
		transaction.NewStore,
		investment.NewPortfolio,
		reset.NewBus,

		// Services
		savings.NewService,
		bill.NewService,
		investment.NewService,
		dashboard.NewRepository,
		dashboard.NewService,
	),
	fx.Invoke(
		registerResetSubscribers,
		logGoalChanges,
	),
)

func newSettingsProvider(cfg *config.Config) *settings.Provider {
	return settings.NewProvider(settings.DefaultsFromConfig(cfg.Deduction))
}

// registerResetSubscribers hooks every stateful component to the reset bus.
func registerResetSubscribers(
	bus *reset.Bus,
	registry *goal.Registry,
	settingsProvider *settings.Provider,
	transactions *transaction.Store,
	portfolio *investment.Portfolio,
) {
	bus.Subscribe("goals", registry.Reset)
	bus.Subscribe("settings", settingsProvider.ResetToDemo)
	bus.Subscribe("transactions", transactions.Clear)
	bus.Subscribe("portfolio", portfolio.Clear)
}

func logGoalChanges(registry *goal.Registry) {
	registry.Subscribe(func(goals []goal.Goal) {
		logger.Debug().
			Int("goals", len(goals)).
			Str("total_savings", goal.Total(goals).String()).
			Msg("goals changed")
	})
}
