package cmd

import (
	"FutureYako/config"
	"FutureYako/internal/domain/dashboard"
	"FutureYako/internal/domain/savings"
	appfx "FutureYako/internal/fx"
	"FutureYako/internal/scenario"

	"go.uber.org/fx"
)

type app struct {
	Config    *config.Config
	Runner    *scenario.Runner
	Savings   *savings.Service
	Dashboard *dashboard.Service
}

// newApp builds a fresh session. Nothing outlives the command.
func newApp() (*app, error) {
	a := &app{}
	fxApp := fx.New(
		appfx.AppModule,
		fx.NopLogger,
		fx.Populate(&a.Config, &a.Runner, &a.Savings, &a.Dashboard),
	)
	if err := fxApp.Err(); err != nil {
		return nil, err
	}
	return a, nil
}
