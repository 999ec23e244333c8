package fx

import (
	"FutureYako/internal/scenario"

	"go.uber.org/fx"
)

var ScenarioModule = fx.Module("scenario",
	fx.Provide(
		scenario.NewRunner,
	),
)
