package fx

import "go.uber.org/fx"

// AppModule wires every module of the application.
var AppModule = fx.Options(
	ConfigModule,
	DomainModule,
	ScenarioModule,
)
