package bootstrap

import (
	"feedbackpro/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the whole application graph minus the HTTP server, which main and
// the e2e harness start in their own way.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
