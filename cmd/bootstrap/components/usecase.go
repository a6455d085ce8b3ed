package components

import (
	"feedbackpro/internal/infra/sms"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/usecase/commands"
	"feedbackpro/internal/usecase/queries"
	"feedbackpro/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystem,
	commands.NewRewardPolicy,
	func(cfg config.Config) shared.Links {
		return shared.NewLinks(cfg.App.BaseURL)
	},
	fx.Annotate(
		sms.NewSimulatedSender,
		fx.As(new(commands.SmsSender)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSurveyCommands,
		commands.NewInviteCommands,
		commands.NewFeedbackCommands,
		func(uow shared.UnitOfWork, clk clock.Clock, policy commands.RewardPolicy) commands.DiscountCommands {
			return commands.NewDiscountCommands(uow, clk, policy)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSurveyQueries,
		queries.NewFeedbackQueries,
		queries.NewDiscountQueries,
	),
)
