package components

import (
	"log/slog"

	"dryclean-api/internal/domain/order"
	"dryclean-api/internal/domain/resetcode"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/jwt"
	"dryclean-api/internal/pkg/metrics"
	"dryclean-api/internal/usecase"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"
	"dryclean-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		order.NewDefaultPriceCalculator,
		fx.As(new(order.PriceCalculator)),
	),
	fx.Annotate(
		resetcode.NewCryptoGenerator,
		fx.As(new(resetcode.Generator)),
	),
	func(s *jwt.Service) commands.TokenIssuer { return s },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newAuthCommands,
		newResetCodeService,
		newPasswordResetCommands,
		commands.NewOrderCommands,
		commands.NewPriceCommands,
		commands.NewBranchCommands,
		commands.NewContactCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCustomerQueries,
		queries.NewBranchQueries,
		queries.NewContactQueries,
		newOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newAuthCommands(uow shared.UnitOfWork, tokens commands.TokenIssuer, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.AuthCommands {
	return commands.NewAuthCommands(uow, tokens, clk, cfg.Admin.Email, cfg.Auth.MinPasswordLength, logger)
}

func newResetCodeService(uow shared.UnitOfWork, gen resetcode.Generator, clk clock.Clock, cfg config.Config, m *metrics.Metrics) commands.ResetCodeService {
	return commands.NewResetCodeService(uow, gen, clk, cfg.Auth.ResetCodeTTL, m)
}

func newPasswordResetCommands(
	uow shared.UnitOfWork,
	codes commands.ResetCodeService,
	mailer shared.Mailer,
	tokens commands.TokenIssuer,
	cfg config.Config,
	logger *slog.Logger,
) commands.PasswordResetCommands {
	return commands.NewPasswordResetCommands(uow, codes, mailer, tokens, cfg.Auth.ResetCodeTTL, cfg.Auth.MinPasswordLength, logger)
}

func newOrderQueries(uow shared.UnitOfWork, store queries.OrderReadStore, cfg config.Config, logger *slog.Logger) queries.OrderQueries {
	return queries.NewOrderQueries(uow, store, cfg.Orders.PerPage, logger)
}
