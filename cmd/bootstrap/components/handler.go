package components

import (
	"dryclean-api/internal/handler"
	"dryclean-api/internal/handler/api"
	"dryclean-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPasswordResetHandler,
		api.NewOrderHandler,
		api.NewPriceHandler,
		api.NewBranchHandler,
		api.NewContactHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
