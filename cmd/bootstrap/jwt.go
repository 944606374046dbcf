package bootstrap

import (
	"time"

	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt", fx.Provide(NewJWTService))

// NewJWTService fails startup on unparsable durations rather than falling back silently.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "JWT_DURATION")
	}
	reset, err := time.ParseDuration(cfg.JWT.ResetTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "JWT_RESET_TOKEN_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, access, reset), nil
}
