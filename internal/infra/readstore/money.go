package readstore

import (
	"log/slog"

	"dryclean-api/internal/domain/catalog"
	"dryclean-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// moneyFromNumeric reads a NUMERIC(10,2) column; unreadable values show as zero.
func moneyFromNumeric(n pgtype.Numeric, logger *slog.Logger) catalog.Money {
	amount, err := pgconv.NumericToDecimal(n)
	if err != nil {
		logger.Warn("unreadable numeric column", "error", err.Error())
		return catalog.Money{}
	}
	return catalog.FromDecimal(amount)
}
