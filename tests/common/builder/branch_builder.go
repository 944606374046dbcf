//go:build unit || e2e

package builder

import (
	"time"

	"dryclean-api/internal/domain/branch"
	sqlc "dryclean-api/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type BranchBuilder struct {
	ID      int64
	Name    string
	City    string
	Address *string
	Phone   *string
	Active  bool
}

func NewBranchBuilder() *BranchBuilder {
	address := "Caferağa Mah. Moda Cad. No:12"
	phone := "0216 333 44 55"
	return &BranchBuilder{
		ID:      1,
		Name:    "Kadıköy",
		City:    "İstanbul",
		Address: &address,
		Phone:   &phone,
		Active:  true,
	}
}

func (b *BranchBuilder) With(mutate func(*BranchBuilder)) *BranchBuilder {
	mutate(b)
	return b
}

func (b *BranchBuilder) BuildDomain() (*branch.Branch, error) {
	return branch.NewBranch(b.Name, b.City, b.Address, b.Phone, b.Active)
}

// BuildStored returns the branch as loaded from the database.
func (b *BranchBuilder) BuildStored() *branch.Branch {
	return branch.ReconstructBranch(b.ID, b.Name, b.City, b.Address, b.Phone, b.Active)
}

func (b *BranchBuilder) BuildInfra() sqlc.Branches {
	row := sqlc.Branches{
		ID:        b.ID,
		Name:      b.Name,
		City:      b.City,
		Active:    b.Active,
		CreatedAt: pgtype.Timestamptz{Time: time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC), Valid: true},
	}
	if b.Address != nil {
		row.Address = pgtype.Text{String: *b.Address, Valid: true}
	}
	if b.Phone != nil {
		row.Phone = pgtype.Text{String: *b.Phone, Valid: true}
	}
	return row
}
