package request

import (
	"dryclean-api/internal/usecase/commands"
)

type BranchRequest struct {
	Name    string  `json:"name" binding:"required"`
	City    string  `json:"city" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Active  *bool   `json:"active"`
}

// ToCommand treats a missing active flag as true.
func (r *BranchRequest) ToCommand() commands.BranchRequest {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return commands.BranchRequest{
		Name:    r.Name,
		City:    r.City,
		Address: r.Address,
		Phone:   r.Phone,
		Active:  active,
	}
}
