package response

import (
	"time"

	"dryclean-api/internal/usecase/queries"
)

type BranchResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

func FromBranchViews(views []*queries.BranchView) ([]BranchResponse, error) {
	out, err := copyView[[]BranchResponse](views)
	if out == nil {
		out = []BranchResponse{}
	}
	return out, err
}

func FromBranchView(v *queries.BranchView) (*BranchResponse, error) {
	out, err := copyView[BranchResponse](v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
