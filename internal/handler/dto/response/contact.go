package response

import (
	"time"

	"dryclean-api/internal/usecase/queries"
)

type ContactMessageResponse struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromContactMessages(views []*queries.ContactMessageView) ([]ContactMessageResponse, error) {
	out, err := copyView[[]ContactMessageResponse](views)
	if out == nil {
		out = []ContactMessageResponse{}
	}
	return out, err
}
