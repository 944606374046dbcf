package response

import (
	"time"

	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"
)

type CustomerResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	CustomerID  int64  `json:"customerId"`
	FullName    string `json:"fullName"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

type ResetCodeResponse struct {
	CustomerID int64  `json:"customerId"`
	Message    string `json:"message"`
}

type ResetVerifyResponse struct {
	ResetToken string `json:"resetToken"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		CustomerID:  r.CustomerID,
		FullName:    r.FullName,
		Role:        r.Role.String(),
		AccessToken: r.AccessToken,
	}
}

func FromCustomerView(v *queries.CustomerView) (*CustomerResponse, error) {
	out, err := copyView[CustomerResponse](v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func FromCustomerViews(views []*queries.CustomerView) ([]CustomerResponse, error) {
	out, err := copyView[[]CustomerResponse](views)
	if out == nil {
		out = []CustomerResponse{}
	}
	return out, err
}
