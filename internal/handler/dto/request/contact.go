package request

import "dryclean-api/internal/usecase/commands"

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
}

func (r *ContactRequest) ToCommand() commands.ContactRequest {
	return commands.ContactRequest{Name: r.Name, Email: r.Email, Message: r.Message}
}
