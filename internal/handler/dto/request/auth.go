package request

import "dryclean-api/internal/usecase/commands"

type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

type ChangePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required"`
	NewPasswordConfirm string `json:"newPasswordConfirm" binding:"required"`
}

func (r *ChangePasswordRequest) ToCommand() commands.ChangePasswordRequest {
	return commands.ChangePasswordRequest{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
		Confirm:         r.NewPasswordConfirm,
	}
}

type ResetCodeRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

type ResetVerifyRequest struct {
	CustomerID int64  `json:"customerId" binding:"required,gt=0"`
	Code       string `json:"code" binding:"required"`
}

type ResetCompleteRequest struct {
	ResetToken         string `json:"resetToken" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required"`
	NewPasswordConfirm string `json:"newPasswordConfirm" binding:"required"`
}

func (r *ResetCompleteRequest) ToCommand() commands.ResetPasswordRequest {
	return commands.ResetPasswordRequest{
		ResetToken:  r.ResetToken,
		NewPassword: r.NewPassword,
		Confirm:     r.NewPasswordConfirm,
	}
}
