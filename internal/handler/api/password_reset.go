package api

import (
	"net/http"

	"dryclean-api/internal/domain/customer"
	reqdto "dryclean-api/internal/handler/dto/request"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const msgResetCodeSent = "Şifre sıfırlama kodu e-posta adresinize gönderildi"

type PasswordResetHandler struct {
	cmds commands.PasswordResetCommands
}

func NewPasswordResetHandler(cmds commands.PasswordResetCommands) *PasswordResetHandler {
	return &PasswordResetHandler{cmds: cmds}
}

// @Summary Request a reset code
// @Description Looks the account up by email or phone and mails a 6-digit code
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body reqdto.ResetCodeRequest true "Email or phone"
// @Success 200 {object} resdto.ResetCodeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/password-reset/request [post]
func (h *PasswordResetHandler) RequestCode(c *gin.Context) {
	var req reqdto.ResetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "E-posta adresi veya telefon numarası giriniz", nil)
		return
	}

	result, err := h.cmds.RequestCode(c.Request.Context(), req.Identifier)
	if err != nil {
		abortMapped(c, err,
			errorMapping{commands.ErrAccountNotFound, http.StatusNotFound, "Bu bilgilerle kayıtlı hesap bulunamadı"},
			errorMapping{commands.ErrNoEmailOnFile, http.StatusBadRequest, "Hesabınızda kayıtlı e-posta adresi bulunmuyor"},
			errorMapping{commands.ErrMailDelivery, http.StatusBadGateway, "Kod gönderilemedi, lütfen daha sonra tekrar deneyin"},
		)
		return
	}

	c.JSON(http.StatusOK, resdto.ResetCodeResponse{CustomerID: result.CustomerID, Message: msgResetCodeSent})
}

// @Summary Verify a reset code
// @Description Trades a valid code for a short-lived reset token. A code works once.
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body reqdto.ResetVerifyRequest true "Customer and code"
// @Success 200 {object} resdto.ResetVerifyResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/password-reset/verify [post]
func (h *PasswordResetHandler) VerifyCode(c *gin.Context) {
	var req reqdto.ResetVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.VerifyCode(c.Request.Context(), req.CustomerID, req.Code)
	if err != nil {
		abortMapped(c, err, errorMapping{commands.ErrInvalidResetCode, http.StatusBadRequest, "Kod hatalı veya süresi dolmuş"})
		return
	}

	c.JSON(http.StatusOK, resdto.ResetVerifyResponse{ResetToken: result.ResetToken})
}

// @Summary Set a new password
// @Tags password-reset
// @Accept json
// @Produce json
// @Param request body reqdto.ResetCompleteRequest true "Reset token and new password"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/password-reset/complete [post]
func (h *PasswordResetHandler) Complete(c *gin.Context) {
	var req reqdto.ResetCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	if err := h.cmds.ResetPassword(c.Request.Context(), req.ToCommand()); err != nil {
		abortMapped(c, err,
			errorMapping{commands.ErrInvalidResetToken, http.StatusBadRequest, "Sıfırlama isteği geçersiz veya süresi dolmuş"},
			errorMapping{commands.ErrPasswordMismatch, http.StatusBadRequest, "Şifreler eşleşmiyor"},
			errorMapping{customer.ErrPasswordTooWeak, http.StatusBadRequest, "Şifre çok kısa"},
			errorMapping{customer.ErrPasswordTooLong, http.StatusBadRequest, "Şifre çok uzun"},
			errorMapping{commands.ErrMissingFields, http.StatusBadRequest, "Lütfen tüm alanları doldurun"},
		)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Şifreniz güncellendi, giriş yapabilirsiniz"})
}
