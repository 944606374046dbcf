package api

import (
	"net/http"
	"time"

	"dryclean-api/internal/domain/customer"
	reqdto "dryclean-api/internal/handler/dto/request"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/handler/httperr"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/cookie"
	"dryclean-api/internal/pkg/jwt"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	registerErrors = []errorMapping{
		{commands.ErrMissingFields, http.StatusBadRequest, "Lütfen tüm alanları doldurun"},
		{commands.ErrPasswordMismatch, http.StatusBadRequest, "Şifreler eşleşmiyor"},
		{customer.ErrPasswordTooWeak, http.StatusBadRequest, "Şifre çok kısa"},
		{customer.ErrPasswordTooLong, http.StatusBadRequest, "Şifre çok uzun"},
		{customer.ErrInvalidEmail, http.StatusBadRequest, "Geçersiz e-posta adresi"},
		{customer.ErrInvalidPhone, http.StatusBadRequest, "Geçersiz telefon numarası"},
		{commands.ErrEmailTaken, http.StatusConflict, "Bu e-posta adresi zaten kayıtlı"},
		{commands.ErrPhoneTaken, http.StatusConflict, "Bu telefon numarası zaten kayıtlı"},
	}
	loginErrors = []errorMapping{
		{commands.ErrMissingFields, http.StatusBadRequest, "E-posta ve şifre zorunludur"},
		{commands.ErrInvalidCredentials, http.StatusUnauthorized, "E-posta veya şifre hatalı"},
		{commands.ErrAdminMustUseAdminLogin, http.StatusForbidden, "Yönetici hesapları için yönetici girişini kullanın"},
		{commands.ErrNotAdmin, http.StatusForbidden, "Bu hesap yönetici değil"},
	}
	changePasswordErrors = []errorMapping{
		{commands.ErrCurrentPasswordWrong, http.StatusBadRequest, "Mevcut şifreniz hatalı"},
		{commands.ErrPasswordMismatch, http.StatusBadRequest, "Şifreler eşleşmiyor"},
		{customer.ErrPasswordTooWeak, http.StatusBadRequest, "Şifre çok kısa"},
		{customer.ErrPasswordTooLong, http.StatusBadRequest, "Şifre çok uzun"},
		{commands.ErrCustomerNotFound, http.StatusNotFound, "Müşteri bulunamadı"},
	}
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	customers queries.CustomerQueries
	cookieCfg config.CookieConfig
	tokenTTL  time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, customers queries.CustomerQueries, cfg config.Config, tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		customers: customers,
		cookieCfg: cfg.Cookie,
		tokenTTL:  tokens.AccessDuration(),
	}
}

// @Summary Customer registration
// @Description Create a customer account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration form"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortMapped(c, err, registerErrors...)
		return
	}

	h.startSession(c, http.StatusCreated, result)
}

// @Summary Customer login
// @Description Login with email and password. Administrator accounts are rejected here.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortMapped(c, err, loginErrors...)
		return
	}

	h.startSession(c, http.StatusOK, result)
}

// @Summary Administrator login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.AdminLogin(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortMapped(c, err, loginErrors...)
		return
	}

	h.startSession(c, http.StatusOK, result)
}

// @Summary Logout
// @Description Clears the session cookie. Bearer tokens are dropped client-side.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Current customer
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	view, err := h.customers.GetCurrentCustomer(c.Request.Context(), customerID)
	if err != nil {
		abortMapped(c, err, errorMapping{queries.ErrCustomerNotFound, http.StatusNotFound, "Müşteri bulunamadı"})
		return
	}

	res, err := resdto.FromCustomerView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Change password
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.ChangePasswordRequest true "Password change"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	var req reqdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.MsgInvalidRequest, nil)
		return
	}

	if err := h.cmds.ChangePassword(c.Request.Context(), customerID, req.ToCommand()); err != nil {
		abortMapped(c, err, changePasswordErrors...)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, result *commands.AuthResult) {
	cookie.SetAccessTokenCookie(c, h.cookieCfg, result.AccessToken, h.tokenTTL)
	c.JSON(status, resdto.FromAuthResult(result))
}
