//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/handler/api"
	resdto "dryclean-api/internal/handler/dto/response"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/internal/pkg/cookie"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/pkg/jwt"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/queries"
	"dryclean-api/tests/common/builder"
	"dryclean-api/tests/common/httptest"
	"dryclean-api/tests/common/testutil"
	commandsmock "dryclean-api/tests/mock/commands"
	queriesmock "dryclean-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockAuth      *commandsmock.MockAuthCommands
	mockReset     *commandsmock.MockPasswordResetCommands
	mockCustomers *queriesmock.MockCustomerQueries
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockReset = commandsmock.NewMockPasswordResetCommands(s.mockCtrl)
	s.mockCustomers = queriesmock.NewMockCustomerQueries(s.mockCtrl)

	cfg := config.NewTestConfig()
	tokens := jwt.NewService(cfg.JWT.Secret, time.Hour, 15*time.Minute)
	auth := api.NewAuthHandler(s.mockAuth, s.mockCustomers, cfg, tokens)
	reset := api.NewPasswordResetHandler(s.mockReset)

	authed := fakeAuth(customer.RoleCustomer)
	s.router.POST("/auth/register", auth.Register)
	s.router.POST("/auth/login", auth.Login)
	s.router.POST("/admin/login", auth.AdminLogin)
	s.router.POST("/auth/logout", authed, auth.Logout)
	s.router.GET("/auth/me", authed, auth.Me)
	s.router.PUT("/auth/password", authed, auth.ChangePassword)
	s.router.POST("/auth/password-reset/request", reset.RequestCode)
	s.router.POST("/auth/password-reset/verify", reset.VerifyCode)
	s.router.POST("/auth/password-reset/complete", reset.Complete)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func registerBody() map[string]any {
	c := builder.NewCustomerBuilder()
	return map[string]any{
		"firstName":       c.FirstName,
		"lastName":        c.LastName,
		"email":           c.Email,
		"phone":           c.Phone,
		"password":        c.Password,
		"passwordConfirm": c.Password,
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	result := &commands.AuthResult{CustomerID: 1, FullName: "Ayşe Yılmaz", Role: customer.RoleCustomer, AccessToken: "access-token"}

	s.Run("success: returns 201 and sets the session cookie", func() {
		s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.RegisterRequest) (*commands.AuthResult, error) {
				s.Equal("ayse@example.com", req.Email)
				s.Equal(req.Password, req.PasswordConfirm)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, registerBody(), "")

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("access-token", body.AccessToken)
		s.Equal("musteri", body.Role)

		ck := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(ck)
		s.Equal("access-token", ck.Value)
		s.True(ck.HttpOnly)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			mutate         func(map[string]any)
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"missing fields", testutil.Field("phone", ""), commands.ErrMissingFields, http.StatusBadRequest, "tüm alanları"},
			{"confirmation differs", testutil.Field("passwordConfirm", "baska"), commands.ErrPasswordMismatch, http.StatusBadRequest, "eşleşmiyor"},
			{"short password", testutil.Field("password", "kisa"), errs.Mark(customer.ErrPasswordTooWeak, errs.ErrDomainValidation), http.StatusBadRequest, "kısa"},
			{"email taken", nil, commands.ErrEmailTaken, http.StatusConflict, "e-posta"},
			{"phone taken", nil, commands.ErrPhoneTaken, http.StatusConflict, "telefon"},
			{"database failure", nil, errors.New("database error"), http.StatusInternalServerError, "Sunucu hatası"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := registerBody()
				if tc.mutate != nil {
					tc.mutate(body)
				}
				s.mockAuth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	body := map[string]string{"email": "ayse@example.com", "password": "sifre1234"}

	s.Run("success: customer login", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), commands.LoginRequest{Email: "ayse@example.com", Password: "sifre1234"}).
			Return(&commands.AuthResult{CustomerID: 1, Role: customer.RoleCustomer, AccessToken: "t"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when the password is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", map[string]string{"email": "a@b.co"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: admins are sent to admin login", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrAdminMustUseAdminLogin).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "yönetici girişini")
	})

	s.Run("error: wrong credentials", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "hatalı")
	})

	s.Run("error: admin login with a customer account", func() {
		s.mockAuth.EXPECT().AdminLogin(gomock.Any(), gomock.Any()).Return(nil, commands.ErrNotAdmin).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/login", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "yönetici değil")
	})
}

func (s *AuthHandlerTestSuite) TestMeAndLogout() {
	s.Run("success: returns the current customer", func() {
		s.mockCustomers.EXPECT().GetCurrentCustomer(gomock.Any(), testCustomerID).
			Return(&queries.CustomerView{ID: testCustomerID, FullName: "Ayşe Yılmaz", Role: "musteri"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var body resdto.CustomerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(testCustomerID, body.ID)
	})

	s.Run("error: 404 when the account is gone", func() {
		s.mockCustomers.EXPECT().GetCurrentCustomer(gomock.Any(), testCustomerID).
			Return(nil, queries.ErrCustomerNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Müşteri bulunamadı")
	})

	s.Run("success: logout expires the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		ck := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(ck)
		s.Empty(ck.Value)
		s.Negative(ck.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestChangePassword() {
	body := map[string]string{"currentPassword": "eski12345", "newPassword": "yeni12345", "newPasswordConfirm": "yeni12345"}

	s.Run("success: 204", func() {
		s.mockAuth.EXPECT().ChangePassword(gomock.Any(), testCustomerID, commands.ChangePasswordRequest{
			CurrentPassword: "eski12345", NewPassword: "yeni12345", Confirm: "yeni12345",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/auth/password", body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: wrong current password", func() {
		s.mockAuth.EXPECT().ChangePassword(gomock.Any(), testCustomerID, gomock.Any()).
			Return(commands.ErrCurrentPasswordWrong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/auth/password", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Mevcut şifreniz")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/auth/password", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *AuthHandlerTestSuite) TestPasswordReset() {
	s.Run("request: returns the customer id", func() {
		s.mockReset.EXPECT().RequestCode(gomock.Any(), "ayse@example.com").
			Return(&commands.ResetRequestResult{CustomerID: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/request",
			map[string]string{"identifier": "ayse@example.com"}, "")

		var body resdto.ResetCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(1), body.CustomerID)
	})

	s.Run("request: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{"unknown account", commands.ErrAccountNotFound, http.StatusNotFound},
			{"no email", commands.ErrNoEmailOnFile, http.StatusBadRequest},
			{"smtp failure", errs.Mark(errors.New("dial tcp"), commands.ErrMailDelivery), http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockReset.EXPECT().RequestCode(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/request",
					map[string]string{"identifier": "05551112233"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("verify: returns a reset token", func() {
		s.mockReset.EXPECT().VerifyCode(gomock.Any(), int64(1), "123456").
			Return(&commands.ResetVerifyResult{ResetToken: "reset-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/verify",
			map[string]any{"customerId": 1, "code": "123456"}, "")

		var body resdto.ResetVerifyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("reset-token", body.ResetToken)
	})

	s.Run("verify: wrong code", func() {
		s.mockReset.EXPECT().VerifyCode(gomock.Any(), int64(1), "000000").
			Return(nil, commands.ErrInvalidResetCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/verify",
			map[string]any{"customerId": 1, "code": "000000"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Kod hatalı")
	})

	s.Run("complete: expired token", func() {
		s.mockReset.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).
			Return(errs.Mark(jwt.ErrExpiredToken, commands.ErrInvalidResetToken)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/complete",
			map[string]string{"resetToken": "x", "newPassword": "yeni12345", "newPasswordConfirm": "yeni12345"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "geçersiz")
	})

	s.Run("complete: success", func() {
		s.mockReset.EXPECT().ResetPassword(gomock.Any(), commands.ResetPasswordRequest{
			ResetToken: "x", NewPassword: "yeni12345", Confirm: "yeni12345",
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/complete",
			map[string]string{"resetToken": "x", "newPassword": "yeni12345", "newPasswordConfirm": "yeni12345"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
