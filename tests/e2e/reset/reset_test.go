//go:build e2e

package reset_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/domain/resetcode"
	"dryclean-api/internal/handler/dto/request"
	"dryclean-api/internal/handler/dto/response"
	sqlc "dryclean-api/internal/infra/sqlc/generated"
	"dryclean-api/internal/infra/uow"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/tests/common/authtest"
	"dryclean-api/tests/common/dbtest"
	"dryclean-api/tests/common/httptest"
	"dryclean-api/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	requestURL  = "/api/auth/password-reset/request"
	verifyURL   = "/api/auth/password-reset/verify"
	completeURL = "/api/auth/password-reset/complete"
)

type resetSuite struct {
	e2e.SharedSuite
	customerID int64
}

func TestResetSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(resetSuite))
}

func (s *resetSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.customerID = dbtest.CreateTestCustomer(s.T(), s.DB, "ayse@example.com", "05551112233", string(customer.RoleCustomer))
}

func (s *resetSuite) requestCode(identifier string) response.ResetCodeResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL, request.ResetCodeRequest{Identifier: identifier}, "")
	var res response.ResetCodeResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

func (s *resetSuite) TestFullFlow() {
	identifiers := []struct {
		name       string
		identifier string
	}{
		{"by email", "ayse@example.com"},
		{"by formatted phone", "0555 111 22 33"},
	}

	for _, tt := range identifiers {
		s.Run(tt.name, func() {
			t := s.T()

			res := s.requestCode(tt.identifier)
			require.Equal(t, s.customerID, res.CustomerID)

			code := dbtest.LatestResetCode(t, s.DB, s.customerID)
			require.Len(t, code, 6)

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
				request.ResetVerifyRequest{CustomerID: s.customerID, Code: code}, "")
			var verified response.ResetVerifyResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &verified)
			require.NotEmpty(t, verified.ResetToken)

			again := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
				request.ResetVerifyRequest{CustomerID: s.customerID, Code: code}, "")
			httptest.AssertErrorResponse(t, again, http.StatusBadRequest, "Kod hatalı")

			w = httptest.PerformRequest(t, s.Router, http.MethodPost, completeURL, request.ResetCompleteRequest{
				ResetToken:         verified.ResetToken,
				NewPassword:        "yenisifre99",
				NewPasswordConfirm: "yenisifre99",
			}, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			authtest.LoginCustomer(t, s.Router, "ayse@example.com", "yenisifre99")
		})
	}
}

func (s *resetSuite) TestRequestErrors() {
	s.Run("unknown account", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, requestURL,
			request.ResetCodeRequest{Identifier: "kimse@example.com"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "hesap bulunamadı")
	})

	s.Run("account without an email", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(),
			"INSERT INTO customers (full_name, phone, password_hash) VALUES ('Eski Müşteri', '05559990000', 'x')")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestURL,
			request.ResetCodeRequest{Identifier: "05559990000"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "e-posta adresi bulunmuyor")
	})
}

func (s *resetSuite) TestVerifyAndComplete() {
	s.Run("wrong code", func() {
		t := s.T()
		s.requestCode("ayse@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.ResetVerifyRequest{CustomerID: s.customerID, Code: "000000x"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Kod hatalı")
	})

	s.Run("earlier unused codes stay valid until they expire", func() {
		t := s.T()
		s.requestCode("ayse@example.com")
		first := dbtest.LatestResetCode(t, s.DB, s.customerID)
		s.requestCode("ayse@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.ResetVerifyRequest{CustomerID: s.customerID, Code: first}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var unused int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM reset_codes WHERE customer_id = $1 AND used = false", s.customerID).Scan(&unused)
		require.NoError(t, err)
		require.Equal(t, 1, unused)
	})

	s.Run("session token is not a reset token", func() {
		t := s.T()
		token := authtest.LoginCustomer(t, s.Router, "ayse@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, completeURL, request.ResetCompleteRequest{
			ResetToken:         token,
			NewPassword:        "yenisifre99",
			NewPasswordConfirm: "yenisifre99",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "geçersiz")
	})

	s.Run("mismatched passwords", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateResetToken(t, s.customerID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, completeURL, request.ResetCompleteRequest{
			ResetToken:         token,
			NewPassword:        "yenisifre99",
			NewPasswordConfirm: "yenisifre98",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "eşleşmiyor")
	})
}

// codeServiceAt runs the code lifecycle against the suite database as seen at now.
func (s *resetSuite) codeServiceAt(now time.Time) commands.ResetCodeService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	u := uow.NewPostgresUoW(s.DB, sqlc.New(), s.Config, logger)
	return commands.NewResetCodeService(u, resetcode.NewCryptoGenerator(), clock.NewMockClock(now), s.Config.Auth.ResetCodeTTL, nil)
}

func (s *resetSuite) unusedCodes() int {
	var n int
	err := s.DB.QueryRow(s.T().Context(),
		"SELECT count(*) FROM reset_codes WHERE customer_id = $1 AND used = false", s.customerID).Scan(&n)
	require.NoError(s.T(), err)
	return n
}

func (s *resetSuite) TestCodeExpiry() {
	ttl := s.Config.Auth.ResetCodeTTL

	s.Run("expired code never verifies", func() {
		t := s.T()
		ctx := context.Background()
		issuedAt := time.Now().Truncate(time.Second)

		code, err := s.codeServiceAt(issuedAt).Issue(ctx, s.customerID)
		require.NoError(t, err)

		for _, later := range []time.Duration{ttl, ttl + time.Second, 24 * time.Hour} {
			ok, err := s.codeServiceAt(issuedAt.Add(later)).VerifyAndConsume(ctx, s.customerID, code)
			require.NoError(t, err)
			assert.False(t, ok, "verified %s after issue", later)
		}
		assert.Equal(t, 1, s.unusedCodes())

		ok, err := s.codeServiceAt(issuedAt.Add(ttl-time.Second)).VerifyAndConsume(ctx, s.customerID, code)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	s.Run("consumed code never verifies again", func() {
		t := s.T()
		ctx := context.Background()
		now := time.Now().Truncate(time.Second)
		svc := s.codeServiceAt(now)

		code, err := svc.Issue(ctx, s.customerID)
		require.NoError(t, err)

		ok, err := svc.VerifyAndConsume(ctx, s.customerID, code)
		require.NoError(t, err)
		require.True(t, ok)

		for range 2 {
			ok, err = svc.VerifyAndConsume(ctx, s.customerID, code)
			require.NoError(t, err)
			assert.False(t, ok)
		}
		assert.Equal(t, 0, s.unusedCodes())
	})

	s.Run("expired row is refused over http", func() {
		t := s.T()
		_, err := s.DB.Exec(t.Context(),
			`INSERT INTO reset_codes (customer_id, code, expires_at, used, created_at)
			 VALUES ($1, '482913', now() - interval '1 minute', false, now() - interval '16 minutes')`,
			s.customerID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, verifyURL,
			request.ResetVerifyRequest{CustomerID: s.customerID, Code: "482913"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Kod hatalı")
		assert.Equal(t, 1, s.unusedCodes())
	})
}
