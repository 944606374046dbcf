//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dryclean-api/internal/domain/resetcode"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/pkg/jwt"
	"dryclean-api/internal/pkg/metrics"
	"dryclean-api/internal/pkg/password"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/shared"
	"dryclean-api/tests/common/builder"
	commandsmock "dryclean-api/tests/mock/commands"
	resetcodemock "dryclean-api/tests/mock/resetcode"
	sharedmock "dryclean-api/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PasswordResetTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	h      *txHarness
	codes  *commandsmock.MockResetCodeService
	mailer *sharedmock.MockMailer
	tokens *commandsmock.MockTokenIssuer
	uc     commands.PasswordResetCommands
}

func TestPasswordResetSuite(t *testing.T) {
	suite.Run(t, new(PasswordResetTestSuite))
}

func (s *PasswordResetTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.codes = commandsmock.NewMockResetCodeService(s.ctrl)
	s.mailer = sharedmock.NewMockMailer(s.ctrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.uc = commands.NewPasswordResetCommands(s.h.uow, s.codes, s.mailer, s.tokens, 10*time.Minute, 8, discardLogger(s.T()))
}

func (s *PasswordResetTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PasswordResetTestSuite) TestRequestCode() {
	snap := builder.NewCustomerBuilder().BuildSnapshot()

	s.Run("by phone mails the code to the address on file", func() {
		s.h.reads.EXPECT().CustomerByPhone(gomock.Any(), "05551112233").Return(snap, nil)
		s.codes.EXPECT().Issue(gomock.Any(), snap.ID).Return("482913", nil)
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg shared.MailMessage) error {
				s.Equal("ayse@example.com", msg.To)
				s.Contains(msg.Body, "482913")
				s.Contains(msg.Body, "10 dakika")
				return nil
			})

		res, err := s.uc.RequestCode(context.Background(), "0555 111 22 33")

		s.Require().NoError(err)
		s.Equal(snap.ID, res.CustomerID)
	})

	s.Run("by email", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), "ayse@example.com").Return(snap, nil)
		s.codes.EXPECT().Issue(gomock.Any(), snap.ID).Return("111111", nil)
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.uc.RequestCode(context.Background(), " ayse@example.com ")
		s.NoError(err)
	})

	s.Run("unknown account", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), gomock.Any()).Return(nil, errNotFound)

		_, err := s.uc.RequestCode(context.Background(), "kimse@example.com")
		s.ErrorIs(err, commands.ErrAccountNotFound)
	})

	s.Run("no email on file", func() {
		noEmail := builder.NewCustomerBuilder().BuildSnapshot()
		noEmail.Email = nil
		s.h.reads.EXPECT().CustomerByPhone(gomock.Any(), gomock.Any()).Return(noEmail, nil)

		_, err := s.uc.RequestCode(context.Background(), "05551112233")
		s.ErrorIs(err, commands.ErrNoEmailOnFile)
	})

	s.Run("mail failure", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), gomock.Any()).Return(snap, nil)
		s.codes.EXPECT().Issue(gomock.Any(), snap.ID).Return("111111", nil)
		s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(assert.AnError)

		_, err := s.uc.RequestCode(context.Background(), "ayse@example.com")
		s.True(errs.Is(err, commands.ErrMailDelivery))
	})

	s.Run("blank identifier", func() {
		_, err := s.uc.RequestCode(context.Background(), "   ")
		s.ErrorIs(err, commands.ErrMissingFields)
	})
}

func (s *PasswordResetTestSuite) TestVerifyCode() {
	s.Run("valid code yields a reset token", func() {
		s.codes.EXPECT().VerifyAndConsume(gomock.Any(), int64(4), "123456").Return(true, nil)
		s.tokens.EXPECT().GenerateResetToken(int64(4)).Return("reset-tok", nil)

		res, err := s.uc.VerifyCode(context.Background(), 4, "123456")

		s.Require().NoError(err)
		s.Equal("reset-tok", res.ResetToken)
	})

	s.Run("rejected code", func() {
		s.codes.EXPECT().VerifyAndConsume(gomock.Any(), int64(4), "123456").Return(false, nil)

		_, err := s.uc.VerifyCode(context.Background(), 4, "123456")
		s.ErrorIs(err, commands.ErrInvalidResetCode)
	})

	s.Run("missing customer", func() {
		_, err := s.uc.VerifyCode(context.Background(), 0, "123456")
		s.ErrorIs(err, commands.ErrMissingFields)
	})
}

func (s *PasswordResetTestSuite) TestResetPassword() {
	req := commands.ResetPasswordRequest{ResetToken: "reset-tok", NewPassword: "yenisifre1", Confirm: "yenisifre1"}

	s.Run("stores the new hash", func() {
		s.tokens.EXPECT().ValidateResetToken("reset-tok").Return(&jwt.Claims{CustomerID: 4}, nil)
		s.h.customers.EXPECT().UpdatePasswordHash(gomock.Any(), gomock.Any(), int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ int64, hash string) error {
				s.NoError(password.ComparePassword(hash, "yenisifre1"))
				return nil
			})

		s.NoError(s.uc.ResetPassword(context.Background(), req))
	})

	s.Run("invalid token", func() {
		s.tokens.EXPECT().ValidateResetToken("reset-tok").Return(nil, jwt.ErrInvalidToken)

		err := s.uc.ResetPassword(context.Background(), req)
		s.True(errs.Is(err, commands.ErrInvalidResetToken))
	})

	s.Run("confirmation differs", func() {
		s.tokens.EXPECT().ValidateResetToken("reset-tok").Return(&jwt.Claims{CustomerID: 4}, nil)
		bad := req
		bad.Confirm = "yenisifre2"

		s.ErrorIs(s.uc.ResetPassword(context.Background(), bad), commands.ErrPasswordMismatch)
	})

	s.Run("customer deleted meanwhile", func() {
		s.tokens.EXPECT().ValidateResetToken("reset-tok").Return(&jwt.Claims{CustomerID: 4}, nil)
		s.h.customers.EXPECT().UpdatePasswordHash(gomock.Any(), gomock.Any(), int64(4), gomock.Any()).Return(errNotFound)

		s.ErrorIs(s.uc.ResetPassword(context.Background(), req), commands.ErrCustomerNotFound)
	})
}

func TestResetCodeService(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*txHarness, *resetcodemock.MockGenerator, commands.ResetCodeService) {
		ctrl := gomock.NewController(t)
		h := newTxHarness(ctrl)
		gen := resetcodemock.NewMockGenerator(ctrl)
		return h, gen, commands.NewResetCodeService(h.uow, gen, clock.NewMockClock(now), 0, metrics.New())
	}

	t.Run("issue stores the code with the default ttl", func(t *testing.T) {
		h, gen, svc := setup(t)
		gen.EXPECT().Generate().Return("654321", nil)
		h.codes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, rc *resetcode.ResetCode) (int64, error) {
				assert.Equal(t, "654321", rc.Code())
				assert.Equal(t, now.Add(resetcode.DefaultTTL), rc.ExpiresAt())
				assert.False(t, rc.Used())
				return 1, nil
			})

		code, err := svc.Issue(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, "654321", code)
	})

	t.Run("generator failure", func(t *testing.T) {
		_, gen, svc := setup(t)
		gen.EXPECT().Generate().Return("", assert.AnError)

		_, err := svc.Issue(context.Background(), 4)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("valid code is consumed once", func(t *testing.T) {
		h, _, svc := setup(t)
		rc := resetcode.ReconstructResetCode(8, 4, "123456", now.Add(time.Minute), false, now)
		h.codes.EXPECT().FindValidForUpdate(gomock.Any(), gomock.Any(), int64(4), "123456", now).Return(rc, nil)
		h.codes.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), int64(8)).Return(true, nil)

		ok, err := svc.VerifyAndConsume(context.Background(), 4, " 123456 ")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("lost race on mark used", func(t *testing.T) {
		h, _, svc := setup(t)
		rc := resetcode.ReconstructResetCode(8, 4, "123456", now.Add(time.Minute), false, now)
		h.codes.EXPECT().FindValidForUpdate(gomock.Any(), gomock.Any(), int64(4), "123456", now).Return(rc, nil)
		h.codes.EXPECT().MarkUsed(gomock.Any(), gomock.Any(), int64(8)).Return(false, nil)

		ok, err := svc.VerifyAndConsume(context.Background(), 4, "123456")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no matching code", func(t *testing.T) {
		h, _, svc := setup(t)
		h.codes.EXPECT().FindValidForUpdate(gomock.Any(), gomock.Any(), int64(4), "999999", now).Return(nil, errNotFound)

		ok, err := svc.VerifyAndConsume(context.Background(), 4, "999999")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed code never reaches the database", func(t *testing.T) {
		_, _, svc := setup(t)

		for _, code := range []string{"", "12345", "1234567", "12a456"} {
			ok, err := svc.VerifyAndConsume(context.Background(), 4, code)
			require.NoError(t, err)
			assert.False(t, ok, code)
		}
	})
}
