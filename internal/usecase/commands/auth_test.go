//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/pkg/password"
	"dryclean-api/internal/usecase/commands"
	"dryclean-api/internal/usecase/shared"
	"dryclean-api/tests/common/builder"
	commandsmock "dryclean-api/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const adminEmail = "admin@akpak.com.tr"

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	h      *txHarness
	tokens *commandsmock.MockTokenIssuer
	uc     commands.AuthCommands

	hash string
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword("sifre1234")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.tokens = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.uc = commands.NewAuthCommands(s.h.uow, s.tokens, clock.NewMockClock(time.Now()), adminEmail, 8, discardLogger(s.T()))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthCommandsTestSuite) snapshot(mutate func(*builder.CustomerBuilder)) *shared.CustomerSnapshot {
	b := builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.PasswordHash = s.hash })
	if mutate != nil {
		b.With(mutate)
	}
	return b.BuildSnapshot()
}

func validRegistration() commands.RegisterRequest {
	return commands.RegisterRequest{
		FirstName:       "Ayşe",
		LastName:        "Yılmaz",
		Email:           "ayse@example.com",
		Phone:           "0555 111 22 33",
		Password:        "sifre1234",
		PasswordConfirm: "sifre1234",
	}
}

func (s *AuthCommandsTestSuite) TestRegister() {
	s.Run("success: stores a hashed password and a normalized phone", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), "ayse@example.com").Return(nil, errNotFound)
		s.h.reads.EXPECT().CustomerByPhone(gomock.Any(), "05551112233").Return(nil, errNotFound)
		s.h.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *customer.Customer) (int64, error) {
				s.Equal("Ayşe Yılmaz", c.FullName())
				s.Equal(customer.RoleCustomer, c.Role())
				s.NoError(password.ComparePassword(c.PasswordHash(), "sifre1234"))
				return 11, nil
			})
		s.tokens.EXPECT().GenerateAccessToken(int64(11), customer.RoleCustomer).Return("tok", nil)

		res, err := s.uc.Register(context.Background(), validRegistration())

		s.Require().NoError(err)
		s.Equal(int64(11), res.CustomerID)
		s.Equal("tok", res.AccessToken)
	})

	s.Run("error: email taken", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), gomock.Any()).Return(s.snapshot(nil), nil)

		_, err := s.uc.Register(context.Background(), validRegistration())
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("error: phone taken", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), gomock.Any()).Return(nil, errNotFound)
		s.h.reads.EXPECT().CustomerByPhone(gomock.Any(), gomock.Any()).Return(s.snapshot(nil), nil)

		_, err := s.uc.Register(context.Background(), validRegistration())
		s.ErrorIs(err, commands.ErrPhoneTaken)
	})

	s.Run("error: unique violation on insert maps to email taken", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), gomock.Any()).Return(nil, errNotFound)
		s.h.reads.EXPECT().CustomerByPhone(gomock.Any(), gomock.Any()).Return(nil, errNotFound)
		s.h.customers.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := s.uc.Register(context.Background(), validRegistration())
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	validation := []struct {
		name    string
		mutate  func(*commands.RegisterRequest)
		wantErr error
	}{
		{"missing first name", func(r *commands.RegisterRequest) { r.FirstName = " " }, commands.ErrMissingFields},
		{"confirmation differs", func(r *commands.RegisterRequest) { r.PasswordConfirm = "baska1234" }, commands.ErrPasswordMismatch},
		{"bad email", func(r *commands.RegisterRequest) { r.Email = "ayse.example.com" }, errs.ErrDomainValidation},
		{"short password", func(r *commands.RegisterRequest) { r.Password, r.PasswordConfirm = "kisa", "kisa" }, errs.ErrDomainValidation},
	}
	for _, tt := range validation {
		s.Run("validation: "+tt.name, func() {
			req := validRegistration()
			tt.mutate(&req)

			_, err := s.uc.Register(context.Background(), req)
			s.True(errs.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func (s *AuthCommandsTestSuite) TestLogin() {
	tests := []struct {
		name    string
		admin   bool
		snap    func(*builder.CustomerBuilder)
		pw      string
		wantErr error
	}{
		{name: "customer succeeds", pw: "sifre1234"},
		{name: "wrong password", pw: "yanlis", wantErr: commands.ErrInvalidCredentials},
		{name: "admin is sent to the admin login", snap: func(b *builder.CustomerBuilder) { b.AsAdmin(adminEmail) }, pw: "sifre1234", wantErr: commands.ErrAdminMustUseAdminLogin},
		{name: "admin login succeeds", admin: true, snap: func(b *builder.CustomerBuilder) { b.AsAdmin(adminEmail) }, pw: "sifre1234"},
		{name: "admin login refuses a customer", admin: true, pw: "sifre1234", wantErr: commands.ErrNotAdmin},
		{name: "admin role with another address", admin: true, snap: func(b *builder.CustomerBuilder) { b.AsAdmin("ikinci@akpak.com.tr") }, pw: "sifre1234", wantErr: commands.ErrNotAdmin},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			snap := s.snapshot(tt.snap)
			s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), *snap.Email).Return(snap, nil)
			if tt.wantErr == nil {
				s.tokens.EXPECT().GenerateAccessToken(snap.ID, customer.Role(snap.Role)).Return("tok", nil)
			}

			login := s.uc.Login
			if tt.admin {
				login = s.uc.AdminLogin
			}
			res, err := login(context.Background(), commands.LoginRequest{Email: " " + *snap.Email + " ", Password: tt.pw})

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				s.Nil(res)
				return
			}
			s.Require().NoError(err)
			s.Equal("tok", res.AccessToken)
		})
	}

	s.Run("unknown email reads as bad credentials", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), "kimse@example.com").Return(nil, errNotFound)

		_, err := s.uc.Login(context.Background(), commands.LoginRequest{Email: "kimse@example.com", Password: "x"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("lookup failure is passed through", func() {
		s.h.reads.EXPECT().CustomerByEmail(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := s.uc.Login(context.Background(), commands.LoginRequest{Email: "ayse@example.com", Password: "x"})
		s.ErrorIs(err, assert.AnError)
	})
}

func (s *AuthCommandsTestSuite) TestChangePassword() {
	s.Run("success", func() {
		s.h.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(s.snapshot(nil), nil)
		s.h.customers.EXPECT().UpdatePasswordHash(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, _ int64, hash string) error {
				s.NoError(password.ComparePassword(hash, "yepyeni123"))
				return nil
			})

		err := s.uc.ChangePassword(context.Background(), 1, commands.ChangePasswordRequest{
			CurrentPassword: "sifre1234", NewPassword: "yepyeni123", Confirm: "yepyeni123",
		})
		s.NoError(err)
	})

	s.Run("wrong current password", func() {
		s.h.reads.EXPECT().CustomerByID(gomock.Any(), int64(1)).Return(s.snapshot(nil), nil)

		err := s.uc.ChangePassword(context.Background(), 1, commands.ChangePasswordRequest{
			CurrentPassword: "tahmin", NewPassword: "yepyeni123", Confirm: "yepyeni123",
		})
		s.ErrorIs(err, commands.ErrCurrentPasswordWrong)
	})

	s.Run("customer gone", func() {
		s.h.reads.EXPECT().CustomerByID(gomock.Any(), int64(2)).Return(nil, errNotFound)

		err := s.uc.ChangePassword(context.Background(), 2, commands.ChangePasswordRequest{
			CurrentPassword: "sifre1234", NewPassword: "yepyeni123", Confirm: "yepyeni123",
		})
		s.ErrorIs(err, commands.ErrCustomerNotFound)
	})

	s.Run("confirmation differs", func() {
		err := s.uc.ChangePassword(context.Background(), 1, commands.ChangePasswordRequest{
			CurrentPassword: "sifre1234", NewPassword: "yepyeni123", Confirm: "yepyeni124",
		})
		s.ErrorIs(err, commands.ErrPasswordMismatch)
	})
}
