package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/clock"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/pkg/password"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrMissingFields          = errs.New("required fields are missing")
	ErrEmailTaken             = errs.New("email already registered")
	ErrPhoneTaken             = errs.New("phone already registered")
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrAdminMustUseAdminLogin = errs.New("administrators must use the admin login")
	ErrNotAdmin               = errs.New("account is not an administrator")
	ErrPasswordMismatch       = errs.New("new password and confirmation differ")
	ErrCurrentPasswordWrong   = errs.New("current password is wrong")
	ErrCustomerNotFound       = errs.New("customer not found")
)

type RegisterRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	PasswordConfirm string
}

type LoginRequest struct {
	Email    string
	Password string
}

type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
	Confirm         string
}

type AuthResult struct {
	CustomerID  int64
	FullName    string
	Role        customer.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	AdminLogin(ctx context.Context, req LoginRequest) (*AuthResult, error)
	ChangePassword(ctx context.Context, customerID int64, req ChangePasswordRequest) error
}

type authCommandsImpl struct {
	uow            shared.UnitOfWork
	tokens         TokenIssuer
	clock          clock.Clock
	adminEmail     string
	minPasswordLen int
	logger         *slog.Logger
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	tokens TokenIssuer,
	clk clock.Clock,
	adminEmail string,
	minPasswordLen int,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		uow:            uow,
		tokens:         tokens,
		clock:          clk,
		adminEmail:     adminEmail,
		minPasswordLen: minPasswordLen,
		logger:         logger,
	}
}

func (uc *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if blank(req.FirstName, req.LastName, req.Email, req.Phone, req.Password) {
		return nil, ErrMissingFields
	}
	if req.PasswordConfirm != "" && req.PasswordConfirm != req.Password {
		return nil, ErrPasswordMismatch
	}

	fullName, err := customer.FullName(req.FirstName, req.LastName)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := customer.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	phone, err := customer.NewPhone(req.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pw, err := customer.NewPassword(req.Password, uc.minPasswordLen)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	reads := uc.uow.CommandReads()
	if taken, err := exists(reads.CustomerByEmail(ctx, email.Value())); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}
	if taken, err := exists(reads.CustomerByPhone(ctx, phone.Value())); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrPhoneTaken
	}

	hash, err := hashPassword(pw.Value())
	if err != nil {
		return nil, err
	}

	c := customer.NewCustomer(fullName, email, phone, hash, uc.clock.Now())
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, cerr := tx.Customers().Create(ctx, tx.DB(), c)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return cerr
		}
		c.AssignID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("customer registered", "customer_id", c.ID())
	return uc.issue(c.ID(), c.FullName(), c.Role())
}

func (uc *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	c, err := uc.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	if c.Role() == customer.RoleAdmin {
		return nil, ErrAdminMustUseAdminLogin
	}
	return uc.issue(c.ID(), c.FullName(), c.Role())
}

func (uc *authCommandsImpl) AdminLogin(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	c, err := uc.authenticate(ctx, req)
	if err != nil {
		return nil, err
	}
	if !c.IsAdmin(uc.adminEmail) {
		uc.logger.Warn("admin login refused", "customer_id", c.ID())
		return nil, ErrNotAdmin
	}
	return uc.issue(c.ID(), c.FullName(), c.Role())
}

func (uc *authCommandsImpl) ChangePassword(ctx context.Context, customerID int64, req ChangePasswordRequest) error {
	if blank(req.CurrentPassword, req.NewPassword, req.Confirm) {
		return ErrMissingFields
	}
	if req.NewPassword != req.Confirm {
		return ErrPasswordMismatch
	}
	pw, err := customer.NewPassword(req.NewPassword, uc.minPasswordLen)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	snap, err := uc.uow.CommandReads().CustomerByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	if err := password.ComparePassword(snap.PasswordHash, req.CurrentPassword); err != nil {
		return ErrCurrentPasswordWrong
	}

	return uc.storePassword(ctx, customerID, pw.Value())
}

func (uc *authCommandsImpl) authenticate(ctx context.Context, req LoginRequest) (*customer.Customer, error) {
	if blank(req.Email, req.Password) {
		return nil, ErrMissingFields
	}

	snap, err := uc.uow.CommandReads().CustomerByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return customerFromSnapshot(snap), nil
}

func (uc *authCommandsImpl) storePassword(ctx context.Context, customerID int64, raw string) error {
	hash, err := hashPassword(raw)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().UpdatePasswordHash(ctx, tx.DB(), customerID, hash); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		return nil
	})
}

func (uc *authCommandsImpl) issue(id int64, fullName string, role customer.Role) (*AuthResult, error) {
	token, err := uc.tokens.GenerateAccessToken(id, role)
	if err != nil {
		return nil, errs.Wrap(err, "generate access token")
	}
	return &AuthResult{CustomerID: id, FullName: fullName, Role: role, AccessToken: token}, nil
}

func exists(_ *shared.CustomerSnapshot, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return false, nil
	}
	return false, err
}

func customerFromSnapshot(s *shared.CustomerSnapshot) *customer.Customer {
	var email *customer.Email
	if s.Email != nil {
		if e, err := customer.NewEmail(*s.Email); err == nil {
			email = &e
		}
	}
	var phone *customer.Phone
	if s.Phone != nil {
		if p, err := customer.NewPhone(*s.Phone); err == nil {
			phone = &p
		}
	}
	role, err := customer.NewRole(s.Role)
	if err != nil {
		role = customer.RoleCustomer
	}
	return customer.ReconstructCustomer(s.ID, s.FullName, email, phone, s.PasswordHash, role, time.Time{})
}

func hashPassword(raw string) (string, error) {
	hash, err := password.HashPassword(raw)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return hash, nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
