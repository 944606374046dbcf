package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dryclean-api/internal/domain/customer"
	"dryclean-api/internal/infra"
	"dryclean-api/internal/pkg/errs"
	"dryclean-api/internal/usecase/shared"
)

//go:generate mockgen -source=password_reset.go -destination=../../../tests/mock/commands/password_reset.go -package=commandsmock

var (
	ErrAccountNotFound   = errs.New("no account matches the identifier")
	ErrNoEmailOnFile     = errs.New("account has no email address")
	ErrMailDelivery      = errs.New("reset code mail could not be sent")
	ErrInvalidResetCode  = errs.New("reset code is wrong or expired")
	ErrInvalidResetToken = errs.New("reset token is invalid or expired")
)

const resetMailSubject = "AKPAK - Şifre Sıfırlama Kodu"

type ResetPasswordRequest struct {
	ResetToken  string
	NewPassword string
	Confirm     string
}

type ResetRequestResult struct {
	CustomerID int64
}

type ResetVerifyResult struct {
	ResetToken string
}

// PasswordResetCommands is the three-step forgotten-password flow: request a code by
// email, trade the code for a short-lived reset token, then set the new password.
type PasswordResetCommands interface {
	RequestCode(ctx context.Context, identifier string) (*ResetRequestResult, error)
	VerifyCode(ctx context.Context, customerID int64, code string) (*ResetVerifyResult, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type passwordResetCommandsImpl struct {
	uow            shared.UnitOfWork
	codes          ResetCodeService
	mailer         shared.Mailer
	tokens         TokenIssuer
	codeTTL        time.Duration
	minPasswordLen int
	logger         *slog.Logger
}

func NewPasswordResetCommands(
	uow shared.UnitOfWork,
	codes ResetCodeService,
	mailer shared.Mailer,
	tokens TokenIssuer,
	codeTTL time.Duration,
	minPasswordLen int,
	logger *slog.Logger,
) PasswordResetCommands {
	return &passwordResetCommandsImpl{
		uow:            uow,
		codes:          codes,
		mailer:         mailer,
		tokens:         tokens,
		codeTTL:        codeTTL,
		minPasswordLen: minPasswordLen,
		logger:         logger,
	}
}

// RequestCode accepts an email address or a phone number.
func (uc *passwordResetCommandsImpl) RequestCode(ctx context.Context, identifier string) (*ResetRequestResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrMissingFields
	}

	var (
		snap *shared.CustomerSnapshot
		err  error
	)
	reads := uc.uow.CommandReads()
	if strings.Contains(identifier, "@") {
		snap, err = reads.CustomerByEmail(ctx, identifier)
	} else {
		snap, err = reads.CustomerByPhone(ctx, customer.NormalizePhone(identifier))
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if snap.Email == nil || *snap.Email == "" {
		return nil, ErrNoEmailOnFile
	}

	code, err := uc.codes.Issue(ctx, snap.ID)
	if err != nil {
		return nil, err
	}

	msg := shared.MailMessage{
		To:      *snap.Email,
		Subject: resetMailSubject,
		Body:    ResetMailBody(code, uc.codeTTL),
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.logger.Error("failed to send reset code", "customer_id", snap.ID, "error", err.Error())
		return nil, errs.Mark(err, ErrMailDelivery)
	}

	return &ResetRequestResult{CustomerID: snap.ID}, nil
}

func (uc *passwordResetCommandsImpl) VerifyCode(ctx context.Context, customerID int64, code string) (*ResetVerifyResult, error) {
	if customerID <= 0 || strings.TrimSpace(code) == "" {
		return nil, ErrMissingFields
	}

	ok, err := uc.codes.VerifyAndConsume(ctx, customerID, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidResetCode
	}

	token, err := uc.tokens.GenerateResetToken(customerID)
	if err != nil {
		return nil, errs.Wrap(err, "generate reset token")
	}
	return &ResetVerifyResult{ResetToken: token}, nil
}

func (uc *passwordResetCommandsImpl) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if blank(req.ResetToken, req.NewPassword, req.Confirm) {
		return ErrMissingFields
	}
	claims, err := uc.tokens.ValidateResetToken(req.ResetToken)
	if err != nil {
		return errs.Mark(err, ErrInvalidResetToken)
	}
	if req.NewPassword != req.Confirm {
		return ErrPasswordMismatch
	}
	pw, err := customer.NewPassword(req.NewPassword, uc.minPasswordLen)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := hashPassword(pw.Value())
	if err != nil {
		return err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Customers().UpdatePasswordHash(ctx, tx.DB(), claims.CustomerID, hash); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("password reset completed", "customer_id", claims.CustomerID)
	return nil
}

// ResetMailBody is the plain-text body of the reset code mail.
func ResetMailBody(code string, ttl time.Duration) string {
	return fmt.Sprintf("Şifre sıfırlama kodunuz: %s\n\nKod %d dakika geçerlidir.", code, int(ttl.Minutes()))
}
