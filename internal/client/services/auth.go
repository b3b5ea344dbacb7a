// Package services contains application services for the logdash client.
// This file defines the authentication service: login with the optional
// second factor, registration, the password reset flow, and the local
// session it leaves behind.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/logdash/internal/client/client"
	"github.com/dmitrijs2005/logdash/internal/client/models"
	"github.com/dmitrijs2005/logdash/internal/common"
	"github.com/dmitrijs2005/logdash/internal/logging"
)

// Messages shown for outcomes the server does not word itself.
const (
	MsgLoginOK     = "login successful"
	MsgOTPVerified = "code verified"
	MsgMFARequired = "enter the code from your authenticator app"

	MsgOTPRejected     = "could not verify the code"
	MsgResetNotSent    = "could not send the reset code"
	MsgResetRejected   = "could not verify the reset code"
	MsgResetNotApplied = "could not reset the password"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - every remote operation performs exactly one call and reports its
//     outcome as a models.Result whose Message is safe to print;
//   - Login and VerifyOTP store the issued token in the session;
//   - Register and ResetPassword validate input locally first.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) models.Result
	VerifyOTP(ctx context.Context, email, code string) models.Result
	Register(ctx context.Context, username, email string, password []byte) models.Result
	ForgotPassword(ctx context.Context, email string) models.Result
	VerifyOTPReset(ctx context.Context, email, otp string) models.Result
	ResetPassword(ctx context.Context, email string, newPassword, confirmation []byte) models.Result
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Email(ctx context.Context) string
}

// Session is the part of session.Guard the auth service drives.
type Session interface {
	Save(ctx context.Context, token, email string) error
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Email(ctx context.Context) string
}

type authService struct {
	client  client.Client
	session Session
	logger  logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session.
func NewAuthService(c client.Client, s Session, l logging.Logger) AuthService {
	if l == nil {
		l = logging.Discard()
	}
	return &authService{client: c, session: s, logger: l}
}

func failed(err error) models.Result {
	return models.Result{Success: false, Message: client.UserMessage(err), Err: err}
}

// Login sends the credentials. When the server asks for a second factor the
// result carries RequiresMFA (and a QR code URL on first enrolment) and
// nothing is stored.
func (s *authService) Login(ctx context.Context, email string, password []byte) models.Result {
	resp, err := s.client.Login(ctx, email, string(password))
	if err != nil {
		s.logger.Info(ctx, "login failed", "email", email, "error", err)
		return failed(err)
	}

	if resp.RequiresMFA {
		s.logger.Info(ctx, "login requires second factor", "email", email)
		return models.Result{
			Success:     true,
			RequiresMFA: true,
			QRCodeURL:   resp.QRCodeURL,
			Message:     MsgMFARequired,
		}
	}

	if resp.Token != "" {
		if err := s.session.Save(ctx, resp.Token, email); err != nil {
			s.logger.Error(ctx, "store token failed", "error", err)
			return failed(err)
		}
		return models.Result{Success: true, Message: MsgLoginOK}
	}

	return failed(client.ErrUnknown)
}

// VerifyOTP completes a login that required a second factor.
func (s *authService) VerifyOTP(ctx context.Context, email, code string) models.Result {
	resp, err := s.client.VerifyOTP(ctx, email, code)
	if err != nil {
		return failed(err)
	}
	if !resp.Success {
		return rejected(resp, MsgOTPRejected)
	}
	if resp.Token == "" {
		return failed(fmt.Errorf("%w: verify-otp returned no token", client.ErrUnknown))
	}
	if err := s.session.Save(ctx, resp.Token, email); err != nil {
		s.logger.Error(ctx, "store token failed", "error", err)
		return failed(err)
	}
	return models.Result{Success: true, Message: MsgOTPVerified}
}

func (s *authService) Register(ctx context.Context, username, email string, password []byte) models.Result {
	switch {
	case username == "":
		return failed(fmt.Errorf("%w: username", common.ErrEmptyField))
	case email == "":
		return failed(fmt.Errorf("%w: email", common.ErrEmptyField))
	case len(password) == 0:
		return failed(fmt.Errorf("%w: password", common.ErrEmptyField))
	}

	resp, err := s.client.Register(ctx, username, email, string(password))
	if err != nil {
		return failed(err)
	}
	return models.Result{Success: true, Message: resp.Message}
}

func (s *authService) ForgotPassword(ctx context.Context, email string) models.Result {
	resp, err := s.client.ForgotPassword(ctx, email)
	return s.status(resp, err, MsgResetNotSent)
}

func (s *authService) VerifyOTPReset(ctx context.Context, email, otp string) models.Result {
	resp, err := s.client.VerifyOTPReset(ctx, email, otp)
	return s.status(resp, err, MsgResetRejected)
}

// ResetPassword sets a new password once the reset code was accepted.
// A confirmation that differs is rejected without contacting the server.
func (s *authService) ResetPassword(ctx context.Context, email string, newPassword, confirmation []byte) models.Result {
	if len(newPassword) == 0 {
		return failed(fmt.Errorf("%w: new password", common.ErrEmptyField))
	}
	if string(newPassword) != string(confirmation) {
		return failed(common.ErrPasswordMismatch)
	}
	resp, err := s.client.ResetPassword(ctx, email, string(newPassword))
	return s.status(resp, err, MsgResetNotApplied)
}

// status normalizes a {success, message} answer. A refusal the server did
// not word falls back to fallback.
func (s *authService) status(resp *models.StatusResponse, err error, fallback string) models.Result {
	if err != nil {
		return failed(err)
	}
	if !resp.Success {
		return rejected(resp, fallback)
	}
	return models.Result{Success: true, Message: resp.Message}
}

func rejected(resp *models.StatusResponse, fallback string) models.Result {
	msg := resp.Message
	if msg == "" {
		msg = fallback
	}
	return models.Result{Success: false, Message: msg}
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *authService) IsAuthenticated(ctx context.Context) bool {
	return s.session.IsAuthenticated(ctx)
}

func (s *authService) Email(ctx context.Context) string {
	return s.session.Email(ctx)
}

