package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/logdash/internal/client/client"
	"github.com/dmitrijs2005/logdash/internal/client/models"
	"github.com/dmitrijs2005/logdash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// report prints the outcome of an auth operation and turns a failure into
// an error for the caller.
func (a *App) report(r models.Result) error {
	if r.Success {
		if r.Message != "" {
			a.println(r.Message)
		}
		return nil
	}
	msg := r.Message
	if msg == "" {
		msg = client.MsgUnknown
	}
	a.println("Error:", msg)
	if r.Err != nil {
		return r.Err
	}
	return errors.New(msg)
}

// Register prompts for a username, an email and a password and creates the
// account. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.w())
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.w())
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.w())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	r := a.authService.Register(ctx, username, email, password)
	if err := a.report(r); err != nil {
		return err
	}
	a.println("Registration successful. You can now log in.")
	return nil
}

// Login authenticates and, on success, shows the home view.
func (a *App) Login(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}
	return a.Home(ctx)
}

// login runs the credential step and, when the server asks for it, the
// one-time code step. A QR code URL is printed on first enrolment. On
// success the session watcher is started.
func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.w())
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.w())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	r := a.authService.Login(ctx, email, password)
	if !r.Success {
		return a.report(r)
	}

	if r.RequiresMFA {
		if r.QRCodeURL != "" {
			a.println("Scan this QR code with your authenticator app:")
			a.println(r.QRCodeURL)
		}
		a.println(r.Message)

		code, err := getSimpleText(a.reader, "Enter verification code", a.w())
		if err != nil {
			return err
		}
		if err := a.report(a.authService.VerifyOTP(ctx, email, code)); err != nil {
			return err
		}
	} else {
		_ = a.report(r)
	}

	a.startSessionWatcher(ctx)
	return nil
}

// ForgotPassword walks through email, reset code and new password. Each
// step stops the flow when the server rejects it.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.w())
	if err != nil {
		return err
	}
	if err := a.report(a.authService.ForgotPassword(ctx, email)); err != nil {
		return err
	}

	otp, err := getSimpleText(a.reader, "Enter the verification code", a.w())
	if err != nil {
		return err
	}
	if err := a.report(a.authService.VerifyOTPReset(ctx, email, otp)); err != nil {
		return err
	}

	newPassword, err := getPassword("New password", a.w())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirmation, err := getPassword("Confirm new password", a.w())
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if err := a.report(a.authService.ResetPassword(ctx, email, newPassword, confirmation)); err != nil {
		return err
	}
	a.println("You can now log in with your new password.")
	return nil
}

// Logout stops the session watcher and removes the stored token.
func (a *App) Logout(ctx context.Context) error {
	a.expired.Store(false)
	if err := a.authService.Logout(ctx); err != nil {
		a.println("Error:", err)
		return err
	}
	a.println("Logged out.")
	return nil
}
