package client

import (
	"context"

	"github.com/dmitrijs2005/logdash/internal/client/models"
)

// Client is the transport-level contract with the logdash backend. Each
// method performs exactly one remote call; there is no retry.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, username, email, password string) (*models.StatusResponse, error)
	VerifyOTP(ctx context.Context, email, code string) (*models.StatusResponse, error)
	ForgotPassword(ctx context.Context, email string) (*models.StatusResponse, error)
	VerifyOTPReset(ctx context.Context, email, otp string) (*models.StatusResponse, error)
	ResetPassword(ctx context.Context, email, newPassword string) (*models.StatusResponse, error)

	Logs(ctx context.Context) ([]models.LogEntry, error)
	LogsBySeverity(ctx context.Context) (models.CountsByServer, error)
	LogsByMethod(ctx context.Context) (models.CountsByServer, error)
	AvgResponseTimes(ctx context.Context) (models.ResponseTimes, error)
	LogsByUser(ctx context.Context) (models.UserStats, error)
	Info(ctx context.Context) (*models.ProjectInfo, error)
}

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request is sent without Authorization.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
