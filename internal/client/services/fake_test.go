package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/logdash/internal/client/models"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	LoginRet    *models.LoginResponse
	LoginErr    error
	StatusRet   *models.StatusResponse
	StatusErr   error
	SeverityErr error
	MethodsErr  error
	TimesErr    error
	UsersErr    error
	LogsRet     []models.LogEntry
	InfoRet     *models.ProjectInfo
	InfoErr     error

	Calls []string

	LastEmail    string
	LastPassword string
	LastUsername string
	LastCode     string
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.LoginResponse, error) {
	f.Calls = append(f.Calls, "login")
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, username, email, password string) (*models.StatusResponse, error) {
	f.Calls = append(f.Calls, "register")
	f.LastUsername, f.LastEmail, f.LastPassword = username, email, password
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) VerifyOTP(_ context.Context, email, code string) (*models.StatusResponse, error) {
	f.Calls = append(f.Calls, "verify-otp")
	f.LastEmail, f.LastCode = email, code
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) ForgotPassword(_ context.Context, email string) (*models.StatusResponse, error) {
	f.Calls = append(f.Calls, "forgot-password")
	f.LastEmail = email
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) VerifyOTPReset(_ context.Context, email, otp string) (*models.StatusResponse, error) {
	f.Calls = append(f.Calls, "verify-otp-reset")
	f.LastEmail, f.LastCode = email, otp
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) ResetPassword(_ context.Context, email, newPassword string) (*models.StatusResponse, error) {
	f.Calls = append(f.Calls, "reset-password")
	f.LastEmail, f.LastPassword = email, newPassword
	return f.StatusRet, f.StatusErr
}

func (f *fakeClient) Logs(context.Context) ([]models.LogEntry, error) {
	f.Calls = append(f.Calls, "logs")
	return f.LogsRet, nil
}

func (f *fakeClient) LogsBySeverity(context.Context) (models.CountsByServer, error) {
	f.Calls = append(f.Calls, "severity")
	if f.SeverityErr != nil {
		return nil, f.SeverityErr
	}
	return models.CountsByServer{models.ServerPrimary: {"info": 2}}, nil
}

func (f *fakeClient) LogsByMethod(context.Context) (models.CountsByServer, error) {
	f.Calls = append(f.Calls, "methods")
	if f.MethodsErr != nil {
		return nil, f.MethodsErr
	}
	return models.CountsByServer{models.ServerPrimary: {"GET": 5}}, nil
}

func (f *fakeClient) AvgResponseTimes(context.Context) (models.ResponseTimes, error) {
	f.Calls = append(f.Calls, "response-times")
	if f.TimesErr != nil {
		return nil, f.TimesErr
	}
	return models.ResponseTimes{models.ServerPrimary: {{Path: "/", AvgResponseTime: 3}}}, nil
}

func (f *fakeClient) LogsByUser(context.Context) (models.UserStats, error) {
	f.Calls = append(f.Calls, "users")
	if f.UsersErr != nil {
		return nil, f.UsersErr
	}
	return models.UserStats{models.ServerPrimary: 9}, nil
}

func (f *fakeClient) Info(context.Context) (*models.ProjectInfo, error) {
	f.Calls = append(f.Calls, "info")
	return f.InfoRet, f.InfoErr
}

// fakeSession records what the service stores.
type fakeSession struct {
	Token   string
	Owner   string
	SaveErr error
	Logouts int
}

func (s *fakeSession) Save(_ context.Context, token, email string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Token, s.Owner = token, email
	return nil
}

func (s *fakeSession) Logout(context.Context) error {
	s.Logouts++
	s.Token, s.Owner = "", ""
	return nil
}

func (s *fakeSession) IsAuthenticated(context.Context) bool { return s.Token != "" }
func (s *fakeSession) Email(context.Context) string         { return s.Owner }

var errBoom = errors.New("boom")
