package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/logdash/internal/client/config"
	"github.com/dmitrijs2005/logdash/internal/client/models"
	"github.com/dmitrijs2005/logdash/internal/logging"
)

// stubInputs feeds answers to getSimpleText and getPassword in order.
func stubInputs(t *testing.T, texts []string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	loggedIn bool
	email    string

	loginRes  models.Result
	otpRes    models.Result
	regRes    models.Result
	forgotRes models.Result
	verifyRes models.Result
	resetRes  models.Result
	logoutErr error

	calls []string

	loginEmail string
	loginPass  string
	otpCode    string
	regArgs    []string
	resetPass  string
	resetConf  string
}

func (f *fakeAuth) Login(_ context.Context, email string, password []byte) models.Result {
	f.calls = append(f.calls, "login")
	f.loginEmail, f.loginPass = email, string(password)
	if f.loginRes.Success && !f.loginRes.RequiresMFA {
		f.loggedIn, f.email = true, email
	}
	return f.loginRes
}

func (f *fakeAuth) VerifyOTP(_ context.Context, email, code string) models.Result {
	f.calls = append(f.calls, "verify-otp")
	f.otpCode = code
	if f.otpRes.Success {
		f.loggedIn, f.email = true, email
	}
	return f.otpRes
}

func (f *fakeAuth) Register(_ context.Context, username, email string, password []byte) models.Result {
	f.calls = append(f.calls, "register")
	f.regArgs = []string{username, email, string(password)}
	return f.regRes
}

func (f *fakeAuth) ForgotPassword(context.Context, string) models.Result {
	f.calls = append(f.calls, "forgot")
	return f.forgotRes
}

func (f *fakeAuth) VerifyOTPReset(context.Context, string, string) models.Result {
	f.calls = append(f.calls, "verify-reset")
	return f.verifyRes
}

func (f *fakeAuth) ResetPassword(_ context.Context, _ string, newPassword, confirmation []byte) models.Result {
	f.calls = append(f.calls, "reset")
	f.resetPass, f.resetConf = string(newPassword), string(confirmation)
	return f.resetRes
}

func (f *fakeAuth) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedIn, f.email = false, ""
	return nil
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.loggedIn }
func (f *fakeAuth) Email(context.Context) string         { return f.email }

type fakeLogs struct {
	info      *models.ProjectInfo
	infoErr   error
	analytics *models.Analytics
	anErr     error
	entries   []models.LogEntry
	logsErr   error
}

func (f *fakeLogs) Logs(context.Context) ([]models.LogEntry, error) { return f.entries, f.logsErr }
func (f *fakeLogs) Info(context.Context) (*models.ProjectInfo, error) {
	return f.info, f.infoErr
}
func (f *fakeLogs) Analytics(context.Context) (*models.Analytics, error) {
	return f.analytics, f.anErr
}

type fakeWatcher struct {
	starts    int
	stops     int
	running   bool
	interval  time.Duration
	onExpired func()
	exp       time.Time
	hasExp    bool
}

func (w *fakeWatcher) StartWatcher(_ context.Context, interval time.Duration, onExpired func()) {
	w.starts++
	w.running = true
	w.interval = interval
	w.onExpired = onExpired
}
func (w *fakeWatcher) StopWatcher()         { w.stops++; w.running = false }
func (w *fakeWatcher) WatcherRunning() bool { return w.running }
func (w *fakeWatcher) ExpiresAt(context.Context) (time.Time, bool) {
	return w.exp, w.hasExp
}

func newTestApp(auth *fakeAuth, logs *fakeLogs) (*App, *fakeWatcher, *bytes.Buffer) {
	if logs == nil {
		logs = &fakeLogs{info: &models.ProjectInfo{}}
	}
	out := &bytes.Buffer{}
	w := &fakeWatcher{}
	a := &App{
		config: &config.Config{
			ServerBaseURL:        "http://api.test/api",
			SessionCheckInterval: 5 * time.Second,
		},
		authService: auth,
		logService:  logs,
		watcher:     w,
		logger:      logging.Discard(),
		out:         out,
	}
	return a, w, out
}
