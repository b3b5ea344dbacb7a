package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/logdash/internal/client/client"
	"github.com/dmitrijs2005/logdash/internal/client/config"
	"github.com/dmitrijs2005/logdash/internal/client/services"
	"github.com/dmitrijs2005/logdash/internal/client/session"
	"github.com/dmitrijs2005/logdash/internal/logging"
)

// sessionWatcher is the part of session.Guard the App drives directly.
type sessionWatcher interface {
	StartWatcher(ctx context.Context, interval time.Duration, onExpired func())
	StopWatcher()
	WatcherRunning() bool
	ExpiresAt(ctx context.Context) (time.Time, bool)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	logService  services.LogService
	watcher     sessionWatcher
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	closeFn     func() error

	expired atomic.Bool
}

// NewApp opens the local database and wires the session guard, the API
// client and the services on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	guard := session.NewGuard(session.NewMetadataStore(db), session.WithLogger(logger))

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithTokenSource(guard),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, guard, logger),
		logService:  services.NewLogService(apiClient, logger),
		watcher:     guard,
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		closeFn:     db.Close,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

// Close stops the session watcher and releases the database.
func (a *App) Close(ctx context.Context) {
	a.watcher.StopWatcher()
	if a.closeFn == nil {
		return
	}
	if err := a.closeFn(); err != nil {
		a.logger.Warn(ctx, "close database", "error", err)
	}
}

// Root prints the banner, resumes a stored session if it is still valid and
// runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	a.println("Welcome to logdash CLI (type 'help' for commands)")

	if a.isLoggedIn(ctx) {
		a.startSessionWatcher(ctx)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	if !a.isLoggedIn(ctx) {
		return "(guest)"
	}
	if email := a.authService.Email(ctx); email != "" {
		return fmt.Sprintf("(%s)", email)
	}
	return "(logged in)"
}

func (a *App) startSessionWatcher(ctx context.Context) {
	a.expired.Store(false)
	a.watcher.StartWatcher(ctx, a.config.SessionCheckInterval, a.onSessionExpired)
}

// onSessionExpired runs on the watcher goroutine. It only flags the expiry;
// the REPL sends the user to login before the next command.
func (a *App) onSessionExpired() {
	a.expired.Store(true)
	a.println()
	a.println("Your session has expired. Please log in again.")
}

// sessionExpired reports and resets the expiry flag.
func (a *App) sessionExpired() bool {
	return a.expired.Swap(false)
}

func (a *App) w() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.w(), args...)
}
