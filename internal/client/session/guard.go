package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/logdash/internal/common"
	"github.com/dmitrijs2005/logdash/internal/logging"
)

// DefaultCheckInterval is how often Watch re-checks the token.
const DefaultCheckInterval = 5 * time.Second

// Guard decides whether the stored credential token still grants access.
type Guard struct {
	store  TokenStore
	logger logging.Logger
	now    func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Guard)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(g *Guard) { g.logger = l }
}

func NewGuard(store TokenStore, opts ...Option) *Guard {
	g := &Guard{
		store:  store,
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Token returns the stored token or "" when there is none. It makes Guard
// usable as the bearer token source of the HTTP client.
func (g *Guard) Token(ctx context.Context) (string, error) {
	token, _, err := g.store.Load(ctx)
	return token, err
}

// Email returns the address the stored token was issued to, if known.
func (g *Guard) Email(ctx context.Context) string {
	_, email, err := g.store.Load(ctx)
	if err != nil {
		return ""
	}
	return email
}

// Save stores a freshly issued token.
func (g *Guard) Save(ctx context.Context, token, email string) error {
	if token == "" {
		return common.ErrNoToken
	}
	if err := g.store.Save(ctx, token, email); err != nil {
		return err
	}
	g.logger.Info(ctx, "session started", "email", email)
	return nil
}

// ExpiresAt reports the exp claim of the stored token.
func (g *Guard) ExpiresAt(ctx context.Context) (time.Time, bool) {
	token, err := g.Token(ctx)
	if err != nil {
		return time.Time{}, false
	}
	exp, ok, err := ExpiresAt(token)
	if err != nil {
		return time.Time{}, false
	}
	return exp, ok
}

// IsTokenExpired reports whether the stored token is unusable. A missing,
// unreadable or undecodable token counts as expired; a token without an
// exp claim does not.
func (g *Guard) IsTokenExpired(ctx context.Context) bool {
	_, expired := g.inspect(ctx)
	return expired
}

// inspect returns the stored token along with its verdict.
func (g *Guard) inspect(ctx context.Context) (string, bool) {
	token, err := g.Token(ctx)
	if err != nil {
		g.logger.Warn(ctx, "token lookup failed", "error", err)
		return "", true
	}
	if token == "" {
		return "", true
	}

	exp, ok, err := ExpiresAt(token)
	if err != nil {
		g.logger.Warn(ctx, "token decode failed", "error", err)
		return token, true
	}
	if !ok {
		return token, false
	}
	return token, exp.Before(g.now())
}

// IsAuthenticated is true when a token is stored and not expired.
func (g *Guard) IsAuthenticated(ctx context.Context) bool {
	return !g.IsTokenExpired(ctx)
}

// Check is IsAuthenticated that also drops the expired token. Only the
// token that was judged is removed; nothing is removed once ctx is done.
func (g *Guard) Check(ctx context.Context) bool {
	token, expired := g.inspect(ctx)
	if !expired {
		return true
	}
	if ctx.Err() != nil {
		return false
	}
	if err := g.store.Discard(ctx, token); err != nil {
		g.logger.Error(ctx, "clear token failed", "error", err)
	}
	return false
}

// Logout stops the watcher and removes the stored token.
func (g *Guard) Logout(ctx context.Context) error {
	g.StopWatcher()
	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.logger.Info(ctx, "session closed")
	return nil
}

// Watch checks the session immediately and then every interval. When the
// check fails it clears the token, calls onExpired once and returns
// common.ErrTokenExpired. It returns ctx.Err() when ctx is cancelled first.
func (g *Guard) Watch(ctx context.Context, interval time.Duration, onExpired func()) error {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !g.Check(ctx) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			g.logger.Info(ctx, "session expired")
			if onExpired != nil {
				onExpired()
			}
			return common.ErrTokenExpired
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// StartWatcher runs Watch on a background goroutine, replacing any watcher
// already running.
func (g *Guard) StartWatcher(ctx context.Context, interval time.Duration, onExpired func()) {
	g.StopWatcher()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	g.mu.Lock()
	g.cancel = cancel
	g.done = done
	g.mu.Unlock()

	go func() {
		defer close(done)
		err := g.Watch(ctx, interval, onExpired)
		if err != nil && !errors.Is(err, common.ErrTokenExpired) {
			g.logger.Debug(ctx, "session watcher stopped", "reason", err)
		}
	}()
}

// StopWatcher cancels the background watcher, if any. It does not wait for
// the goroutine so it is safe to call from onExpired.
func (g *Guard) StopWatcher() {
	g.mu.Lock()
	cancel := g.cancel
	g.cancel = nil
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// WatcherRunning reports whether a background watcher is still active.
func (g *Guard) WatcherRunning() bool {
	g.mu.Lock()
	done := g.done
	g.mu.Unlock()

	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}
