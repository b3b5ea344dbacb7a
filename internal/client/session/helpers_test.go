package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory TokenStore.
type memStore struct {
	mu      sync.Mutex
	token   string
	email   string
	loadErr error
	clears  int
}

func (m *memStore) Load(context.Context) (string, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return "", "", m.loadErr
	}
	return m.token, m.email, nil
}

func (m *memStore) Save(_ context.Context, token, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.email = token, email
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.email = "", ""
	m.clears++
	return nil
}

func (m *memStore) Discard(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token != token {
		return nil
	}
	m.token, m.email = "", ""
	m.clears++
	return nil
}

func (m *memStore) stored() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

var errStore = errors.New("store broken")

// fakeClock is a settable clock safe for concurrent use.
type fakeClock struct{ ns atomic.Int64 }

func newFakeClock(t time.Time) *fakeClock {
	c := &fakeClock{}
	c.Set(t)
	return c
}

func (c *fakeClock) Now() time.Time      { return time.Unix(0, c.ns.Load()) }
func (c *fakeClock) Set(t time.Time)     { c.ns.Store(t.UnixNano()) }
func (c *fakeClock) Add(d time.Duration) { c.ns.Add(int64(d)) }

var baseTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	return signedToken(t, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
}
