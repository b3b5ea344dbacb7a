package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/logdash/internal/client/models"
	"github.com/dmitrijs2005/logdash/internal/common"
	"github.com/dmitrijs2005/logdash/internal/logging"
	"github.com/google/uuid"
)

const maxResponseBytes = 4 << 20

// HTTPClient talks to the REST backend with JSON bodies.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	tokens  TokenSource
	logger  logging.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout bounds every request. Zero disables the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.timeout = d }
}

// WithTokenSource attaches a bearer token to every request when available.
func WithTokenSource(ts TokenSource) Option {
	return func(h *HTTPClient) { h.tokens = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

// NewHTTPClient returns a client for the API rooted at baseURL,
// e.g. "https://example.org/api".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		timeout: 15 * time.Second,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", models.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.StatusResponse, error) {
	return c.postStatus(ctx, "/register", models.RegisterRequest{Username: username, Email: email, Password: password})
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) (*models.StatusResponse, error) {
	return c.postStatus(ctx, "/verify-otp", models.VerifyOTPRequest{Email: email, Code: code})
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (*models.StatusResponse, error) {
	return c.postStatus(ctx, "/forgot-password", models.EmailRequest{Email: email})
}

func (c *HTTPClient) VerifyOTPReset(ctx context.Context, email, otp string) (*models.StatusResponse, error) {
	return c.postStatus(ctx, "/verify-otp-reset", models.VerifyOTPResetRequest{Email: email, OTP: otp})
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, newPassword string) (*models.StatusResponse, error) {
	return c.postStatus(ctx, "/reset-password", models.ResetPasswordRequest{Email: email, NewPassword: newPassword})
}

func (c *HTTPClient) postStatus(ctx context.Context, path string, body any) (*models.StatusResponse, error) {
	var resp models.StatusResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logs(ctx context.Context) ([]models.LogEntry, error) {
	var out []models.LogEntry
	if err := c.do(ctx, http.MethodGet, "/logs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LogsBySeverity(ctx context.Context) (models.CountsByServer, error) {
	var out models.CountsByServer
	if err := c.do(ctx, http.MethodGet, "/logs/severity", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LogsByMethod(ctx context.Context) (models.CountsByServer, error) {
	var out models.CountsByServer
	if err := c.do(ctx, http.MethodGet, "/logs/methods", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AvgResponseTimes(ctx context.Context) (models.ResponseTimes, error) {
	var out models.ResponseTimes
	if err := c.do(ctx, http.MethodGet, "/logs/response-times", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LogsByUser(ctx context.Context) (models.UserStats, error) {
	var out models.UserStats
	if err := c.do(ctx, http.MethodGet, "/logs/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Info(ctx context.Context) (*models.ProjectInfo, error) {
	var out models.ProjectInfo
	if err := c.do(ctx, http.MethodGet, "/getInfo", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs a single request and decodes a 2xx JSON body into out.
// Errors come back as *APIError, ErrUnavailable or ErrUnknown.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode %s: %v", ErrUnknown, path, err)
		}
		body = bytes.NewReader(b)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("%w: build request %s: %v", ErrUnknown, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.Warn(ctx, "token lookup failed", "error", err)
		} else if token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	log := c.logger.With("request_id", requestID, "method", method, "path", path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		if errors.Is(ctx.Err(), context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		log.Warn(ctx, "read response failed", "error", err)
		return fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnknown, path, err)
	}
	return nil
}

func decodeAPIError(status int, data []byte) error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = payload.Message
		if apiErr.Message == "" {
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}
