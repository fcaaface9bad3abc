// Package api is the single HTTP entry point for all backend calls. It
// attaches auth headers from the session store, classifies 401 responses
// into bad-credentials vs. expired-session, and caches idempotent GETs for
// a short TTL.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellerpulse/pulse/internal/cache"
	"github.com/sellerpulse/pulse/internal/model"
	"github.com/sellerpulse/pulse/internal/normalize"
	"github.com/sellerpulse/pulse/internal/session"
	"github.com/sellerpulse/pulse/internal/util"
	"github.com/sellerpulse/pulse/internal/worker"
)

// Client is the gateway to the scoring backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxBytes   int64

	store    *session.Store
	limiter  *worker.Limiter
	registry *normalize.Registry
	logger   *zap.Logger

	respCache cache.Cache
	cacheTTL  time.Duration

	onSessionExpired func()
}

// NewClient creates a gateway client from configuration
func NewClient(cfg *model.Config, store *session.Store, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.API.HTTPProxy, cfg.API.HTTPSProxy, cfg.API.NoProxy),
	}
	if cfg.API.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   cfg.API.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		baseURL:   strings.TrimRight(cfg.API.BaseURL, "/"),
		userAgent: cfg.API.UserAgent,
		maxBytes:  cfg.API.MaxBodyBytes,
		store:     store,
		limiter:   worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		registry:  normalize.NewRegistry(),
		logger:    logger,
	}

	if cfg.Cache.Enabled {
		c.respCache = cache.NewMemory(cfg.Cache.TTL, 10*time.Minute)
		c.cacheTTL = cfg.Cache.TTL
	}

	return c
}

// OnSessionExpired registers the hook invoked after a forced logout. The
// CLI prints a notice; the TUI navigates to its login view.
func (c *Client) OnSessionExpired(fn func()) {
	c.onSessionExpired = fn
}

// envelope is the standard backend response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// errMessage extracts the server-supplied error text from a response body
func errMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}

// isAuthEndpoint reports whether a path belongs to the authentication
// flows, where a 401 means bad credentials rather than an expired session
func isAuthEndpoint(path string) bool {
	return strings.HasPrefix(path, "/api/auth/")
}

// do executes one request against the backend and returns the raw body.
// Cacheable GETs are served from the response cache when fresh.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, cacheable bool) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	hadToken := c.store.Token() != ""

	key := cache.Key(method, reqURL)
	if cacheable && c.respCache != nil && method == http.MethodGet && !hadToken {
		if cached, found := c.respCache.Get(key); found {
			c.logger.Debug("cache hit", zap.String("url", reqURL))
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx, reqURL); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.store.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("url", reqURL),
			zap.Error(err))
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("url", reqURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode == http.StatusUnauthorized {
		if !isAuthEndpoint(path) && hadToken {
			// Expired session: clear state, then tell the UI to return
			// to login
			c.store.Logout()
			if c.onSessionExpired != nil {
				c.onSessionExpired()
			}
			return nil, ErrSessionExpired
		}
		return nil, &Error{Status: resp.StatusCode, Message: errMessage(raw)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Message: errMessage(raw)}
	}

	if cacheable && c.respCache != nil && method == http.MethodGet && !hadToken {
		_ = c.respCache.Set(key, raw, c.cacheTTL)
	}

	return raw, nil
}

// get performs a GET and unmarshals the envelope data
func (c *Client) get(ctx context.Context, path string, query url.Values, cacheable bool) (any, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil, cacheable)
	if err != nil {
		return nil, err
	}
	return decodeAny(raw)
}

// post performs a POST and unmarshals the envelope data
func (c *Client) post(ctx context.Context, path string, body any) (any, error) {
	raw, err := c.do(ctx, http.MethodPost, path, nil, body, false)
	if err != nil {
		return nil, err
	}
	return decodeAny(raw)
}

// put performs a PUT and unmarshals the envelope data
func (c *Client) put(ctx context.Context, path string, body any) (any, error) {
	raw, err := c.do(ctx, http.MethodPut, path, nil, body, false)
	if err != nil {
		return nil, err
	}
	return decodeAny(raw)
}

func decodeAny(raw []byte) (any, error) {
	var v any
	if len(raw) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return v, nil
}
