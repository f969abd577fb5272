// Package api is the single outbound channel to the Matcha backend.
// Every network call in the client goes through the Gateway: it attaches
// the session credential, tags and rate-limits requests, unwraps JSON
// payloads, and normalizes every failure into one of five BackendError
// classifications. Nothing else in the client touches net/http.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/matcha/internal/logging"
)

// maxBodyBytes caps how much of a response body is read. The API serves
// small JSON documents; anything larger is misbehavior.
const maxBodyBytes = 1 << 20

type Gateway struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// New builds a Gateway for the given base URL. rps bounds the outbound
// request rate; zero or negative disables the limiter.
func New(baseURL string, timeout time.Duration, rps float64, log logging.Logger) *Gateway {
	d := &net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         d.DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        16,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	var limiter *rate.Limiter
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), int(rps)+1)
	}

	if log == nil {
		log = logging.NewNopLogger()
	}

	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Transport: tr, Timeout: timeout},
		limiter: limiter,
		log:     log,
	}
}

// SetAuthToken replaces the credential attached to every outgoing
// request. The session store mirrors its token here on every change;
// an empty string detaches the credential.
func (g *Gateway) SetAuthToken(token string) {
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()
}

func (g *Gateway) authToken() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// do performs one round trip. On 2xx the body is decoded into out (which
// may be nil when the caller expects no payload); any failure comes back
// as a *BackendError. No classification ever triggers a retry here:
// a stale credential or a client error cannot be cured by repeating the
// call, and network/server retry policy belongs to callers.
func (g *Gateway) do(ctx context.Context, method, path string, body, out any) error {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return networkError(err)
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &BackendError{Status: ClassServerError, Message: "encode request: " + err.Error()}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return networkError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := g.authToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		g.log.Warn(ctx, "response read failed", "method", method, "path", path, "error", err)
		return networkError(err)
	}

	g.log.Debug(ctx, "request done",
		"method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// A success status with an undecodable body is still a server
		// fault; it must not escape unclassified.
		return &BackendError{Status: ClassServerError, Message: "decode response: " + err.Error()}
	}
	return nil
}
