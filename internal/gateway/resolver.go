package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"marketsync/internal/errs"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// DefaultGateways puts the least rate-limited providers first. Pinata's
// public gateway throttles hard and stays last.
var DefaultGateways = []string{
	"https://ipfs.io",
	"https://cloudflare-ipfs.com",
	"https://dweb.link",
	"https://gateway.ipfs.io",
	"https://ipfs.fleek.co",
	"https://nftstorage.link",
	"https://w3s.link",
	"https://gateway.pinata.cloud",
}

const (
	DefaultAttemptTimeout = 10 * time.Second
	DefaultCacheSize      = 256
)

type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeTimeout     Outcome = "timeout"
	OutcomeHTTPError   Outcome = "http_error"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeTransport   Outcome = "transport_error"
)

// Attempt records one request against one gateway.
type Attempt struct {
	Gateway  string        `json:"gateway"`
	URL      string        `json:"url"`
	Outcome  Outcome       `json:"outcome"`
	Status   int           `json:"status,omitempty"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Asset is a live response body bound to the gateway that served it. The
// caller must close Body.
type Asset struct {
	Body          io.ReadCloser
	Gateway       string
	URL           string
	ContentType   string
	ContentLength int64
	Attempts      []Attempt
}

// ExhaustedError lists every failed attempt of a resolution.
type ExhaustedError struct {
	URI      string
	Attempts []Attempt
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: %s after %d attempts", errs.ErrAllGatewaysExhausted, e.URI, len(e.Attempts))
}

func (e *ExhaustedError) Unwrap() error {
	return errs.ErrAllGatewaysExhausted
}

type Config struct {
	Gateways       []string
	AttemptTimeout time.Duration
	CacheSize      int
}

// Resolver fetches content-addressed assets by walking an ordered gateway
// list, one attempt at a time.
type Resolver struct {
	logs     *zap.SugaredLogger
	client   *http.Client
	gateways []string
	timeout  time.Duration
	last     *lru.Cache[string, string]
	metrics  *Metrics
}

func NewResolver(logger *zap.SugaredLogger, client *http.Client, cfg Config, metrics *Metrics) (*Resolver, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if len(cfg.Gateways) == 0 {
		cfg.Gateways = DefaultGateways
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = DefaultAttemptTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	last, err := lru.New[string, string](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating gateway cache: %w", err)
	}

	return &Resolver{
		logs:     logger,
		client:   client,
		gateways: append([]string(nil), cfg.Gateways...),
		timeout:  cfg.AttemptTimeout,
		last:     last,
		metrics:  metrics,
	}, nil
}

func (r *Resolver) Gateways() []string {
	return append([]string(nil), r.gateways...)
}

// Resolve returns the first successful response for uri. Each gateway gets a
// single attempt bounded by the attempt timeout; a failure moves on to the
// next gateway. The gateway that last served the same content is tried
// first.
func (r *Resolver) Resolve(ctx context.Context, uri string) (*Asset, error) {
	loc, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	key := loc.Key()
	order := r.order(key)
	if loc.Direct {
		order = []string{""}
	}

	attempts := make([]Attempt, 0, len(order))
	for i, gw := range order {
		asset, attempt := r.try(ctx, http.MethodGet, gw, loc.URL(gw))
		attempts = append(attempts, attempt)
		r.metrics.observe(attempt)
		r.logs.Infow("gateway attempt",
			"uri", loc.Raw,
			"gateway", attempt.Gateway,
			"outcome", attempt.Outcome,
			"status", attempt.Status,
			"duration", attempt.Duration,
			"error", attempt.Err)

		if attempt.Outcome == OutcomeSuccess {
			if !loc.Direct {
				r.last.Add(key, gw)
			}
			asset.Attempts = attempts
			return asset, nil
		}

		if i == 0 && !loc.Direct {
			if cached, ok := r.last.Peek(key); ok && cached == gw {
				r.last.Remove(key)
			}
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("resolving %s: %w", loc.Raw, ctx.Err())
		}
	}

	r.logs.Warnw("all gateways failed", "uri", loc.Raw, "attempts", len(attempts))
	return nil, &ExhaustedError{URI: loc.Raw, Attempts: attempts}
}

// Probe sends a HEAD to every gateway in order and reports each outcome.
// It is a diagnostic and never short-circuits.
func (r *Resolver) Probe(ctx context.Context, uri string) ([]Attempt, error) {
	loc, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	order := r.gateways
	if loc.Direct {
		order = []string{""}
	}

	attempts := make([]Attempt, 0, len(order))
	for _, gw := range order {
		asset, attempt := r.try(ctx, http.MethodHead, gw, loc.URL(gw))
		if asset != nil {
			asset.Body.Close()
		}
		r.metrics.observe(attempt)
		attempts = append(attempts, attempt)
		if ctx.Err() != nil {
			return attempts, ctx.Err()
		}
	}
	return attempts, nil
}

// order lists the gateways with the last one known to serve key first.
func (r *Resolver) order(key string) []string {
	cached, ok := r.last.Get(key)
	if !ok {
		return r.gateways
	}

	order := make([]string, 0, len(r.gateways))
	order = append(order, cached)
	for _, gw := range r.gateways {
		if gw != cached {
			order = append(order, gw)
		}
	}
	return order
}

func (r *Resolver) try(ctx context.Context, method, gw, target string) (*Asset, Attempt) {
	attempt := Attempt{Gateway: gw, URL: target}
	if gw == "" {
		attempt.Gateway = "direct"
	}
	start := time.Now()

	attemptCtx, cancel := context.WithCancel(ctx)
	timer := time.AfterFunc(r.timeout, cancel)

	req, err := http.NewRequestWithContext(attemptCtx, method, target, nil)
	if err != nil {
		timer.Stop()
		cancel()
		attempt.Outcome, attempt.Err = OutcomeTransport, err
		return nil, attempt
	}

	resp, err := r.client.Do(req)
	fired := !timer.Stop()
	attempt.Duration = time.Since(start)

	if err != nil || fired {
		if resp != nil {
			resp.Body.Close()
		}
		cancel()
		attempt.Outcome = OutcomeTransport
		if fired && ctx.Err() == nil {
			attempt.Outcome = OutcomeTimeout
			err = fmt.Errorf("no response within %s", r.timeout)
		}
		attempt.Err = err
		return nil, attempt
	}

	attempt.Status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		cancel()
		attempt.Outcome = OutcomeHTTPError
		if resp.StatusCode == http.StatusTooManyRequests {
			attempt.Outcome = OutcomeRateLimited
		}
		attempt.Err = errors.New(resp.Status)
		return nil, attempt
	}

	attempt.Outcome = OutcomeSuccess
	return &Asset{
		Body:          &cancelOnClose{ReadCloser: resp.Body, cancel: cancel},
		Gateway:       attempt.Gateway,
		URL:           target,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
	}, attempt
}

// cancelOnClose releases the attempt context together with the body.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
