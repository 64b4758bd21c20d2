// Package client is the authenticated HTTP pipeline shared by the admin and end-user front ends of the travel API.
//
// Every call goes through Client.Do, which resolves the URL against a base fixed at construction, attaches the
// session's bearer token, toggles the loading indicator, decodes the response envelope and classifies failures as
// NetworkError, APIError or SessionExpiredError. Failures are reported once to the injected PlatformEffects and
// returned to the caller; nothing is retried.
package client

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/message"
	"golang.org/x/time/rate"

	"github.com/travelhub/travel-client/internal/logger"
	"github.com/travelhub/travel-client/internal/session"
)

const DefaultTimeout = 10 * time.Second

// SessionExpiredPolicy decides what the call that received the session-invalid response returns.
// In both cases the session is cleared and the login navigation fires.
type SessionExpiredPolicy int

const (
	// PolicyReject returns a *SessionExpiredError
	PolicyReject SessionExpiredPolicy = iota

	// PolicyResolveEmpty returns (nil, nil), so callers see an empty result
	PolicyResolveEmpty
)

// ParseSessionExpiredPolicy accepts "reject" and "resolve"
func ParseSessionExpiredPolicy(s string) (SessionExpiredPolicy, bool) {
	switch strings.ToLower(s) {
	case "reject", "":
		return PolicyReject, true
	case "resolve", "resolve-empty":
		return PolicyResolveEmpty, true
	default:
		return PolicyReject, false
	}
}

type Options struct {
	// BaseURL is the API root every request path is appended to, e.g. http://localhost:8080/api/v1
	BaseURL string

	// AssetURL is the host relative image paths are resolved against. Defaults to the scheme and host of BaseURL.
	AssetURL string

	// Timeout bounds each call. Zero means DefaultTimeout.
	Timeout time.Duration

	// UpgradeInsecureAssets rewrites non-loopback http:// asset URLs to https://
	UpgradeInsecureAssets bool

	SessionExpiredPolicy SessionExpiredPolicy

	// RequestsPerSecond, when positive, throttles outbound calls. Burst defaults to 1.
	RequestsPerSecond float64
	Burst             int

	// Language of user-facing messages ("en" or "zh")
	Language string

	Logger *slog.Logger

	// Transport is the underlying round tripper, http.DefaultTransport when nil
	Transport http.RoundTripper
}

// Client handles communication with one travel API surface
type Client struct {
	baseURL       string
	assetURL      string
	upgradeAssets bool
	policy        SessionExpiredPolicy
	httpClient    *http.Client
	limiter       *rate.Limiter
	printer       *message.Printer
	logger        *slog.Logger
	session       *session.Session
	effects       PlatformEffects
}

// New creates a client. sess is held by reference: logins and logouts made through any holder are visible to the client.
func New(opts Options, sess *session.Session, effects PlatformEffects) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	if effects == nil {
		effects = NopEffects{}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	assetURL := strings.TrimRight(opts.AssetURL, "/")
	if assetURL == "" {
		assetURL = originOf(baseURL)
	}

	c := &Client{
		baseURL:       baseURL,
		assetURL:      assetURL,
		upgradeAssets: opts.UpgradeInsecureAssets,
		policy:        opts.SessionExpiredPolicy,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: logger.Transport(opts.Transport, log),
		},
		printer: newPrinter(opts.Language),
		logger:  log,
		session: sess,
		effects: effects,
	}

	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return c
}

// Session returns the session the client authenticates with
func (c *Client) Session() *session.Session {
	return c.session
}

// BaseURL returns the API root the client was configured with
func (c *Client) BaseURL() string {
	return c.baseURL
}

// originOf returns scheme://host of rawURL, or rawURL itself when it has no path component
func originOf(rawURL string) string {
	schemeEnd := strings.Index(rawURL, "://")
	if schemeEnd < 0 {
		return rawURL
	}
	if slash := strings.Index(rawURL[schemeEnd+3:], "/"); slash >= 0 {
		return rawURL[:schemeEnd+3+slash]
	}
	return rawURL
}
