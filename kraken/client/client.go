package client

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/betbot/gokraken/kraken/signing"
	"github.com/betbot/gokraken/kraken/types"
	"github.com/betbot/gokraken/pkg/ratelimit"
)

const (
	// DefaultBaseURL is the production REST endpoint.
	DefaultBaseURL = "https://api.kraken.com"
	// DefaultVersion is the REST API version path segment.
	DefaultVersion = "0"
	// DefaultTimeout bounds each HTTP call.
	DefaultTimeout = 30 * time.Second
	// DefaultIdentityCheckURL echoes the caller's apparent IP; used to
	// verify that a configured proxy actually changes it.
	DefaultIdentityCheckURL = "https://api.ipify.org?format=json"

	userAgent = "gokraken/1.0"
)

// Options configures a Client. Everything is supplied at construction;
// the session is immutable afterwards except for its nonce counter.
type Options struct {
	// BaseURL, Version and Timeout default to the production API.
	BaseURL string
	Version string
	Timeout time.Duration

	// Proxy optionally routes all calls through an anonymizing proxy,
	// e.g. socks5://127.0.0.1:9050 for a local Tor daemon. When set,
	// construction performs an identity check against IdentityCheckURL
	// and fails unless the apparent IP differs from the direct one.
	Proxy            string
	IdentityCheckURL string

	// Key and Secret enable private calls. Secret is base64 as issued
	// by the exchange; both empty means a public-only session.
	Key    string
	Secret string

	// OTP supplies a second-factor code per private call when
	// two-factor auth is enabled on the API key.
	OTP signing.OTPProvider

	// RateLimit optionally paces calls against the account's API
	// counter. Calls block until the counter has room; no retries.
	RateLimit *ratelimit.Counter

	// Logger defaults to the standard logrus logger.
	Logger *logrus.Logger
}

// Client is one session against the exchange. It is safe for
// concurrent use; nonce allocation is the only serialization point.
type Client struct {
	http    *resty.Client
	version string
	creds   *types.Credentials
	otp     signing.OTPProvider
	nonce   signing.NonceCounter
	limiter *ratelimit.Counter
	log     *logrus.Logger
}

// New builds a session from opts. Credential and proxy problems are
// configuration errors raised here, not on the first call.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.IdentityCheckURL == "" {
		opts.IdentityCheckURL = DefaultIdentityCheckURL
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	var creds *types.Credentials
	if opts.Key != "" || opts.Secret != "" {
		var err error
		creds, err = types.NewCredentials(opts.Key, opts.Secret)
		if err != nil {
			return nil, err
		}
	}
	if opts.OTP != nil && creds == nil {
		return nil, &types.ConfigError{Reason: "OTP configured without credentials"}
	}

	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", userAgent)

	if opts.Proxy != "" {
		rc.SetProxy(opts.Proxy)
		if err := verifyProxyIdentity(opts.Proxy, opts.IdentityCheckURL, opts.Timeout); err != nil {
			return nil, err
		}
	}

	return &Client{
		http:    rc,
		version: opts.Version,
		creds:   creds,
		otp:     opts.OTP,
		limiter: opts.RateLimit,
		log:     opts.Logger,
	}, nil
}

// HasCredentials reports whether the session can issue private calls.
func (c *Client) HasCredentials() bool {
	return c.creds != nil
}
