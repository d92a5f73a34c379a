package cidsdk

import (
	"net/http"
	"time"

	"github.com/spf13/afero"

	"github.com/cidverse/cid-sdk-go/common"
	"github.com/cidverse/cid-sdk-go/pkg/logger"
)

// Client talks to the CID daemon. It is immutable after construction and
// safe for concurrent use.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	fs      afero.Fs
	log     logger.Logger
}

type options struct {
	explicit Config
	lookup   LookupFunc
	fs       afero.Fs
	log      logger.Logger
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*options)

// WithSocket sets the daemon socket, overriding CID_API_SOCKET.
func WithSocket(path string) Option {
	return func(o *options) { o.explicit.Socket = path }
}

// WithEndpoint sets the daemon endpoint, overriding CID_API_ADDR.
func WithEndpoint(endpoint string) Option {
	return func(o *options) { o.explicit.Endpoint = endpoint }
}

// WithSecret sets the bearer token, overriding CID_API_SECRET.
func WithSecret(secret string) Option {
	return func(o *options) { o.explicit.Secret = secret }
}

// WithConfig sets all explicit connection settings at once.
func WithConfig(cfg Config) Option {
	return func(o *options) { o.explicit = cfg }
}

// WithLookupEnv replaces the environment used to resolve unset settings.
func WithLookupEnv(lookup LookupFunc) Option {
	return func(o *options) { o.lookup = lookup }
}

// WithFs sets the filesystem used by the file helpers and artifact
// transfers. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger sets the logger for request details. Defaults to stderr when
// CID_SDK_DEBUG=1, otherwise messages are discarded.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTimeout overrides the call timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// NewClient resolves the configuration and builds the transport.
// It fails with ErrNotConfigured if neither a socket nor an endpoint
// could be found.
func NewClient(opts ...Option) (*Client, error) {
	o := options{
		fs:      afero.NewOsFs(),
		timeout: common.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = defaultLogger()
	}

	cfg, err := ResolveConfig(o.explicit, o.lookup)
	if err != nil {
		return nil, err
	}
	o.log.Debug("resolved configuration:\n%s", cfg)

	return &Client{
		cfg:     cfg,
		baseURL: cfg.BaseURL(),
		http:    newHTTPClient(cfg, o.timeout, o.log),
		fs:      o.fs,
		log:     o.log,
	}, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() Config {
	return c.cfg
}
