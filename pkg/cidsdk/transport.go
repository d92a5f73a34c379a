package cidsdk

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/cidverse/cid-sdk-go/pkg/logger"
)

// newHTTPClient builds the http client for cfg. In socket mode every
// connection goes to cfg.Socket no matter which host the request names.
func newHTTPClient(cfg Config, timeout time.Duration, log logger.Logger) *http.Client {
	transport := &http.Transport{
		// the daemon is always local, never go through a proxy
		Proxy:                 nil,
		ResponseHeaderTimeout: timeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          10,
	}
	if cfg.Socket != "" {
		socket := cfg.Socket
		transport.DialContext = func(ctx context.Context, _, _ string) (net.Conn, error) {
			log.Debug("dialing socket %s", socket)
			return dialSocket(ctx, socket)
		}
	} else {
		transport.DialContext = (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext
	}
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
