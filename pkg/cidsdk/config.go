package cidsdk

import (
	"fmt"
	"os"
	"strings"

	"github.com/cidverse/cid-sdk-go/common"
)

// Config holds the connection settings of a Client.
type Config struct {
	// Socket is the path of the daemon unix socket or windows named pipe.
	Socket string
	// Endpoint is the base url of the daemon, used when Socket is empty.
	Endpoint string
	// Secret is sent as bearer token, it is optional.
	Secret string
}

// LookupFunc retrieves the value of an environment variable, see os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ResolveConfig fills the empty fields of explicit from the environment
// and validates the result. Explicit values take priority, empty values
// count as unset. A socket wins over an endpoint, an endpoint given as
// unix:// or pipe:// uri is turned into a socket.
func ResolveConfig(explicit Config, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Config{
		Socket:   firstNonEmpty(explicit.Socket, lookupValue(lookup, common.SocketEnv)),
		Endpoint: firstNonEmpty(explicit.Endpoint, lookupValue(lookup, common.EndpointEnv)),
		Secret:   firstNonEmpty(explicit.Secret, lookupValue(lookup, common.SecretEnv)),
	}

	if cfg.Socket != "" {
		cfg.Endpoint = ""
		return cfg, nil
	}
	if cfg.Endpoint == "" {
		return cfg, ErrNotConfigured
	}

	uri, err := ParseDaemonURI(cfg.Endpoint)
	if err != nil {
		return cfg, fmt.Errorf("%w %q: %w", ErrInvalidEndpoint, cfg.Endpoint, err)
	}
	if uri.IsSocket() {
		cfg.Socket = uri.Address
		cfg.Endpoint = ""
	} else {
		cfg.Endpoint = uri.Address
	}
	return cfg, nil
}

// BaseURL returns the url prefix all request paths are appended to.
func (c Config) BaseURL() string {
	if c.Socket != "" {
		return common.SocketBaseURL
	}
	return c.Endpoint
}

// String returns a formatted representation of the configuration with
// the secret masked.
func (c Config) String() string {
	var sb strings.Builder
	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-10s: %s\n", name, value))
	}

	sb.WriteString("CID API\n")
	if c.Socket != "" {
		addField("Transport", "socket")
		addField("Socket", c.Socket)
	} else {
		addField("Transport", "http")
		addField("Endpoint", c.Endpoint)
	}
	if c.Secret != "" {
		addField("Secret", "********")
	} else {
		addField("Secret", "<none>")
	}
	return sb.String()
}

func lookupValue(lookup LookupFunc, key string) string {
	v, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
