package cidsdk

import (
	"errors"
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/cidverse/cid-sdk-go/common"
)

// DaemonURI represents a parsed daemon endpoint.
type DaemonURI struct {
	Scheme string // "unix", "pipe", "tcp", "http" or "https"
	// Address is the socket path for unix and pipe, and the base url
	// for tcp, http and https.
	Address string
}

// Supported URI schemes
const (
	SchemeUnix  = "unix"
	SchemePipe  = "pipe"
	SchemeTCP   = "tcp"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

var (
	ErrEmptyURI          = errors.New("daemon URI cannot be empty")
	ErrUnsupportedScheme = errors.New("unsupported URI scheme")
	ErrInvalidPath       = errors.New("invalid path in URI")
	ErrPipeNotSupported  = errors.New("pipe:// scheme only supported on Windows")
)

// IsSocket reports whether the uri addresses a unix socket or named pipe.
func (u *DaemonURI) IsSocket() bool {
	return u.Scheme == SchemeUnix || u.Scheme == SchemePipe
}

// ParseDaemonURI parses a daemon endpoint string.
func ParseDaemonURI(rawURI string) (*DaemonURI, error) {
	rawURI = strings.TrimSpace(rawURI)
	if rawURI == "" {
		return nil, ErrEmptyURI
	}

	parsed, err := url.Parse(rawURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}

	switch strings.ToLower(parsed.Scheme) {
	case SchemeUnix:
		return parseUnixURI(parsed)
	case SchemePipe:
		return parsePipeURI(parsed)
	case SchemeTCP:
		return parseTCPURI(parsed)
	case SchemeHTTP, SchemeHTTPS:
		return parseHTTPURI(parsed)
	default:
		return nil, ErrUnsupportedScheme
	}
}

// parseUnixURI accepts unix:///absolute/path only.
func parseUnixURI(parsed *url.URL) (*DaemonURI, error) {
	// unix://relative/path puts "relative" into Host
	if parsed.Host != "" {
		return nil, ErrInvalidPath
	}
	if parsed.Path == "" || !strings.HasPrefix(parsed.Path, "/") {
		return nil, ErrInvalidPath
	}
	return &DaemonURI{
		Scheme:  SchemeUnix,
		Address: parsed.Path,
	}, nil
}

func parsePipeURI(parsed *url.URL) (*DaemonURI, error) {
	if runtime.GOOS != "windows" {
		return nil, ErrPipeNotSupported
	}
	pipeName := parsed.Host
	if pipeName == "" {
		return nil, ErrInvalidPath
	}
	if strings.HasPrefix(pipeName, common.PipePrefix) {
		return &DaemonURI{Scheme: SchemePipe, Address: pipeName}, nil
	}
	return &DaemonURI{
		Scheme:  SchemePipe,
		Address: common.PipePrefix + pipeName,
	}, nil
}

// parseTCPURI maps tcp://host[:port] to a plain http base url.
func parseTCPURI(parsed *url.URL) (*DaemonURI, error) {
	host := parsed.Host
	if host == "" {
		return nil, ErrInvalidPath
	}
	_, port, err := parseHostPort(host)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	if port == "" {
		host = fmt.Sprintf("%s:%d", host, common.DefaultTCPPort)
	} else if err := validatePort(port); err != nil {
		return nil, err
	}
	return &DaemonURI{
		Scheme:  SchemeTCP,
		Address: "http://" + host,
	}, nil
}

func parseHTTPURI(parsed *url.URL) (*DaemonURI, error) {
	if parsed.Host == "" {
		return nil, ErrInvalidPath
	}
	if _, port, err := parseHostPort(parsed.Host); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	} else if port != "" {
		if err := validatePort(port); err != nil {
			return nil, err
		}
	}
	scheme := strings.ToLower(parsed.Scheme)
	return &DaemonURI{
		Scheme:  scheme,
		Address: scheme + "://" + parsed.Host + strings.TrimRight(parsed.Path, "/"),
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%w: invalid port", ErrInvalidPath)
	}
	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("%w: port out of range", ErrInvalidPath)
	}
	return nil
}

// parseHostPort splits a host:port string, handling IPv6 addresses with brackets.
// Port may be empty if not present.
func parseHostPort(hostport string) (string, string, error) {
	if strings.HasPrefix(hostport, "[") {
		closeBracket := strings.Index(hostport, "]")
		if closeBracket == -1 {
			return "", "", errors.New("missing closing bracket in IPv6 address")
		}
		host := hostport[:closeBracket+1]
		remainder := hostport[closeBracket+1:]
		if remainder == "" {
			return host, "", nil
		}
		if !strings.HasPrefix(remainder, ":") {
			return "", "", errors.New("invalid format after IPv6 address")
		}
		return host, remainder[1:], nil
	}

	switch strings.Count(hostport, ":") {
	case 0:
		return hostport, "", nil
	case 1:
		parts := strings.Split(hostport, ":")
		return parts[0], parts[1], nil
	default:
		// bare IPv6 without port
		return hostport, "", nil
	}
}
