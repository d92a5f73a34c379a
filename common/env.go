// Package common provides shared constants used by the CID SDK client and
// the cidsdk command-line front-end.
package common

// Environment variable names for configuration.
const (
	// SocketEnv is the environment variable holding the daemon unix socket
	// (or windows named pipe) path.
	SocketEnv = "CID_API_SOCKET"

	// EndpointEnv is the environment variable holding the daemon HTTP endpoint.
	EndpointEnv = "CID_API_ADDR"

	// SecretEnv is the environment variable holding the bearer token.
	SecretEnv = "CID_API_SECRET"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "CID_SDK_DEBUG"
)
