package common

import "time"

const (
	// DefaultTimeout bounds a single call, including reading the response.
	// Commands executed by the daemon may run for a long time.
	DefaultTimeout = 30 * time.Minute

	// SocketBaseURL is the placeholder base url used in socket mode.
	// Host and port are ignored, the transport always dials the socket.
	SocketBaseURL = "http://localhost"

	// DefaultTCPPort is used for tcp:// endpoints without a port.
	DefaultTCPPort = 7400

	// PipePrefix is the path prefix of windows named pipes.
	PipePrefix = `\\.\pipe\`

	// DefaultModule is the module artifacts belong to when none is given.
	DefaultModule = "root"

	// LogLevelInfo is the level used when a log message has none.
	LogLevelInfo = "info"
)

// API paths served by the daemon.
const (
	PathHealth           = "/health"
	PathLog              = "/log"
	PathConfigCurrent    = "/config/current"
	PathEnv              = "/env"
	PathModule           = "/module"
	PathModuleCurrent    = "/module/current"
	PathVCSCommit        = "/vcs/commit"
	PathVCSTag           = "/vcs/tag"
	PathVCSRelease       = "/vcs/release"
	PathCommand          = "/command"
	PathArtifact         = "/artifact"
	PathArtifactDownload = "/artifact/download"
)

const (
	ContentTypeJSON   = "application/json; charset=utf-8"
	ContentTypeBinary = "application/octet-stream"
)
