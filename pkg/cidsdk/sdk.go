package cidsdk

//go:generate mockgen -package=cidsdkmock -destination=cidsdkmock/mock_sdk.go github.com/cidverse/cid-sdk-go/pkg/cidsdk SDK

// SDK is the full surface of the CID SDK. Actions should depend on it
// instead of *Client so tests can substitute a mock.
type SDK interface {
	// Health reports whether the daemon is reachable and healthy.
	Health() bool
	// Log forwards a message to the daemon log.
	Log(msg LogMessage) error
	CurrentConfig() (*ConfigCurrent, error)
	// Env returns the normalized ci environment plus whitelisted variables.
	Env() (map[string]string, error)
	Modules() ([]ProjectModule, error)
	// CurrentModule is only available inside module-scoped actions.
	CurrentModule() (*ProjectModule, error)
	VCSCommits(req VCSCommitsRequest) ([]VCSCommit, error)
	VCSCommitByHash(hash string, changes bool) (*VCSCommit, error)
	VCSTags() ([]VCSTag, error)
	VCSReleases(releaseType string) ([]VCSRelease, error)
	ExecuteCommand(cmd CommandExecution) (*CommandExecutionResult, error)
	Artifacts(req ArtifactListRequest) ([]ArtifactFile, error)
	UploadArtifact(req ArtifactUploadRequest) error
	DownloadArtifact(req ArtifactDownloadRequest) error
	// UUID returns a random v4 uuid.
	UUID() string
	FileRead(path string) (string, error)
	FileList(directory string, extensions []string) ([]string, error)
	FileCopy(source, target string) error
	FileDelete(path string) bool
	FileWrite(path, content string) error
}

var _ SDK = (*Client)(nil)
