package cidsdk

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/cidverse/cid-sdk-go/common"
)

// Health reports whether the daemon answered GET /health with a 2xx status.
// It never fails, every error counts as unhealthy.
func (c *Client) Health() bool {
	err := c.get(common.PathHealth, common.PathHealth, nil, nil)
	if err != nil {
		c.log.Debug("health check failed: %v", err)
		return false
	}
	return true
}

func (c *Client) Log(msg LogMessage) error {
	if msg.Level == "" {
		msg.Level = common.LogLevelInfo
	}
	if msg.Context == nil {
		msg.Context = map[string]any{}
	}
	return c.postJSON(common.PathLog, common.PathLog, &msg, nil)
}

func (c *Client) CurrentConfig() (*ConfigCurrent, error) {
	var cfg ConfigCurrent
	if err := c.get(common.PathConfigCurrent, common.PathConfigCurrent, nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Client) Env() (map[string]string, error) {
	env := map[string]string{}
	if err := c.get(common.PathEnv, common.PathEnv, nil, &env); err != nil {
		return nil, err
	}
	return env, nil
}

func (c *Client) Modules() ([]ProjectModule, error) {
	var modules []ProjectModule
	if err := c.get(common.PathModule, common.PathModule, nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (c *Client) CurrentModule() (*ProjectModule, error) {
	var module ProjectModule
	if err := c.get(common.PathModuleCurrent, common.PathModuleCurrent, nil, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *Client) VCSCommits(req VCSCommitsRequest) ([]VCSCommit, error) {
	query := url.Values{}
	query.Set("from", req.From)
	query.Set("to", req.To)
	query.Set("limit", strconv.Itoa(req.Limit))
	query.Set("changes", strconv.FormatBool(req.Changes))

	var commits []VCSCommit
	if err := c.get(common.PathVCSCommit, common.PathVCSCommit, query, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

func (c *Client) VCSCommitByHash(hash string, changes bool) (*VCSCommit, error) {
	query := url.Values{}
	query.Set("changes", strconv.FormatBool(changes))

	var commit VCSCommit
	path := common.PathVCSCommit + "/" + url.PathEscape(hash)
	if err := c.get(common.PathVCSCommit+"/{hash}", path, query, &commit); err != nil {
		return nil, err
	}
	return &commit, nil
}

func (c *Client) VCSTags() ([]VCSTag, error) {
	var tags []VCSTag
	if err := c.get(common.PathVCSTag, common.PathVCSTag, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// VCSReleases lists releases, releaseType filters by type when not empty.
func (c *Client) VCSReleases(releaseType string) ([]VCSRelease, error) {
	var query url.Values
	if releaseType != "" {
		query = url.Values{"type": {releaseType}}
	}
	var releases []VCSRelease
	if err := c.get(common.PathVCSRelease, common.PathVCSRelease, query, &releases); err != nil {
		return nil, err
	}
	return releases, nil
}

// ExecuteCommand runs cmd through the daemon. A non-zero exit code is not
// an error, check the result.
func (c *Client) ExecuteCommand(cmd CommandExecution) (*CommandExecutionResult, error) {
	var result CommandExecutionResult
	if err := c.postJSON(common.PathCommand, common.PathCommand, &cmd, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Artifacts(req ArtifactListRequest) ([]ArtifactFile, error) {
	query := url.Values{}
	query.Set("module", req.Module)
	query.Set("type", req.Type)
	query.Set("name", req.Name)
	query.Set("format", req.Format)
	query.Set("format_version", req.FormatVersion)

	var artifacts []ArtifactFile
	if err := c.get(common.PathArtifact, common.PathArtifact, query, &artifacts); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (c *Client) UUID() string {
	return NewUUID()
}

// NewUUID returns a random v4 uuid, it is generated locally.
func NewUUID() string {
	return uuid.NewString()
}
