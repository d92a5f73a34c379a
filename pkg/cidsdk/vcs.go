package cidsdk

import "time"

type VCSCommit struct {
	HashShort   string      `json:"hash_short"`
	Hash        string      `json:"hash"`
	Message     string      `json:"message"`
	Description string      `json:"description"`
	Author      VCSAuthor   `json:"author"`
	Committer   VCSAuthor   `json:"committer"`
	Tags        []VCSTag    `json:"tags,omitzero"`
	AuthoredAt  time.Time   `json:"authored_at"`
	CommittedAt time.Time   `json:"committed_at"`
	Changes     []VCSChange `json:"changes,omitzero"`
}

type VCSAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VCSTag struct {
	RefType string `json:"type"`
	Value   string `json:"value"`
	Hash    string `json:"hash"`
}

type VCSRelease struct {
	Version string `json:"version"`
	Ref     VCSTag `json:"ref"`
}

// VCSChange is a file change of a commit.
type VCSChange struct {
	Type     string  `json:"type"`
	FileFrom VCSFile `json:"file_from"`
	FileTo   VCSFile `json:"file_to"`
	Patch    string  `json:"patch"`
}

type VCSFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Hash string `json:"hash"`
}

// VCSCommitsRequest selects the commits returned by VCSCommits.
type VCSCommitsRequest struct {
	// From and To are refs, e.g. "hash/<sha>" or "tag/v1.0.0". Empty means unbounded.
	From string
	To   string
	// Changes includes the file changes of each commit.
	Changes bool
	// Limit caps the number of commits, 0 means no limit.
	Limit int
}
