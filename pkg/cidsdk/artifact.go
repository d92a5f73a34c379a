package cidsdk

import "io"

type ArtifactFile struct {
	BuildID       string `json:"build_id"`
	JobID         string `json:"job_id"`
	ID            string `json:"id"`
	Module        string `json:"module"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	Format        string `json:"format"`
	FormatVersion string `json:"format_version"`
}

// ArtifactListRequest filters artifacts, empty fields match everything.
type ArtifactListRequest struct {
	Module        string
	Type          string
	Name          string
	Format        string
	FormatVersion string
}

type ArtifactUploadRequest struct {
	// File is the local path of the file to upload.
	File string
	// Module defaults to "root".
	Module        string
	Type          string
	Format        string
	FormatVersion string
}

// ProgressFunc wraps the body of a download, total is -1 if unknown.
type ProgressFunc func(body io.Reader, total int64) io.Reader

type ArtifactDownloadRequest struct {
	ID string
	// Name is the artifact file name.
	Name string
	// Module defaults to "root".
	Module string
	Type   string
	// TargetFile is the local path the artifact is written to.
	TargetFile string
	Progress   ProgressFunc
}
