package cidsdk

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/cidverse/cid-sdk-go/common"
)

// UploadArtifact stores a local file as artifact. The file is streamed,
// it is never held in memory as a whole.
func (c *Client) UploadArtifact(req ArtifactUploadRequest) error {
	if req.Module == "" {
		req.Module = common.DefaultModule
	}
	f, err := c.fs.Open(req.File)
	if err != nil {
		return fmt.Errorf("failed to open artifact %s: %w", req.File, err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	written := make(chan error, 1)
	go func() {
		err := writeArtifactForm(mw, f, req)
		_ = pw.CloseWithError(err)
		written <- err
	}()

	err = c.do(apiRequest{
		method:      http.MethodPost,
		route:       common.PathArtifact,
		path:        common.PathArtifact,
		body:        pr,
		contentType: mw.FormDataContentType(),
	}, nil)
	// unblocks the writer if the request ended before the body was consumed
	_ = pr.Close()
	if werr := <-written; werr != nil && !errors.Is(werr, io.ErrClosedPipe) {
		return fmt.Errorf("failed to upload artifact %s: %w", req.File, werr)
	}
	if err != nil {
		return err
	}
	c.log.Info("uploaded artifact %s (module %s, type %s)", filepath.Base(req.File), req.Module, req.Type)
	return nil
}

func writeArtifactForm(mw *multipart.Writer, file io.Reader, req ArtifactUploadRequest) error {
	part, err := mw.CreateFormFile("file", filepath.Base(req.File))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	fields := []struct{ name, value string }{
		{"type", req.Type},
		{"module", req.Module},
		{"format", req.Format},
		{"format_version", req.FormatVersion},
	}
	for _, field := range fields {
		if err := mw.WriteField(field.name, field.value); err != nil {
			return err
		}
	}
	return mw.Close()
}

// DownloadArtifact streams an artifact into req.TargetFile. The target is
// only replaced once the download completed, a failed download leaves no
// partial file behind.
func (c *Client) DownloadArtifact(req ArtifactDownloadRequest) error {
	if req.TargetFile == "" {
		return errors.New("download target file must not be empty")
	}
	if req.Module == "" {
		req.Module = common.DefaultModule
	}
	query := url.Values{}
	query.Set("id", req.ID)
	query.Set("name", req.Name)
	query.Set("module", req.Module)
	query.Set("type", req.Type)

	resp, err := c.send(apiRequest{
		method: http.MethodGet,
		route:  common.PathArtifactDownload,
		path:   common.PathArtifactDownload,
		query:  query,
		accept: common.ContentTypeBinary,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body io.Reader = resp.Body
	if req.Progress != nil {
		body = req.Progress(body, resp.ContentLength)
	}
	if err := writeFileAtomic(c.fs, req.TargetFile, body); err != nil {
		return err
	}
	c.log.Info("downloaded artifact %s to %s", req.Name, req.TargetFile)
	return nil
}

// writeFileAtomic copies r into a temporary file next to target and renames
// it into place. The temporary file is closed on every path and removed on
// failure.
func writeFileAtomic(fs afero.Fs, target string, r io.Reader) (err error) {
	dir := filepath.Dir(target)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(target)+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err = fs.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err = fs.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
