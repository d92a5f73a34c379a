package cidsdk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// FileRead returns the content of the file at path.
func (c *Client) FileRead(path string) (string, error) {
	content, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(content), nil
}

// FileWrite creates or truncates the file at path.
func (c *Client) FileWrite(path, content string) error {
	if err := afero.WriteFile(c.fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FileDelete removes a file or an empty directory. It reports whether
// something was removed and never fails.
func (c *Client) FileDelete(path string) bool {
	if err := c.fs.Remove(path); err != nil {
		c.log.Debug("delete %s: %v", path, err)
		return false
	}
	return true
}

// FileList walks directory recursively and returns every visited path,
// directory itself included. With a non-nil extensions list only paths
// whose ExtensionWithDot is listed are returned.
func (c *Client) FileList(directory string, extensions []string) ([]string, error) {
	var files []string
	err := afero.Walk(c.fs, directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if extensions != nil && !slices.Contains(extensions, ExtensionWithDot(info.Name())) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", directory, err)
	}
	return files, nil
}

// FileCopy copies a file or a directory tree, existing targets are
// overwritten.
func (c *Client) FileCopy(source, target string) error {
	info, err := c.fs.Stat(source)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", source, err)
	}
	if !info.IsDir() {
		if err := clearTarget(c.fs, target, false); err != nil {
			return fmt.Errorf("failed to copy %s: %w", source, err)
		}
		return copyFile(c.fs, source, target, info.Mode())
	}

	return afero.Walk(c.fs, source, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(source, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(target, rel)
		if err := clearTarget(c.fs, dst, info.IsDir()); err != nil {
			return fmt.Errorf("failed to copy %s: %w", path, err)
		}
		if info.IsDir() {
			if err := c.fs.MkdirAll(dst, info.Mode().Perm()|0o700); err != nil {
				return fmt.Errorf("failed to copy %s: %w", path, err)
			}
			return nil
		}
		return copyFile(c.fs, path, dst, info.Mode())
	})
}

// clearTarget removes an existing target whose type differs from the
// source. Directories are merged, files are truncated by copyFile.
func clearTarget(fs afero.Fs, target string, sourceIsDir bool) error {
	info, err := fs.Stat(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() == sourceIsDir {
		return nil
	}
	return fs.RemoveAll(target)
}

func copyFile(fs afero.Fs, source, target string, mode os.FileMode) error {
	src, err := fs.Open(source)
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", source, err)
	}
	defer src.Close()

	if err := fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to copy %s: %w", source, err)
	}
	dst, err := fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to copy %s: %w", source, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", source, target, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", source, target, err)
	}
	return nil
}

// ExtensionWithDot returns everything after the first dot of name,
// including the dot: "archive.tar.gz" has the extension ".tar.gz".
// Names without a dot have no extension.
func ExtensionWithDot(name string) string {
	_, ext, found := strings.Cut(filepath.Base(name), ".")
	if !found {
		return ""
	}
	return "." + ext
}
