package cidsdk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/cidverse/cid-sdk-go/pkg/cidsdk/cidsdktest"
	"github.com/cidverse/cid-sdk-go/pkg/logger"
)

// trackingFs counts opened and closed files.
type trackingFs struct {
	afero.Fs
	mu     sync.Mutex
	opened int
	closed int
}

func (fs *trackingFs) track(f afero.File, err error) (afero.File, error) {
	if err != nil {
		return f, err
	}
	fs.mu.Lock()
	fs.opened++
	fs.mu.Unlock()
	return &trackedFile{File: f, fs: fs}, nil
}

func (fs *trackingFs) Create(name string) (afero.File, error) {
	return fs.track(fs.Fs.Create(name))
}

func (fs *trackingFs) Open(name string) (afero.File, error) {
	return fs.track(fs.Fs.Open(name))
}

func (fs *trackingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	return fs.track(fs.Fs.OpenFile(name, flag, perm))
}

func (fs *trackingFs) leaked() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.opened - fs.closed
}

type trackedFile struct {
	afero.File
	fs   *trackingFs
	once sync.Once
}

func (f *trackedFile) Close() error {
	f.once.Do(func() {
		f.fs.mu.Lock()
		f.fs.closed++
		f.fs.mu.Unlock()
	})
	return f.File.Close()
}

func listDir(t *testing.T, fs afero.Fs, dir string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		t.Fatalf("ReadDir(%s) error = %v", dir, err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUploadArtifact(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	type upload struct {
		fileName      string
		content       string
		typ           string
		module        string
		format        string
		formatVersion string
	}
	var got upload
	srv.Handle("POST /artifact", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		got = upload{
			fileName:      header.Filename,
			content:       string(content),
			typ:           r.FormValue("type"),
			module:        r.FormValue("module"),
			format:        r.FormValue("format"),
			formatVersion: r.FormValue("format_version"),
		}
		w.WriteHeader(http.StatusCreated)
	})

	fs := &trackingFs{Fs: afero.NewMemMapFs()}
	if err := afero.WriteFile(fs.Fs, "/project/.dist/report.sarif.json", []byte(`{"runs":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	client := newTestClient(t, srv, WithFs(fs))

	err := client.UploadArtifact(ArtifactUploadRequest{
		File:          "/project/.dist/report.sarif.json",
		Type:          "report",
		Format:        "sarif",
		FormatVersion: "2.1.0",
	})
	if err != nil {
		t.Fatalf("UploadArtifact() error = %v", err)
	}

	want := upload{
		fileName:      "report.sarif.json",
		content:       `{"runs":[]}`,
		typ:           "report",
		module:        "root",
		format:        "sarif",
		formatVersion: "2.1.0",
	}
	if got != want {
		t.Errorf("upload = %+v, want %+v", got, want)
	}
	if ct := srv.LastRequest().ContentType; !strings.HasPrefix(ct, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q", ct)
	}
	if n := fs.leaked(); n != 0 {
		t.Errorf("%d file handles left open", n)
	}
}

func TestUploadArtifact_MissingFile(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	client := newTestClient(t, srv, WithFs(afero.NewMemMapFs()))

	err := client.UploadArtifact(ArtifactUploadRequest{File: "/missing", Type: "binary"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("UploadArtifact() error = %v, want os.ErrNotExist", err)
	}
	if len(srv.Requests()) != 0 {
		t.Errorf("no request expected for a missing file")
	}
}

func TestUploadArtifact_Rejected(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	srv.HandleError("POST /artifact", http.StatusBadRequest, "bad request", "artifact already exists")

	fs := &trackingFs{Fs: afero.NewMemMapFs()}
	if err := afero.WriteFile(fs.Fs, "/app", bytes.Repeat([]byte("x"), 256<<10), 0o644); err != nil {
		t.Fatal(err)
	}
	client := newTestClient(t, srv, WithFs(fs))

	err := client.UploadArtifact(ArtifactUploadRequest{File: "/app", Type: "binary"})
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Details != "artifact already exists" {
		t.Fatalf("UploadArtifact() error = %v, want the daemon error", err)
	}
	if n := fs.leaked(); n != 0 {
		t.Errorf("%d file handles left open", n)
	}
}

func TestDownloadArtifact(t *testing.T) {
	content := bytes.Repeat([]byte("0123456789"), 10_000)
	srv := cidsdktest.NewServer(t)
	srv.Handle("GET /artifact/download", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Length", fmt.Sprint(len(content)))
		_, _ = w.Write(content)
	})

	fs := &trackingFs{Fs: afero.NewMemMapFs()}
	client := newTestClient(t, srv, WithFs(fs))

	err := client.DownloadArtifact(ArtifactDownloadRequest{
		ID:         "api|binary|app",
		Name:       "app",
		Type:       "binary",
		TargetFile: "/project/.tmp/app",
	})
	if err != nil {
		t.Fatalf("DownloadArtifact() error = %v", err)
	}

	got, err := afero.ReadFile(fs.Fs, "/project/.tmp/app")
	if err != nil {
		t.Fatalf("target missing: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("downloaded %d bytes, want %d", len(got), len(content))
	}
	if names := listDir(t, fs.Fs, "/project/.tmp"); len(names) != 1 || names[0] != "app" {
		t.Errorf("directory content = %v, want only app", names)
	}
	if n := fs.leaked(); n != 0 {
		t.Errorf("%d file handles left open", n)
	}

	assertQuery(t, srv.LastRequest().RawQuery, map[string][]string{
		"id":     {"api|binary|app"},
		"name":   {"app"},
		"module": {"root"},
		"type":   {"binary"},
	})
}

func TestDownloadArtifact_Truncated(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	srv.Handle("GET /artifact/download", func(w http.ResponseWriter, _ *http.Request) {
		conn, buf, err := http.NewResponseController(w).Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		defer conn.Close()
		_, _ = buf.WriteString("HTTP/1.1 200 OK\r\nContent-Type: application/octet-stream\r\nContent-Length: 1000\r\n\r\n")
		_, _ = buf.WriteString("only a few bytes")
		_ = buf.Flush()
	})

	fs := &trackingFs{Fs: afero.NewMemMapFs()}
	if err := fs.Fs.MkdirAll("/out", 0o755); err != nil {
		t.Fatal(err)
	}
	client := newTestClient(t, srv, WithFs(fs))

	err := client.DownloadArtifact(ArtifactDownloadRequest{ID: "root|binary|app", TargetFile: "/out/app"})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("DownloadArtifact() error = %v, want io.ErrUnexpectedEOF", err)
	}
	if names := listDir(t, fs.Fs, "/out"); len(names) != 0 {
		t.Errorf("partial files left behind: %v", names)
	}
	if n := fs.leaked(); n != 0 {
		t.Errorf("%d file handles left open", n)
	}
}

func TestDownloadArtifact_KeepsExistingTargetOnFailure(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	srv.HandleError("GET /artifact/download", http.StatusNotFound, "not found", "artifact root|binary|app")

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/out/app", []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}
	client := newTestClient(t, srv, WithFs(fs))

	err := client.DownloadArtifact(ArtifactDownloadRequest{ID: "root|binary|app", TargetFile: "/out/app"})
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("DownloadArtifact() error = %v, want *Error 404", err)
	}
	got, _ := afero.ReadFile(fs, "/out/app")
	if string(got) != "previous" {
		t.Errorf("existing target was modified: %q", got)
	}
	if names := listDir(t, fs, "/out"); len(names) != 1 {
		t.Errorf("directory content = %v", names)
	}
}

func TestDownloadArtifact_Progress(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	srv.HandleText("GET /artifact/download", http.StatusOK, "progress payload")

	var total int64
	var counted int
	progress := func(body io.Reader, size int64) io.Reader {
		total = size
		return readerFunc(func(p []byte) (int, error) {
			n, err := body.Read(p)
			counted += n
			return n, err
		})
	}

	fs := afero.NewMemMapFs()
	client := newTestClient(t, srv, WithFs(fs))
	err := client.DownloadArtifact(ArtifactDownloadRequest{ID: "x", TargetFile: "/app", Progress: progress})
	if err != nil {
		t.Fatalf("DownloadArtifact() error = %v", err)
	}
	if total != int64(len("progress payload")) || counted != len("progress payload") {
		t.Errorf("progress saw total=%d counted=%d", total, counted)
	}
}

func TestDownloadArtifact_EmptyTarget(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	client := newTestClient(t, srv, WithFs(afero.NewMemMapFs()))

	if err := client.DownloadArtifact(ArtifactDownloadRequest{ID: "x"}); err == nil {
		t.Error("DownloadArtifact() without target must fail")
	}
	if len(srv.Requests()) != 0 {
		t.Errorf("no request expected without a target")
	}
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestTransfer_LogsCompletion(t *testing.T) {
	srv := cidsdktest.NewServer(t)
	srv.HandleText("POST /artifact", http.StatusOK, "")
	srv.HandleText("GET /artifact/download", http.StatusOK, "payload")

	fs := afero.NewMemMapFs()
	writeFiles(t, fs, map[string]string{"/project/dist/app.tar.gz": "archive"})
	log := logger.NewMockLogger()
	client := newTestClient(t, srv, WithFs(fs), WithLogger(log))

	if err := client.UploadArtifact(ArtifactUploadRequest{File: "/project/dist/app.tar.gz", Type: "binary"}); err != nil {
		t.Fatalf("UploadArtifact() error = %v", err)
	}
	if err := client.DownloadArtifact(ArtifactDownloadRequest{Name: "app", Type: "binary", TargetFile: "/out/app"}); err != nil {
		t.Fatalf("DownloadArtifact() error = %v", err)
	}

	infos := log.Infos()
	want := []string{
		"uploaded artifact app.tar.gz (module root, type binary)",
		"downloaded artifact app to /out/app",
	}
	if len(infos) != len(want) {
		t.Fatalf("Infos() = %v, want %v", infos, want)
	}
	for i := range want {
		if infos[i] != want[i] {
			t.Errorf("Infos()[%d] = %q, want %q", i, infos[i], want[i])
		}
	}
}
