//go:build !windows

package cidsdk

import (
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/cidverse/cid-sdk-go/pkg/cidsdk/cidsdktest"
)

func newSocketClient(t *testing.T, srv *cidsdktest.Server, opts ...Option) *Client {
	t.Helper()
	base := []Option{WithSocket(srv.Socket), WithLookupEnv(noEnv)}
	client, err := NewClient(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestSocket_AllOperations(t *testing.T) {
	srv := cidsdktest.NewSocketServer(t)
	srv.HandleText("GET /health", http.StatusOK, "")
	srv.HandleText("POST /log", http.StatusOK, "")
	srv.HandleJSON("GET /config/current", http.StatusOK, map[string]any{"project_dir": "/project"})
	srv.HandleJSON("GET /env", http.StatusOK, map[string]string{"NCI": "true"})
	srv.HandleJSON("GET /module", http.StatusOK, []map[string]any{{"slug": "root"}})
	srv.HandleJSON("GET /module/current", http.StatusOK, map[string]any{"slug": "root"})
	srv.HandleJSON("GET /vcs/commit", http.StatusOK, []map[string]any{{"hash": "aaa"}})
	srv.HandleJSON("GET /vcs/commit/{hash}", http.StatusOK, map[string]any{"hash": "aaa"})
	srv.HandleJSON("GET /vcs/tag", http.StatusOK, []map[string]any{{"value": "v1.0.0"}})
	srv.HandleJSON("GET /vcs/release", http.StatusOK, []map[string]any{{"version": "1.0.0"}})
	srv.HandleJSON("POST /command", http.StatusOK, map[string]any{"code": 0, "stdout": "ok"})
	srv.HandleJSON("GET /artifact", http.StatusOK, []map[string]any{{"id": "root|binary|app"}})
	srv.HandleText("POST /artifact", http.StatusOK, "")
	srv.HandleText("GET /artifact/download", http.StatusOK, "artifact content")

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/app", []byte("binary"), 0o644); err != nil {
		t.Fatal(err)
	}
	client := newSocketClient(t, srv, WithSecret("s3cr3t"), WithFs(fs))

	if client.Config().BaseURL() != "http://localhost" {
		t.Errorf("BaseURL() = %q, want the placeholder url", client.Config().BaseURL())
	}
	if !client.Health() {
		t.Fatal("Health() = false over the socket")
	}

	steps := []struct {
		name string
		call func() error
	}{
		{"Log", func() error { return client.Log(LogMessage{Message: "hello"}) }},
		{"CurrentConfig", func() error {
			cfg, err := client.CurrentConfig()
			if err == nil && cfg.ProjectDir != "/project" {
				return errors.New("wrong project dir")
			}
			return err
		}},
		{"Env", func() error { _, err := client.Env(); return err }},
		{"Modules", func() error { _, err := client.Modules(); return err }},
		{"CurrentModule", func() error { _, err := client.CurrentModule(); return err }},
		{"VCSCommits", func() error { _, err := client.VCSCommits(VCSCommitsRequest{Limit: 1}); return err }},
		{"VCSCommitByHash", func() error { _, err := client.VCSCommitByHash("aaa", false); return err }},
		{"VCSTags", func() error { _, err := client.VCSTags(); return err }},
		{"VCSReleases", func() error { _, err := client.VCSReleases(""); return err }},
		{"ExecuteCommand", func() error {
			res, err := client.ExecuteCommand(CommandExecution{Command: "echo ok", CaptureOutput: true})
			if err == nil && res.Stdout != "ok" {
				return errors.New("wrong stdout")
			}
			return err
		}},
		{"Artifacts", func() error { _, err := client.Artifacts(ArtifactListRequest{}); return err }},
		{"UploadArtifact", func() error {
			return client.UploadArtifact(ArtifactUploadRequest{File: "/work/app", Type: "binary"})
		}},
		{"DownloadArtifact", func() error {
			return client.DownloadArtifact(ArtifactDownloadRequest{ID: "root|binary|app", TargetFile: "/work/out/app"})
		}},
	}
	for _, step := range steps {
		if err := step.call(); err != nil {
			t.Errorf("%s() over socket error = %v", step.name, err)
		}
	}

	for _, req := range srv.Requests() {
		if req.Authorization != "Bearer s3cr3t" {
			t.Errorf("%s %s: Authorization = %q", req.Method, req.Path, req.Authorization)
		}
	}
	if len(srv.Requests()) != len(steps)+1 {
		t.Errorf("daemon received %d requests, want %d", len(srv.Requests()), len(steps)+1)
	}

	content, err := afero.ReadFile(fs, filepath.FromSlash("/work/out/app"))
	if err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}
	if string(content) != "artifact content" {
		t.Errorf("downloaded content = %q", content)
	}
}

func TestSocket_FromEnvironment(t *testing.T) {
	srv := cidsdktest.NewSocketServer(t)
	srv.HandleText("GET /health", http.StatusOK, "")

	client, err := NewClient(WithLookupEnv(envOf(map[string]string{
		"CID_API_SOCKET": srv.Socket,
		"CID_API_ADDR":   "http://127.0.0.1:1",
	})))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if !client.Health() {
		t.Error("socket from the environment must win over the endpoint")
	}
}

func TestSocket_UnixURIEndpoint(t *testing.T) {
	srv := cidsdktest.NewSocketServer(t)
	srv.HandleText("GET /health", http.StatusOK, "")

	client, err := NewClient(WithEndpoint("unix://"+srv.Socket), WithLookupEnv(noEnv))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.Config().Socket != srv.Socket {
		t.Errorf("Socket = %q, want %q", client.Config().Socket, srv.Socket)
	}
	if !client.Health() {
		t.Error("Health() = false over a unix:// endpoint")
	}
}

func TestSocket_Missing(t *testing.T) {
	client, err := NewClient(WithSocket(filepath.Join(t.TempDir(), "missing.sock")), WithLookupEnv(noEnv))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.Health() {
		t.Error("Health() = true without a daemon")
	}
	_, err = client.Env()
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Env() error = %v, want *TransportError", err)
	}
}
