// Package cidsdktest provides a fake CID daemon for tests. It serves canned
// responses over TCP or a unix socket and records every request.
package cidsdktest

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// Request is a request received by the Server.
type Request struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	Body          []byte
}

// Server is a fake daemon. Register handlers before issuing requests.
type Server struct {
	*httptest.Server
	// Socket is the unix socket path, empty for TCP servers.
	Socket string

	mux      *http.ServeMux
	mu       sync.Mutex
	requests []Request
}

// NewServer starts a fake daemon listening on a TCP port on localhost.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := newServer()
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// NewSocketServer starts a fake daemon listening on a unix socket.
func NewSocketServer(t testing.TB) *Server {
	t.Helper()
	// sun_path is limited to ~104 bytes, t.TempDir() can be longer
	dir, err := os.MkdirTemp("", "cid")
	if err != nil {
		t.Fatalf("failed to create socket dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	socket := filepath.Join(dir, "api.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := newServer()
	s.Socket = socket
	s.Server = httptest.NewUnstartedServer(http.HandlerFunc(s.serve))
	_ = s.Server.Listener.Close()
	s.Server.Listener = listener
	s.Server.Start()
	t.Cleanup(s.Close)
	return s
}

func newServer() *Server {
	return &Server{mux: http.NewServeMux()}
}

// Endpoint returns the base url of a TCP server.
func (s *Server) Endpoint() string {
	return s.URL
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		RawQuery:      r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          body,
	})
	s.mu.Unlock()

	s.mux.ServeHTTP(w, r)
}

// Handle registers a handler, pattern follows http.ServeMux, e.g. "GET /module".
func (s *Server) Handle(pattern string, handler http.HandlerFunc) {
	s.mux.HandleFunc(pattern, handler)
}

// HandleJSON answers pattern with v encoded as JSON.
func (s *Server) HandleJSON(pattern string, status int, v any) {
	s.Handle(pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, v)
	})
}

// HandleError answers pattern with a daemon error document.
func (s *Server) HandleError(pattern string, status int, title, details string) {
	s.HandleJSON(pattern, status, map[string]any{
		"status":  status,
		"title":   title,
		"details": details,
	})
}

// HandleText answers pattern with a plain text body.
func (s *Server) HandleText(pattern string, status int, text string) {
	s.Handle(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, text)
	})
}

// Requests returns all requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request, the zero value if none was received.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// WriteJSON writes v as JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
