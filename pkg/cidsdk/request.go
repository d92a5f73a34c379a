package cidsdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/cidverse/cid-sdk-go/common"
)

// maxErrorBody caps how much of a failed response is read.
const maxErrorBody = 1 << 20

// apiRequest describes one daemon call. route is the path template used as
// metrics label, accept defaults to JSON.
type apiRequest struct {
	method      string
	route       string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	accept      string
}

// addAuthHeader returns a copy of req carrying the bearer token. Without a
// secret the request is returned unchanged.
func addAuthHeader(req *http.Request, secret string) *http.Request {
	if secret == "" {
		return req
	}
	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+secret)
	return authed
}

func (c *Client) url(path string, query url.Values) string {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

// send executes r and returns the response for 2xx status codes, the
// caller must close its body. Every other outcome is mapped to *Error or
// *TransportError.
func (c *Client) send(r apiRequest) (*http.Response, error) {
	target := c.url(r.path, r.query)
	req, err := http.NewRequest(r.method, target, r.body)
	if err != nil {
		return nil, &TransportError{Method: r.method, URL: target, Err: err}
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	accept := r.accept
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)
	req = addAuthHeader(req, c.cfg.Secret)

	c.log.Debug("%s %s", r.method, target)
	start := time.Now()
	resp, err := c.http.Do(req)
	observeRequest(r.method, r.route, resp, start)
	if err != nil {
		c.log.Error("%s %s: %v", r.method, target, err)
		return nil, &TransportError{Method: r.method, URL: target, Err: err}
	}
	c.log.Debug("%s %s -> %s", r.method, target, resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		err := responseError(r.method, target, resp)
		c.log.Warning("%s %s: %v", r.method, target, err)
		return nil, err
	}
	return resp, nil
}

// responseError maps a non-2xx response. A JSON error document becomes
// *Error, anything else a *TransportError carrying the raw status.
func responseError(method, target string, resp *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	content := bytes.TrimSpace(raw)
	if readErr == nil && bytes.HasPrefix(content, []byte("{")) {
		var apiErr Error
		if err := json.Unmarshal(content, &apiErr); err == nil && !apiErr.isZero() {
			if apiErr.Status == 0 {
				apiErr.Status = resp.StatusCode
			}
			return &apiErr
		}
	}
	return &TransportError{
		Method:     method,
		URL:        target,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       truncate(string(content), 512),
		Err:        readErr,
	}
}

func (e *Error) isZero() bool {
	return e.Status == 0 && e.Title == "" && e.Details == ""
}

// do executes r and decodes the JSON response into out, a nil out
// discards the body.
func (c *Client) do(r apiRequest, out any) error {
	resp, err := c.send(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{
			Method:     r.method,
			URL:        c.url(r.path, r.query),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}

func (c *Client) get(route, path string, query url.Values, out any) error {
	return c.do(apiRequest{
		method: http.MethodGet,
		route:  route,
		path:   path,
		query:  query,
	}, out)
}

func (c *Client) postJSON(route, path string, in, out any) error {
	buf, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}
	return c.do(apiRequest{
		method:      http.MethodPost,
		route:       route,
		path:        path,
		body:        bytes.NewReader(buf),
		contentType: common.ContentTypeJSON,
	}, out)
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
