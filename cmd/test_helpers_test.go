package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/cidverse/cid-sdk-go/pkg/cidsdk/cidsdktest"
)

// captureStdio captures stdout and stderr during function execution.
func captureStdio(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	// drain concurrently so large outputs do not block the writer
	var bufOut, bufErr bytes.Buffer
	done := make(chan struct{}, 2)
	go func() { _, _ = io.Copy(&bufOut, rOut); done <- struct{}{} }()
	go func() { _, _ = io.Copy(&bufErr, rErr); done <- struct{}{} }()

	f()

	wOut.Close()
	wErr.Close()
	<-done
	<-done
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	rOut.Close()
	rErr.Close()

	return bufOut.String(), bufErr.String()
}

// run executes the cli with args and returns its error and output.
func run(args ...string) (stdout, stderr string, err error) {
	stdout, stderr = captureStdio(func() {
		err = Execute(append([]string{"cidsdk"}, args...), BuildArgs{
			Version:   "1.0.0",
			BuildType: "test",
			Date:      "2024-01-01",
			Commit:    "abc123",
		})
	})
	return stdout, stderr, err
}

// runAgainst runs a command against srv.
func runAgainst(srv *cidsdktest.Server, args ...string) (stdout, stderr string, err error) {
	return run(append([]string{"--endpoint", srv.Endpoint()}, args...)...)
}

// clearEnv unsets the daemon variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CID_API_SOCKET", "CID_API_ADDR", "CID_API_SECRET"} {
		old, ok := os.LookupEnv(key)
		_ = os.Unsetenv(key)
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(key, old)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

// assertContains checks if output contains the expected substring.
func assertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, output)
	}
}

// assertNotContains checks if output does NOT contain the specified substring.
func assertNotContains(t *testing.T, output, notExpected string) {
	t.Helper()
	if strings.Contains(output, notExpected) {
		t.Errorf("expected output to NOT contain %q, got:\n%s", notExpected, output)
	}
}

// assertErrorFormat checks that error output follows the standard format:
// cidsdk: cmd[action]: msg
func assertErrorFormat(t *testing.T, output, cmd, action string) {
	t.Helper()
	pattern := "cidsdk: " + cmd + "[" + action + "]:"
	if !strings.Contains(output, pattern) {
		t.Errorf("expected error format %q, got:\n%s", pattern, output)
	}
}

// assertContainsAll checks that output contains all expected substrings.
func assertContainsAll(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			t.Errorf("expected output to contain %q, got:\n%s", exp, output)
		}
	}
}
