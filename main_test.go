package main

import (
	"errors"
	"os"
	"testing"

	"github.com/cidverse/cid-sdk-go/cmd"
)

func TestMainVersion(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"cidsdk", "version"}
	defer func() { os.Args = oldArgs }()
	oldExit := osExit
	osExit = func(code int) {
		if code != 0 {
			t.Fatalf("unexpected exit code: %d", code)
		}
	}
	defer func() { osExit = oldExit }()
	main()
}

func TestRunMainError(t *testing.T) {
	code := runMain([]string{"cidsdk"}, func([]string) error {
		return errors.New("boom")
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunMainCommandFailed(t *testing.T) {
	code := runMain([]string{"cidsdk"}, func([]string) error {
		return cmd.ErrCommandFailed
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}

func TestRunMainSuccess(t *testing.T) {
	code := runMain([]string{"cidsdk"}, func([]string) error { return nil })
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}
