//go:build windows

package cidsdk

import (
	"context"
	"net"
	"strings"

	"github.com/Microsoft/go-winio"
	"github.com/cidverse/cid-sdk-go/common"
)

// dialPipeFunc points to the named pipe dialer, tests replace it.
var dialPipeFunc = winio.DialPipeContext

// dialSocket connects to a named pipe when path carries the \\.\pipe\
// prefix and to an AF_UNIX socket otherwise.
func dialSocket(ctx context.Context, path string) (net.Conn, error) {
	if strings.HasPrefix(path, common.PipePrefix) {
		return dialPipeFunc(ctx, path)
	}
	var d net.Dialer
	return d.DialContext(ctx, "unix", path)
}
