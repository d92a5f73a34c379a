package cmd

import (
	"github.com/urfave/cli"

	"github.com/cidverse/cid-sdk-go/cmd/common"
	"github.com/cidverse/cid-sdk-go/pkg/cidsdk"
)

var (
	socketPath  string
	endpoint    string
	secret      string
	envFile     string
	dumpMetrics bool

	globalFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "socket",
			Usage:       "path of the daemon unix socket or named pipe (default: $CID_API_SOCKET)",
			Destination: &socketPath,
		},
		cli.StringFlag{
			Name:        "endpoint",
			Usage:       "daemon endpoint, e.g. http://localhost:7400 or unix:///run/cid.sock (default: $CID_API_ADDR)",
			Destination: &endpoint,
		},
		cli.StringFlag{
			Name:        "secret",
			Usage:       "bearer token sent to the daemon (default: $CID_API_SECRET)",
			Destination: &secret,
		},
		cli.StringFlag{
			Name:        "env-file",
			Usage:       "load environment variables from a .env file",
			Destination: &envFile,
		},
		cli.BoolFlag{
			Name:        "metrics",
			Usage:       "print request metrics to stderr when done (default: false)",
			Destination: &dumpMetrics,
		},
	}
)

// newClient builds the SDK client from the global flags, unset flags fall
// back to the environment.
func newClient() (*cidsdk.Client, error) {
	return cidsdk.NewClient(
		cidsdk.WithSocket(socketPath),
		cidsdk.WithEndpoint(endpoint),
		cidsdk.WithSecret(secret),
	)
}

// withClient runs fn with a fresh client and reports its error in the
// common runtime error format.
func withClient(ctx *cli.Context, cmd string, fn func(client *cidsdk.Client) (string, error)) error {
	client, err := newClient()
	if err != nil {
		common.PrintRuntimeErr(ctx, cmd, "new_client", err)
		return ErrCommandFailed
	}
	if action, err := fn(client); err != nil {
		common.PrintRuntimeErr(ctx, cmd, action, err)
		return ErrCommandFailed
	}
	return nil
}

// printResult prints v as JSON, it is the last step of every data command.
func printResult(v any) (string, error) {
	return "print", common.PrintJSON(v)
}
