package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/cidverse/cid-sdk-go/cmd/common"
	"github.com/cidverse/cid-sdk-go/pkg/cidsdk"
)

var (
	captureOutput bool
	workDir       string
	constraint    string

	execFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "capture, c",
			Usage:       "return stdout and stderr instead of streaming them to the daemon log (default: false)",
			Destination: &captureOutput,
		},
		cli.StringFlag{
			Name:        "workdir, w",
			Usage:       "working directory of the command",
			Destination: &workDir,
		},
		cli.StringFlag{
			Name:        "constraint",
			Usage:       "version constraint of the executable, e.g. \">= 1.20.0\"",
			Destination: &constraint,
		},
		cli.IntSliceFlag{
			Name:  "port, p",
			Usage: "port to expose when the command runs in a container, may be repeated",
		},
		cli.StringSliceFlag{
			Name:  "env, e",
			Usage: "KEY=VALUE pair passed to the command, may be repeated",
		},
	}
)

func execute(ctx *cli.Context) error {
	command := strings.Join(ctx.Args(), " ")
	if command == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no command provided"))
	}
	cmdEnv, err := parseEnvPairs(ctx.StringSlice("env"))
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	return withClient(ctx, "exec", func(client *cidsdk.Client) (string, error) {
		result, err := client.ExecuteCommand(cidsdk.CommandExecution{
			Command:       command,
			CaptureOutput: captureOutput,
			WorkDir:       workDir,
			Env:           cmdEnv,
			Ports:         ctx.IntSlice("port"),
			Constraint:    constraint,
		})
		if err != nil {
			return "execute", err
		}
		if action, err := printResult(result); err != nil {
			return action, err
		}
		if result.Failed() {
			return "result", fmt.Errorf("command exited with code %d", result.Code)
		}
		return "", nil
	})
}

func parseEnvPairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid env pair %q, expected KEY=VALUE", pair)
		}
		out[key] = value
	}
	return out, nil
}
