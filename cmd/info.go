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
	logLevel string

	logFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "level, l",
			Usage:       "log level: debug, info, warn or error",
			Value:       "info",
			Destination: &logLevel,
		},
	}
)

func health(ctx *cli.Context) error {
	return withClient(ctx, "health", func(client *cidsdk.Client) (string, error) {
		if !client.Health() {
			return "check", errors.New("daemon is not healthy")
		}
		fmt.Println("healthy")
		return "", nil
	})
}

func currentConfig(ctx *cli.Context) error {
	return withClient(ctx, "config", func(client *cidsdk.Client) (string, error) {
		cfg, err := client.CurrentConfig()
		if err != nil {
			return "get_config", err
		}
		return printResult(cfg)
	})
}

func env(ctx *cli.Context) error {
	return withClient(ctx, "env", func(client *cidsdk.Client) (string, error) {
		vars, err := client.Env()
		if err != nil {
			return "get_env", err
		}
		return printResult(vars)
	})
}

func logMessage(ctx *cli.Context) error {
	msg := strings.Join(ctx.Args(), " ")
	if msg == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no message provided"))
	}
	return withClient(ctx, "log", func(client *cidsdk.Client) (string, error) {
		return "send", client.Log(cidsdk.LogMessage{Level: logLevel, Message: msg})
	})
}

func newUUID(ctx *cli.Context) error {
	fmt.Println(cidsdk.NewUUID())
	return nil
}
