// Package cmd implements the cidsdk command-line interface. Every command
// maps to one SDK operation and prints its result as JSON.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"

	"github.com/cidverse/cid-sdk-go/cmd/common"
	"github.com/cidverse/cid-sdk-go/pkg/cidsdk"
)

// ErrCommandFailed is returned after a command printed its runtime error.
var ErrCommandFailed = errors.New("command failed")

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "cidsdk",
		HelpName:              "cidsdk",
		Usage:                 "Talk to the CID daemon from a CI job.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "cidsdk [global options] <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Flags:                 globalFlags,
		Before:                before,
		After:                 after,
		Commands: []cli.Command{
			{
				Name:   "health",
				Usage:  "checks whether the daemon is healthy",
				Action: health,
			},
			{
				Name:   "config",
				Usage:  "prints the current daemon configuration",
				Action: currentConfig,
			},
			{
				Name:   "env",
				Usage:  "prints the normalized ci environment",
				Action: env,
			},
			{
				Name:                   "modules",
				Aliases:                []string{"m"},
				Usage:                  "lists the project modules",
				Description:            ModulesDescription,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				OnUsageError:           common.UsageErrorCallback,
				UseShortOptionHandling: true,
				Action:                 modules,
				Flags:                  modulesFlags,
			},
			{
				Name:               "module",
				Usage:              "prints the current module or the module with the given slug",
				UsageText:          "module [slug]",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             module,
			},
			{
				Name:               "commits",
				Usage:              "lists commits in a range",
				Description:        CommitsDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             commits,
				Flags:              commitsFlags,
			},
			{
				Name:               "commit",
				Usage:              "prints a single commit",
				UsageText:          "commit <hash> [--changes]",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             commit,
				Flags:              commitFlags,
			},
			{
				Name:   "tags",
				Usage:  "lists the repository tags",
				Action: tags,
			},
			{
				Name:               "releases",
				Usage:              "lists the releases",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             releases,
				Flags:              releasesFlags,
			},
			{
				Name:                   "exec",
				Aliases:                []string{"x"},
				Usage:                  "executes a command through the daemon",
				UsageText:              "exec [flags] <command>",
				Description:            ExecDescription,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				OnUsageError:           common.UsageErrorCallback,
				UseShortOptionHandling: true,
				Action:                 execute,
				Flags:                  execFlags,
			},
			{
				Name:               "artifacts",
				Aliases:            []string{"a"},
				Usage:              "lists artifacts",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             artifacts,
				Flags:              artifactsFlags,
			},
			{
				Name:               "upload",
				Aliases:            []string{"u"},
				Usage:              "uploads a file as artifact",
				UsageText:          "upload --type <type> [flags] <file>",
				Description:        UploadDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             upload,
				Flags:              uploadFlags,
			},
			{
				Name:               "download",
				Aliases:            []string{"d"},
				Usage:              "downloads an artifact",
				UsageText:          "download --type <type> --target <file> [flags] <name>",
				Description:        DownloadDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             download,
				Flags:              downloadFlags,
			},
			{
				Name:               "log",
				Usage:              "writes a message to the daemon log",
				UsageText:          "log [--level <level>] <message>",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       common.UsageErrorCallback,
				Action:             logMessage,
				Flags:              logFlags,
			},
			{
				Name:   "uuid",
				Usage:  "prints a random uuid",
				Action: newUUID,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints the installed version of cidsdk",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}

// before loads the env file so its values take part in config resolution.
func before(ctx *cli.Context) error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}
	return nil
}

func after(ctx *cli.Context) error {
	if dumpMetrics {
		cidsdk.WriteMetrics(os.Stderr)
	}
	return nil
}
