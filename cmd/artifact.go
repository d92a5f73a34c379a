package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"

	"github.com/cidverse/cid-sdk-go/cmd/common"
	"github.com/cidverse/cid-sdk-go/pkg/cidsdk"
)

var (
	artifactModule        string
	artifactType          string
	artifactName          string
	artifactFormat        string
	artifactFormatVersion string
	artifactID            string
	targetFile            string
	hideProgress          bool

	artifactsFlags = []cli.Flag{
		moduleFlag("only list artifacts of this module"),
		typeFlag("only list artifacts of this type"),
		cli.StringFlag{
			Name:        "name",
			Usage:       "only list artifacts with this file name",
			Destination: &artifactName,
		},
		formatFlag,
		formatVersionFlag,
	}

	uploadFlags = []cli.Flag{
		moduleFlag("module the artifact belongs to (default: root)"),
		typeFlag("artifact type, e.g. binary or report"),
		formatFlag,
		formatVersionFlag,
	}

	downloadFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "id",
			Usage:       "artifact id, <module>|<type>|<name>",
			Destination: &artifactID,
		},
		moduleFlag("module the artifact belongs to (default: root)"),
		typeFlag("artifact type, e.g. binary or report"),
		cli.StringFlag{
			Name:        "target, o",
			Usage:       "local file the artifact is written to (default: the artifact name)",
			Destination: &targetFile,
		},
		cli.BoolFlag{
			Name:        "quiet, q",
			Usage:       "do not show a progress bar (default: false)",
			Destination: &hideProgress,
		},
	}

	formatFlag = cli.StringFlag{
		Name:        "format",
		Usage:       "artifact format, e.g. sarif",
		Destination: &artifactFormat,
	}
	formatVersionFlag = cli.StringFlag{
		Name:        "format-version",
		Usage:       "version of the artifact format",
		Destination: &artifactFormatVersion,
	}
)

func moduleFlag(usage string) cli.Flag {
	return cli.StringFlag{
		Name:        "module",
		Usage:       usage,
		Destination: &artifactModule,
	}
}

func typeFlag(usage string) cli.Flag {
	return cli.StringFlag{
		Name:        "type, t",
		Usage:       usage,
		Destination: &artifactType,
	}
}

func artifacts(ctx *cli.Context) error {
	return withClient(ctx, "artifacts", func(client *cidsdk.Client) (string, error) {
		list, err := client.Artifacts(cidsdk.ArtifactListRequest{
			Module:        artifactModule,
			Type:          artifactType,
			Name:          artifactName,
			Format:        artifactFormat,
			FormatVersion: artifactFormatVersion,
		})
		if err != nil {
			return "get_artifacts", err
		}
		return printResult(list)
	})
}

func upload(ctx *cli.Context) error {
	file := ctx.Args().First()
	if file == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no file provided"))
	}
	if artifactType == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no artifact type provided"))
	}
	return withClient(ctx, "upload", func(client *cidsdk.Client) (string, error) {
		err := client.UploadArtifact(cidsdk.ArtifactUploadRequest{
			File:          file,
			Module:        artifactModule,
			Type:          artifactType,
			Format:        artifactFormat,
			FormatVersion: artifactFormatVersion,
		})
		if err != nil {
			return "upload", err
		}
		fmt.Printf("%s: uploaded %s\n", ctx.App.HelpName, file)
		return "", nil
	})
}

func download(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" && artifactID == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no artifact name or id provided"))
	}
	target := targetFile
	if target == "" {
		if name == "" {
			return common.PrintErrWithCmdHelp(ctx, errors.New("no target file provided"))
		}
		target = filepath.Base(name)
	}
	return withClient(ctx, "download", func(client *cidsdk.Client) (string, error) {
		req := cidsdk.ArtifactDownloadRequest{
			ID:         artifactID,
			Name:       name,
			Module:     artifactModule,
			Type:       artifactType,
			TargetFile: target,
		}
		var p *mpb.Progress
		var bar *mpb.Bar
		if !hideProgress {
			p = mpb.New(mpb.WithOutput(os.Stderr), mpb.WithWidth(64))
			req.Progress = func(body io.Reader, total int64) io.Reader {
				bar = common.InitBar(p, "Downloading", total)
				return bar.ProxyReader(body)
			}
		}
		err := client.DownloadArtifact(req)
		if p != nil {
			if bar != nil {
				if err != nil {
					bar.Abort(false)
				} else {
					bar.SetTotal(-1, true)
				}
			}
			p.Wait()
		}
		if err != nil {
			return "download", err
		}
		fmt.Printf("%s: downloaded %s\n", ctx.App.HelpName, target)
		return "", nil
	})
}
