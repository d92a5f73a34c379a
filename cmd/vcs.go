package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/cidverse/cid-sdk-go/cmd/common"
	"github.com/cidverse/cid-sdk-go/pkg/cidsdk"
)

var (
	commitsFrom  string
	commitsTo    string
	commitsLimit int
	withChanges  bool
	releaseType  string

	commitsFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "from",
			Usage:       "start of the range, e.g. hash/<sha> or tag/<name>",
			Destination: &commitsFrom,
		},
		cli.StringFlag{
			Name:        "to",
			Usage:       "end of the range, e.g. hash/<sha> or tag/<name>",
			Destination: &commitsTo,
		},
		cli.IntFlag{
			Name:        "limit, n",
			Usage:       "maximum number of commits, 0 for no limit",
			Destination: &commitsLimit,
		},
		cli.BoolFlag{
			Name:        "changes, c",
			Usage:       "include the changed files (default: false)",
			Destination: &withChanges,
		},
	}

	commitFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "changes, c",
			Usage:       "include the changed files (default: false)",
			Destination: &withChanges,
		},
	}

	releasesFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "type",
			Usage:       "only list releases of this type",
			Destination: &releaseType,
		},
	}
)

func commits(ctx *cli.Context) error {
	return withClient(ctx, "commits", func(client *cidsdk.Client) (string, error) {
		list, err := client.VCSCommits(cidsdk.VCSCommitsRequest{
			From:    commitsFrom,
			To:      commitsTo,
			Changes: withChanges,
			Limit:   commitsLimit,
		})
		if err != nil {
			return "get_commits", err
		}
		return printResult(list)
	})
}

func commit(ctx *cli.Context) error {
	hash := ctx.Args().First()
	if hash == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("no commit hash provided"))
	}
	return withClient(ctx, "commit", func(client *cidsdk.Client) (string, error) {
		c, err := client.VCSCommitByHash(hash, withChanges)
		if err != nil {
			return "get_commit", err
		}
		return printResult(c)
	})
}

func tags(ctx *cli.Context) error {
	return withClient(ctx, "tags", func(client *cidsdk.Client) (string, error) {
		list, err := client.VCSTags()
		if err != nil {
			return "get_tags", err
		}
		return printResult(list)
	})
}

func releases(ctx *cli.Context) error {
	return withClient(ctx, "releases", func(client *cidsdk.Client) (string, error) {
		list, err := client.VCSReleases(releaseType)
		if err != nil {
			return "get_releases", err
		}
		return printResult(list)
	})
}
