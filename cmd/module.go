package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/cidverse/cid-sdk-go/pkg/cidsdk"
)

var (
	showTree bool

	modulesFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "tree, t",
			Usage:       "print the module tree instead of json (default: false)",
			Destination: &showTree,
		},
	}
)

func modules(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	return withClient(ctx, "modules", func(client *cidsdk.Client) (string, error) {
		list, err := client.Modules()
		if err != nil {
			return "get_modules", err
		}
		if !showTree {
			return printResult(list)
		}
		if len(list) == 0 {
			fmt.Println("cidsdk: no modules found")
			return "", nil
		}
		fmt.Print(moduleTree(list))
		return "", nil
	})
}

// moduleTree renders one line per module, indented by depth.
func moduleTree(list []cidsdk.ProjectModule) string {
	var sb strings.Builder
	for i := range list {
		list[i].Walk(func(m *cidsdk.ProjectModule, depth int) bool {
			sb.WriteString(strings.Repeat("  ", depth))
			sb.WriteString(m.Slug)
			if m.BuildSystem != "" {
				sb.WriteString(" (" + m.BuildSystem + ")")
			}
			sb.WriteString("\n")
			return true
		})
	}
	return sb.String()
}

func module(ctx *cli.Context) error {
	slug := ctx.Args().First()
	return withClient(ctx, "module", func(client *cidsdk.Client) (string, error) {
		if slug == "" {
			current, err := client.CurrentModule()
			if err != nil {
				return "get_current", err
			}
			return printResult(current)
		}
		list, err := client.Modules()
		if err != nil {
			return "get_modules", err
		}
		found := cidsdk.FindModule(list, slug)
		if found == nil {
			return "find", fmt.Errorf("module %q not found", slug)
		}
		return printResult(found)
	})
}
