package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/cidverse/cid-sdk-go/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

var osExit = os.Exit

func main() {
	osExit(runMain(os.Args, func(args []string) error {
		return cmd.Execute(args, cmd.BuildArgs{
			Version:   version,
			Commit:    commit,
			Date:      date,
			BuildType: buildType,
		})
	}))
}

func runMain(args []string, execute func([]string) error) int {
	err := execute(args)
	if err == nil {
		return 0
	}
	// runtime errors were already printed by the command
	if !errors.Is(err, cmd.ErrCommandFailed) {
		fmt.Printf("cidsdk: %s\n", err.Error())
	}
	return 1
}
