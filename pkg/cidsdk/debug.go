package cidsdk

import (
	"log"
	"os"

	"github.com/cidverse/cid-sdk-go/common"
	"github.com/cidverse/cid-sdk-go/pkg/logger"
)

// debugMode returns true if CID_SDK_DEBUG=1
func debugMode() bool {
	return os.Getenv(common.DebugEnv) == "1"
}

// defaultLogger writes to stderr in debug mode and discards everything otherwise.
func defaultLogger() logger.Logger {
	if debugMode() {
		return logger.NewStandardLogger(log.New(os.Stderr, "cidsdk: ", log.LstdFlags))
	}
	return logger.NewNopLogger()
}
