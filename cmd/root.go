package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fumosclub/fumosync/cmd/initialize"
	"github.com/fumosclub/fumosync/cmd/login"
	"github.com/fumosclub/fumosync/cmd/logout"
	"github.com/fumosclub/fumosync/cmd/pull"
	"github.com/fumosclub/fumosync/cmd/push"
	"github.com/fumosclub/fumosync/cmd/util"
	"github.com/fumosclub/fumosync/cmd/version"
)

// verboseLogKey is the environment variable used to enable verbose logging.
// When it's set to `true`, Debug events are logged, rather than just Info and
// above.
const verboseLogKey = "FUMOSYNC_LOG_VERBOSE"

// Execute runs the main CLI process.
func Execute() {
	if os.Getenv(verboseLogKey) == "true" {
		log.SetLevel(log.DebugLevel)
	}

	rootCmd := &cobra.Command{
		Use:          "fumosync",
		Short:        "Sync scripts between fumosclub and local files",
		SilenceUsage: true,

		// The call to rootCmd.Execute prints the error, so we silence errors
		// here to avoid double printing.
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		initialize.New(),
		login.New(),
		logout.New(),
		pull.New(),
		push.New(),
		version.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		util.HandleFatalError(err)
	}
}
