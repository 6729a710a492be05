package logout

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fumosclub/fumosync/cmd/util"
	"github.com/fumosclub/fumosync/pkg/config"
	"github.com/fumosclub/fumosync/pkg/errors"
)

// New creates a new `logout` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run() error {
	cfg, err := config.ParseUser()
	if err != nil {
		if _, ok := errors.RootCause(err).(errors.FileNotFound); ok {
			fmt.Println("Not logged in. Nothing to do.")
			return nil
		}
		return errors.WithContext(err, "parse user config")
	}

	cfg.Token = ""
	if err := config.WriteUser(cfg); err != nil {
		return errors.WithContext(err, "write user config")
	}

	fmt.Println("Logged out.")
	return nil
}
