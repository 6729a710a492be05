package initialize

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fumosclub/fumosync/cmd/util"
	"github.com/fumosclub/fumosync/pkg/errors"
	"github.com/fumosclub/fumosync/pkg/project"
)

// New creates a new `init` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "init <directory>",
		Short: "Create a new project that isn't linked to a script yet",
		Long: "Create a new project in a directory that doesn't exist yet.\n" +
			"The project can be pushed once its scriptId is set in fumosync.json, " +
			"or use `fumosync pull` to start from an existing script.",
		Args: cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if err := run(args[0]); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run(dir string) error {
	if err := project.Init(dir); err != nil {
		return errors.WithContext(err, "init")
	}

	fmt.Printf("Created project in %s\n", dir)
	return nil
}
