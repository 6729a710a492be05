package pull

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fumosclub/fumosync/cmd/util"
	"github.com/fumosclub/fumosync/pkg/errors"
	"github.com/fumosclub/fumosync/pkg/project"
)

// New creates a new `pull` command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <script-id> <directory>",
		Short: "Download a script into a new project linked to it",
		Long: "Download a script into a new project, and link the project to the\n" +
			"script so that `fumosync push` updates it. The directory must not exist.",
		Args: cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			if err := run(args[0], args[1]); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
}

func run(scriptID, dir string) error {
	c, err := util.NewClient()
	if err != nil {
		return err
	}

	ctx, cancel := util.SignalContext()
	defer cancel()

	if err := project.Pull(ctx, c, scriptID, dir); err != nil {
		return errors.WithContext(err, "pull")
	}

	fmt.Printf("Pulled script %s into %s\n", scriptID, dir)
	return nil
}
