package push

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fumosclub/fumosync/cmd/util"
	"github.com/fumosclub/fumosync/pkg/errors"
	"github.com/fumosclub/fumosync/pkg/fswatch"
	"github.com/fumosclub/fumosync/pkg/project"
)

// settleTime is how long the project must go without changes before a
// watched push is sent. Editors often write several files per save.
const settleTime = 500 * time.Millisecond

// Mocked for unit testing.
var clock = clockwork.NewRealClock()

// New creates a new `push` command.
func New() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload the project in the current directory to its script",
		Long: "Upload the project in the current directory to the script it's\n" +
			"linked to. The remote script is overwritten with the local files.",
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if err := run(".", watch); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false,
		"Keep running, and push again whenever the project changes.")
	return cmd
}

func run(dir string, watch bool) error {
	// Check for the project before logging in so that running outside of a
	// project gets a helpful error.
	if _, err := project.ReadConfiguration(dir); err != nil {
		var readErr errors.ReadFileError
		if errors.As(err, &readErr) && os.IsNotExist(readErr.Err) {
			return errors.NewFriendlyError("There's no %s in this directory.\n"+
				"Run `fumosync pull` to create a project linked to a script.",
				project.ConfigurationFile)
		}
		return errors.WithContext(err, "read configuration")
	}

	c, err := util.NewClient()
	if err != nil {
		return err
	}

	ctx, cancel := util.SignalContext()
	defer cancel()

	if err := project.Push(ctx, c, dir); err != nil {
		return errors.WithContext(err, "push")
	}
	fmt.Println("Pushed project.")

	if !watch {
		return nil
	}

	events, err := fswatch.Watch(ctx, dir)
	if err != nil {
		return errors.WithContext(err, "watch project")
	}

	fmt.Println("Watching for changes. Press Ctrl-C to stop.")
	watchAndPush(ctx, events, func() error {
		return project.Push(ctx, c, dir)
	})
	return nil
}

// watchAndPush calls `push` once the changes signalled on `events` settle.
// Failed pushes are logged, and don't stop the watch. It returns when `ctx`
// is cancelled.
func watchAndPush(ctx context.Context, events <-chan struct{}, push func() error) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-events:
		}

		settled := clock.After(settleTime)
	wait:
		for {
			select {
			case <-ctx.Done():
				return
			case <-events:
				settled = clock.After(settleTime)
			case <-settled:
				break wait
			}
		}

		if err := push(); err != nil {
			log.WithError(err).Warn("Failed to push changes")
			continue
		}
		log.Info("Pushed changes")
	}
}
