package login

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fumosclub/fumosync/cmd/util"
	"github.com/fumosclub/fumosync/pkg/config"
	"github.com/fumosclub/fumosync/pkg/errors"
)

// Mocked for unit testing.
var (
	stdout          io.Writer = os.Stdout
	stdin           io.Reader = os.Stdin
	parseUserConfig           = config.ParseUser
	writeUserConfig           = config.WriteUser
)

// New creates a new `login` command.
func New() *cobra.Command {
	var token, endpoint string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the session used to read and update scripts",
		Long: "Store the session used to read and update scripts.\n" +
			"Copy the value of the session cookie from a logged in browser.",
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			if err := Main(token, endpoint); err != nil {
				util.HandleFatalError(err)
			}
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Session token. "+
		"Optional: If not set, `fumosync login` will prompt for it.")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "API endpoint of the service. "+
		"Optional: Defaults to the previously stored endpoint, or "+config.DefaultEndpoint+".")
	return cmd
}

// Main stores `token` and `endpoint` in the user config.
func Main(token, endpoint string) error {
	if token == "" {
		var err error
		token, err = util.Prompt(stdin, stdout, "Session token")
		if err != nil {
			return errors.WithContext(err, "prompt")
		}
	}

	if token == "" {
		return errors.NewFriendlyError("A session token is required.\n" +
			"Please provide it with `fumosync login --token <token>`")
	}

	cfg, err := parseUserConfig()
	if err != nil {
		if _, ok := errors.RootCause(err).(errors.FileNotFound); !ok {
			return errors.WithContext(err, "parse user config")
		}
		cfg = config.User{}
	}

	cfg.Token = token
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if err := writeUserConfig(cfg); err != nil {
		return errors.WithContext(err, "write user config")
	}

	fmt.Fprintln(stdout, "Successfully logged in.")
	return nil
}
