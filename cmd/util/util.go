package util

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/fumosclub/fumosync/pkg/client"
	"github.com/fumosclub/fumosync/pkg/config"
	"github.com/fumosclub/fumosync/pkg/errors"
)

// Mocked for unit testing.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// HandleFatalError prints `err` and exits. Errors that carry a user facing
// message are printed as is. Otherwise the full chain of context is logged.
func HandleFatalError(err error) {
	var friendly errors.Friendly
	if errors.As(err, &friendly) {
		log.WithError(err).Debug("Fatal error")
		fmt.Fprintln(stderr, friendly.FriendlyMessage())
	} else {
		log.WithError(err).Error("Fatal error")
	}
	exit(1)
}

// HandlePanic logs panics with their stack trace before exiting. It must be
// deferred.
func HandlePanic() {
	if r := recover(); r != nil {
		log.WithField("stack", string(debug.Stack())).Errorf("Unexpected panic: %v", r)
		exit(1)
	}
}

// NewClient creates a client authenticated with the logged in session.
func NewClient() (client.Client, error) {
	endpoint, token, err := config.Session()
	if err != nil {
		return nil, errors.WithContext(err, "get session")
	}
	return client.New(endpoint, token), nil
}

// SignalContext returns a context that's cancelled when the process is
// interrupted.
func SignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(c)
	}()
	return ctx, cancel
}

// Prompt writes `msg` to `out` and reads a single line from `in`. Surrounding
// whitespace is trimmed from the answer.
func Prompt(in io.Reader, out io.Writer, msg string) (string, error) {
	fmt.Fprintf(out, "%s: ", msg)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(err == io.EOF && answer != "") {
		return "", errors.WithContext(err, "read answer")
	}
	return strings.TrimSpace(answer), nil
}
