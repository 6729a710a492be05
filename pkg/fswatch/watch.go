package fswatch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/fumosclub/fumosync/pkg/errors"
	"github.com/fumosclub/fumosync/pkg/project"
)

var fs = afero.NewOsFs()

// Watch watches for changes to the synced files of the project rooted at
// `dir`. It sends an event on the returned channel whenever a file in the
// project root or its module directory changes. The watcher is closed when
// `ctx` is cancelled.
func Watch(ctx context.Context, dir string) (chan struct{}, error) {
	pathsToWatch, err := getPathsToWatch(dir)
	if err != nil {
		return nil, errors.WithContext(err, "get paths")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WithContext(err, "create watcher")
	}

	for _, path := range pathsToWatch {
		if err := watcher.Add(path); err != nil {
			// Close the watcher so that we release the file handlers for the
			// previously added paths.
			if err := watcher.Close(); err != nil {
				log.WithError(err).Warn("Failed to close file watcher")
			}

			return nil, errors.WithContext(err, fmt.Sprintf("watch %q", path))
		}
	}

	go func() {
		<-ctx.Done()
		if err := watcher.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file watcher")
		}
	}()
	return combineUpdates(watcher.Events), nil
}

func combineUpdates(updates <-chan fsnotify.Event) chan struct{} {
	combined := make(chan struct{}, 1)
	go func() {
		for range updates {
			select {
			case combined <- struct{}{}:
			default:
			}
		}
	}()
	return combined
}

// getPathsToWatch returns the directories that contain synced files.
// fsnotify doesn't watch recursively, but modules are never nested so the
// module directory itself is enough.
func getPathsToWatch(dir string) ([]string, error) {
	paths := []string{dir, filepath.Join(dir, project.ModuleDirectory)}
	for _, path := range paths {
		fi, err := fs.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.FileNotFound{Path: path}
			}
			return nil, errors.WithContext(err, "stat")
		}

		if !fi.IsDir() {
			return nil, errors.New("%q is not a directory", path)
		}
	}
	return paths, nil
}
