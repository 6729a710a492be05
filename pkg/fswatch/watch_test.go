package fswatch

import (
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/fumosclub/fumosync/pkg/errors"
)

func TestGetPathsToWatch(t *testing.T) {
	fs = afero.NewMemMapFs()
	assert.NoError(t, fs.Mkdir("/demo", 0755))
	assert.NoError(t, fs.Mkdir("/demo/pkg", 0755))

	paths, err := getPathsToWatch("/demo")
	assert.NoError(t, err)
	assert.Equal(t, []string{"/demo", "/demo/pkg"}, paths)
}

func TestGetPathsToWatchMissingModules(t *testing.T) {
	fs = afero.NewMemMapFs()
	assert.NoError(t, fs.Mkdir("/demo", 0755))

	_, err := getPathsToWatch("/demo")
	assert.Equal(t, errors.FileNotFound{Path: "/demo/pkg"}, err)
}

func TestGetPathsToWatchFile(t *testing.T) {
	fs = afero.NewMemMapFs()
	assert.NoError(t, fs.Mkdir("/demo", 0755))
	assert.NoError(t, afero.WriteFile(fs, "/demo/pkg", []byte("not a dir"), 0644))

	_, err := getPathsToWatch("/demo")
	assert.Error(t, err)
}

func TestCombineUpdates(t *testing.T) {
	t.Parallel()

	updates := make(chan fsnotify.Event, 1024)
	addEvents := func(num int) {
		for i := 0; i < num; i++ {
			updates <- fsnotify.Event{}
		}
	}

	// Seed with events.
	numUpdates := 100
	addEvents(numUpdates)
	combined := combineUpdates(updates)

	// Assert that the events are being combined.
	numCombined := countEvents(combined)
	assert.True(t, numCombined < numUpdates,
		"expected less combined events (%d) than %d", numCombined, numUpdates)

	// Add more events.
	addEvents(100)
	<-combined
}

func countEvents(c chan struct{}) (n int) {
	// Block until the first event.
	<-c
	n++

	// Count the number of events until there hasn't been any new events in 500
	// milliseconds.
	for {
		select {
		case <-c:
			n++
		case <-time.After(500 * time.Millisecond):
			return n
		}
	}
}
