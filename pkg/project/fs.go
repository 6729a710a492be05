package project

import (
	"os"

	"github.com/spf13/afero"

	"github.com/fumosclub/fumosync/pkg/errors"
)

// fs is used for mock tests. It will be overridden by afero.NewMemMapFs()
// in the tests.
var fs = afero.NewOsFs()

func writeFile(path, contents string) error {
	if err := afero.WriteFile(fs, path, []byte(contents), 0644); err != nil {
		return errors.CreateFileError{Path: path, Err: err}
	}
	return nil
}

func readFile(path string) (string, error) {
	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", errors.ReadFileError{Path: path, Err: err}
	}
	return string(contents), nil
}

// createDirectory creates exactly one directory level. The parent must
// already exist.
func createDirectory(path string) error {
	if err := fs.Mkdir(path, 0755); err != nil {
		return errors.CreateDirectoryError{Path: path, Err: err}
	}
	return nil
}

// lstat doesn't follow symlinks when the filesystem supports it, so a
// symlinked module isn't mistaken for a regular file.
func lstat(path string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}
