package project

import (
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/fumosclub/fumosync/pkg/errors"
)

const (
	// ModuleDirectory is the directory within a project that holds its
	// modules.
	ModuleDirectory = "pkg"

	// ModuleExtension marks a file in ModuleDirectory as a synced module.
	ModuleExtension = ".luau"
)

// Module is a named unit of source synced as a single file.
type Module struct {
	Name   string
	Source string
}

// DiscoverModules reads every module in `dir`. Only regular files with the
// module extension are considered, and subdirectories aren't descended into.
// Modules are returned in the order that the directory lists them.
func DiscoverModules(dir string) ([]Module, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, errors.ReadDirectoryError{Path: dir, Err: err}
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, errors.ReadDirectoryError{Path: dir, Err: err}
	}

	var modules []Module
	for _, fileName := range names {
		path := filepath.Join(dir, fileName)
		info, err := lstat(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Info("Failed to get file type. Skipping.")
			continue
		}

		name, ok := moduleName(fileName)
		if !info.Mode().IsRegular() || !ok {
			continue
		}

		source, err := readFile(path)
		if err != nil {
			return nil, err
		}
		modules = append(modules, Module{Name: name, Source: source})
	}
	return modules, nil
}

// moduleName strips the module extension from `fileName`. The extension is
// matched case sensitively, and a file named only by the extension isn't a
// module.
func moduleName(fileName string) (string, bool) {
	if !strings.HasSuffix(fileName, ModuleExtension) {
		return "", false
	}

	name := strings.TrimSuffix(fileName, ModuleExtension)
	if name == "" {
		return "", false
	}
	return name, true
}

// modulePath returns where the module called `name` is stored in the project
// rooted at `dir`.
func modulePath(dir, name string) string {
	return filepath.Join(dir, ModuleDirectory, name+ModuleExtension)
}
