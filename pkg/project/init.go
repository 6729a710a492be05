package project

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/fumosclub/fumosync/pkg/errors"
)

// unknownScriptName is used when the project directory has no usable name,
// such as "/" or "..".
const unknownScriptName = "unknown"

// Init creates a new project in `dir`, which must not exist yet. The
// project isn't linked to a remote script until it's pulled.
//
// Nothing is rolled back if a step fails, so a failed Init may leave a
// partial skeleton behind.
func Init(dir string) error {
	if _, err := fs.Stat(dir); err == nil {
		return errors.DirectoryAlreadyExistsError{Path: dir}
	}

	dirs := []string{
		dir,
		filepath.Join(dir, ModuleDirectory),
		filepath.Join(dir, EditorSettingsDir),
	}
	for _, path := range dirs {
		if err := createDirectory(path); err != nil {
			return err
		}
	}

	files := []struct {
		path, contents string
	}{
		{filepath.Join(dir, EditorSettingsDir, EditorSettingsFile), editorSettings},
		{filepath.Join(dir, MainSourceFile), mainSourceStub},
		{filepath.Join(dir, DescriptionFile), descriptionStub},
		{filepath.Join(dir, TypeDefinitionsFile), typeDefinitions},
	}
	for _, f := range files {
		if err := writeFile(f.path, f.contents); err != nil {
			return err
		}
	}

	err := writeConfiguration(dir, Configuration{
		ScriptName: scriptNameFor(dir),
		ScriptID:   UnlinkedScriptID,
		Whitelist:  []string{},
		IsPublic:   false,
	})
	if err != nil {
		return err
	}

	log.WithField("dir", dir).Debug("Initialized project")
	return nil
}

// scriptNameFor returns the last element of `dir`.
func scriptNameFor(dir string) string {
	name := filepath.Base(filepath.Clean(dir))
	switch name {
	case ".", "..", string(filepath.Separator):
		return unknownScriptName
	}
	return name
}
