package project

import (
	"context"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/fumosclub/fumosync/pkg/client"
	"github.com/fumosclub/fumosync/pkg/errors"
)

// Pull creates a new project in `dir` from the remote script `scriptID`,
// and links the two so that the project can be pushed.
//
// Init failures are returned as errors.ProjectDidNotInitializeError so that
// they can be told apart from failures to fetch or write the script.
func Pull(ctx context.Context, c client.Client, scriptID, dir string) error {
	if scriptID == UnlinkedScriptID {
		return errors.NewFriendlyError("%q isn't a script ID. "+
			"It marks projects that were never pulled.", scriptID)
	}

	if err := Init(dir); err != nil {
		return errors.ProjectDidNotInitializeError{Err: err}
	}

	editor, err := c.GetEditor(ctx, scriptID)
	if err != nil {
		return errors.WithContext(err, "get editor")
	}
	info := editor.ScriptInfo

	for name := range info.Source.Modules {
		if !isValidModuleName(name) {
			return errors.NewFriendlyError("The script contains a module named %q, "+
				"which can't be stored as a file in %q.", name, ModuleDirectory)
		}
	}

	if err := writeFile(filepath.Join(dir, DescriptionFile), info.Description); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(dir, MainSourceFile), info.Source.Main); err != nil {
		return err
	}

	err = writeConfiguration(dir, Configuration{
		ScriptName: info.Name,
		ScriptID:   scriptID,
		Whitelist:  info.Whitelist,
		IsPublic:   info.IsPublic,
	})
	if err != nil {
		return err
	}

	for name, source := range info.Source.Modules {
		if err := writeFile(modulePath(dir, name), source); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"script":  scriptID,
		"dir":     dir,
		"modules": len(info.Source.Modules),
	}).Info("Pulled script")
	return nil
}

// isValidModuleName returns whether `name` maps to a file directly inside
// the module directory.
func isValidModuleName(name string) bool {
	switch name {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
