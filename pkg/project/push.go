package project

import (
	"context"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/fumosclub/fumosync/pkg/client"
	"github.com/fumosclub/fumosync/pkg/errors"
)

// Push overwrites the remote script linked to the project in `dir` with the
// project's local contents. Everything is read before the client is called,
// so a push either sends the whole project or nothing.
func Push(ctx context.Context, c client.Client, dir string) error {
	cfg, err := ReadConfiguration(dir)
	if err != nil {
		return errors.WithContext(err, "read configuration")
	}

	description, err := readFile(filepath.Join(dir, DescriptionFile))
	if err != nil {
		return err
	}

	mainSource, err := readFile(filepath.Join(dir, MainSourceFile))
	if err != nil {
		return err
	}

	modules, err := DiscoverModules(filepath.Join(dir, ModuleDirectory))
	if err != nil {
		return err
	}

	if cfg.ScriptID == UnlinkedScriptID {
		log.WithField("dir", dir).Warn("This project was never pulled, so it isn't " +
			"linked to a script. Pushing anyway.")
	}

	updates := editorUpdates(cfg, description, mainSource, modules)
	if err := c.SetEditor(ctx, cfg.ScriptID, updates); err != nil {
		return errors.WithContext(err, "set editor")
	}

	log.WithFields(log.Fields{
		"script":  cfg.ScriptID,
		"modules": len(modules),
	}).Info("Pushed script")
	return nil
}

// editorUpdates orders the metadata first, then the main content, then one
// update per module.
func editorUpdates(cfg Configuration, description, mainSource string,
	modules []Module) []client.EditorUpdate {

	whitelist := make([]string, len(cfg.Whitelist))
	copy(whitelist, cfg.Whitelist)

	updates := []client.EditorUpdate{
		client.Name(cfg.ScriptName),
		client.Whitelist(whitelist),
		client.Publicity(cfg.IsPublic),
		client.Description(description),
		client.MainSource(mainSource),
	}
	for _, module := range modules {
		updates = append(updates, client.Module(module.Name, module.Source))
	}
	return updates
}
