package project

import (
	"encoding/json"
	"path/filepath"

	"github.com/fumosclub/fumosync/pkg/errors"
)

const (
	// ConfigurationFile is the name of the file, at the root of every
	// project, that links it to a remote script.
	ConfigurationFile = "fumosync.json"

	// UnlinkedScriptID is the script ID of a project that was created
	// locally and never pulled.
	UnlinkedScriptID = "???"
)

// Configuration is the contents of fumosync.json.
type Configuration struct {
	ScriptName string   `json:"scriptName"`
	ScriptID   string   `json:"scriptId"`
	Whitelist  []string `json:"whitelist"`
	IsPublic   bool     `json:"isPublic"`
}

// configurationFile mirrors Configuration with pointers so that missing
// fields can be told apart from zero values.
type configurationFile struct {
	ScriptName *string   `json:"scriptName"`
	ScriptID   *string   `json:"scriptId"`
	Whitelist  *[]string `json:"whitelist"`
	IsPublic   *bool     `json:"isPublic"`
}

// ReadConfiguration reads the configuration of the project rooted at `dir`.
// A missing file is reported as an errors.ReadFileError, and an unparseable
// or incomplete one as an errors.DeserializeError.
func ReadConfiguration(dir string) (Configuration, error) {
	path := filepath.Join(dir, ConfigurationFile)
	contents, err := readFile(path)
	if err != nil {
		return Configuration{}, err
	}

	var parsed configurationFile
	if err := json.Unmarshal([]byte(contents), &parsed); err != nil {
		return Configuration{}, errors.DeserializeError{Path: path, Err: err}
	}

	switch {
	case parsed.ScriptName == nil:
		return Configuration{}, errors.DeserializeError{Path: path, Err: errors.MissingFieldError{Field: "scriptName"}}
	case parsed.ScriptID == nil:
		return Configuration{}, errors.DeserializeError{Path: path, Err: errors.MissingFieldError{Field: "scriptId"}}
	case parsed.Whitelist == nil || *parsed.Whitelist == nil:
		return Configuration{}, errors.DeserializeError{Path: path, Err: errors.MissingFieldError{Field: "whitelist"}}
	case parsed.IsPublic == nil:
		return Configuration{}, errors.DeserializeError{Path: path, Err: errors.MissingFieldError{Field: "isPublic"}}
	}

	return Configuration{
		ScriptName: *parsed.ScriptName,
		ScriptID:   *parsed.ScriptID,
		Whitelist:  *parsed.Whitelist,
		IsPublic:   *parsed.IsPublic,
	}, nil
}

// writeConfiguration overwrites the configuration of the project rooted at
// `dir`.
func writeConfiguration(dir string, cfg Configuration) error {
	if cfg.Whitelist == nil {
		cfg.Whitelist = []string{}
	}

	contents, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.SerializeError{Err: err}
	}
	return writeFile(filepath.Join(dir, ConfigurationFile), string(contents))
}
