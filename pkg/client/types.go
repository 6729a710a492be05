package client

import (
	"encoding/json"

	"github.com/fumosclub/fumosync/pkg/errors"
)

// Editor is the response to an editor fetch.
type Editor struct {
	ScriptInfo ScriptInfo `json:"scriptInfo"`
}

// ScriptInfo is the remote editor state of a single script.
type ScriptInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Whitelist   []string `json:"whitelist"`
	IsPublic    bool     `json:"isPublic"`
	Source      Source   `json:"source"`
}

// Source holds the script's entry point and its named modules.
type Source struct {
	Main    string            `json:"main"`
	Modules map[string]string `json:"modules"`
}

// UpdateKind identifies which part of the editor state an EditorUpdate
// changes.
type UpdateKind string

const (
	NameUpdate        UpdateKind = "name"
	WhitelistUpdate   UpdateKind = "whitelist"
	PublicityUpdate   UpdateKind = "publicity"
	DescriptionUpdate UpdateKind = "description"
	MainSourceUpdate  UpdateKind = "mainSource"
	ModuleUpdate      UpdateKind = "module"
)

// EditorUpdate is a single mutation applied to the remote editor state.
// Only the fields relevant to Kind are set. Use the constructors below
// rather than building one directly.
type EditorUpdate struct {
	Kind UpdateKind

	// Text is the new name, description or main source.
	Text      string
	Whitelist []string
	IsPublic  bool

	ModuleName   string
	ModuleSource string
}

// Name renames the script.
func Name(name string) EditorUpdate {
	return EditorUpdate{Kind: NameUpdate, Text: name}
}

// Whitelist replaces the script's access list.
func Whitelist(whitelist []string) EditorUpdate {
	return EditorUpdate{Kind: WhitelistUpdate, Whitelist: whitelist}
}

// Publicity sets whether the script is public.
func Publicity(isPublic bool) EditorUpdate {
	return EditorUpdate{Kind: PublicityUpdate, IsPublic: isPublic}
}

// Description replaces the script's description.
func Description(description string) EditorUpdate {
	return EditorUpdate{Kind: DescriptionUpdate, Text: description}
}

// MainSource replaces the script's entry point source.
func MainSource(source string) EditorUpdate {
	return EditorUpdate{Kind: MainSourceUpdate, Text: source}
}

// Module creates or overwrites the module called `name`.
func Module(name, source string) EditorUpdate {
	return EditorUpdate{Kind: ModuleUpdate, ModuleName: name, ModuleSource: source}
}

type valueUpdate struct {
	Type  UpdateKind  `json:"type"`
	Value interface{} `json:"value"`
}

type moduleUpdate struct {
	Type   UpdateKind `json:"type"`
	Name   string     `json:"name"`
	Source string     `json:"source"`
}

// MarshalJSON encodes the update in the form the editor API expects.
func (u EditorUpdate) MarshalJSON() ([]byte, error) {
	switch u.Kind {
	case NameUpdate, DescriptionUpdate, MainSourceUpdate:
		return json.Marshal(valueUpdate{Type: u.Kind, Value: u.Text})
	case WhitelistUpdate:
		whitelist := u.Whitelist
		if whitelist == nil {
			whitelist = []string{}
		}
		return json.Marshal(valueUpdate{Type: u.Kind, Value: whitelist})
	case PublicityUpdate:
		return json.Marshal(valueUpdate{Type: u.Kind, Value: u.IsPublic})
	case ModuleUpdate:
		return json.Marshal(moduleUpdate{Type: u.Kind, Name: u.ModuleName, Source: u.ModuleSource})
	default:
		return nil, errors.New("unknown editor update kind %q", u.Kind)
	}
}
