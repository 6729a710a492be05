package project

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fumosclub/fumosync/pkg/client"
	"github.com/fumosclub/fumosync/pkg/client/mocks"
	"github.com/fumosclub/fumosync/pkg/errors"
)

func demoEditor() client.Editor {
	return client.Editor{
		ScriptInfo: client.ScriptInfo{
			Name:        "remote demo",
			Description: "demo",
			Whitelist:   []string{"alice"},
			IsPublic:    true,
			Source: client.Source{
				Main:    "print(1)",
				Modules: map[string]string{"util": "return 1"},
			},
		},
	}
}

func TestPull(t *testing.T) {
	fs = afero.NewMemMapFs()
	mockClient := &mocks.Client{}
	mockClient.On("GetEditor", mock.Anything, "42").Return(demoEditor(), nil)

	require.NoError(t, Pull(context.Background(), mockClient, "42", "demo2"))
	mockClient.AssertExpectations(t)

	expFiles := map[string]string{
		"demo2/pkg/util.luau":         "return 1",
		"demo2/init.server.luau":      "print(1)",
		"demo2/README.md":             "demo",
		"demo2/types.d.luau":          typeDefinitions,
		"demo2/.vscode/settings.json": editorSettings,
	}
	for path, expContents := range expFiles {
		contents, err := afero.ReadFile(fs, path)
		assert.NoError(t, err)
		assert.Equal(t, expContents, string(contents), path)
	}

	cfg, err := ReadConfiguration("demo2")
	assert.NoError(t, err)
	assert.Equal(t, Configuration{
		ScriptName: "remote demo",
		ScriptID:   "42",
		Whitelist:  []string{"alice"},
		IsPublic:   true,
	}, cfg)
	assert.NotEqual(t, UnlinkedScriptID, cfg.ScriptID)
}

func TestPullNilWhitelist(t *testing.T) {
	fs = afero.NewMemMapFs()
	editor := demoEditor()
	editor.ScriptInfo.Whitelist = nil
	editor.ScriptInfo.Source.Modules = nil

	mockClient := &mocks.Client{}
	mockClient.On("GetEditor", mock.Anything, "42").Return(editor, nil)
	require.NoError(t, Pull(context.Background(), mockClient, "42", "demo"))

	cfg, err := ReadConfiguration("demo")
	assert.NoError(t, err)
	assert.Equal(t, []string{}, cfg.Whitelist)

	modules, err := DiscoverModules("demo/pkg")
	assert.NoError(t, err)
	assert.Empty(t, modules)
}

func TestPullExistingDirectory(t *testing.T) {
	fs = afero.NewMemMapFs()
	require.NoError(t, fs.Mkdir("demo", 0755))
	mockClient := &mocks.Client{}

	err := Pull(context.Background(), mockClient, "42", "demo")
	assert.Equal(t, errors.ProjectDidNotInitializeError{
		Err: errors.DirectoryAlreadyExistsError{Path: "demo"},
	}, err)
	mockClient.AssertNotCalled(t, "GetEditor", mock.Anything, mock.Anything)
}

func TestPullFetchError(t *testing.T) {
	fs = afero.NewMemMapFs()
	fetchErr := errors.New("connection refused")
	mockClient := &mocks.Client{}
	mockClient.On("GetEditor", mock.Anything, "42").Return(client.Editor{}, fetchErr)

	err := Pull(context.Background(), mockClient, "42", "demo")
	assert.Equal(t, errors.WithContext(fetchErr, "get editor"), err)

	// The skeleton was created before the fetch, and is left unlinked.
	cfg, err := ReadConfiguration("demo")
	assert.NoError(t, err)
	assert.Equal(t, UnlinkedScriptID, cfg.ScriptID)
}

func TestPullInvalidModuleName(t *testing.T) {
	for _, name := range []string{"../escape", "nested/module", "", ".."} {
		fs = afero.NewMemMapFs()
		editor := demoEditor()
		editor.ScriptInfo.Source.Modules = map[string]string{name: "return 1"}

		mockClient := &mocks.Client{}
		mockClient.On("GetEditor", mock.Anything, "42").Return(editor, nil)

		err := Pull(context.Background(), mockClient, "42", "demo")
		_, isFriendly := err.(errors.FriendlyError)
		assert.True(t, isFriendly, name)

		exists, err := afero.Exists(fs, "demo/escape.luau")
		assert.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestPullSentinelScriptID(t *testing.T) {
	fs = afero.NewMemMapFs()
	mockClient := &mocks.Client{}

	err := Pull(context.Background(), mockClient, UnlinkedScriptID, "demo")
	_, isFriendly := err.(errors.FriendlyError)
	assert.True(t, isFriendly)
	mockClient.AssertNotCalled(t, "GetEditor", mock.Anything, mock.Anything)

	exists, err := afero.Exists(fs, "demo")
	assert.NoError(t, err)
	assert.False(t, exists)
}
