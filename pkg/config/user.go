package config

import (
	"os"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/fumosclub/fumosync/pkg/errors"
)

const (
	// UserConfigPath is the default path to the fumosync user config.
	UserConfigPath = "~/.fumosync.yaml"

	// DefaultEndpoint is the API used when neither the user config nor the
	// environment names one.
	DefaultEndpoint = "https://fumosclub.com/api"

	// InitialUserConfigVersion is the first version of the user config.
	// Config files that do not specify a version will default to this
	// version.
	InitialUserConfigVersion = "v1alpha1"

	// SupportedUserConfigVersion is the supported version of the user
	// config of the current binary.
	SupportedUserConfigVersion = "v1alpha1"

	// TokenEnvKey overrides the session secret stored in the user config.
	TokenEnvKey = "FUMOSYNC_TOKEN"

	// EndpointEnvKey overrides the endpoint stored in the user config.
	EndpointEnvKey = "FUMOSYNC_ENDPOINT"
)

// ErrNotLoggedIn is returned when no session secret is available.
var ErrNotLoggedIn = errors.NewFriendlyError("You are not logged in.\n" +
	"Run `fumosync login` to store your session, or set " + TokenEnvKey + ".")

// User contains the session secret obtained by logging in, and the service
// it belongs to.
type User struct {
	Version  string `json:"version,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
	Token    string `json:"token,omitempty"`
}

func (u User) getVersion() string {
	return u.Version
}

// Mocked for unit testing.
var (
	homedirExpand = homedir.Expand
	getenv        = os.Getenv
)

// ParseUser attempts to parse the User stored in the default path.
func ParseUser() (User, error) {
	path, err := GetUserConfigPath()
	if err != nil {
		return User{}, errors.WithContext(err, "expand config path")
	}

	config := User{Version: InitialUserConfigVersion}
	if err := parseConfig(path, &config, SupportedUserConfigVersion); err != nil {
		return User{}, errors.WithContext(err, "parse")
	}
	return config, nil
}

// WriteUser writes the given user config to disk. The file is only readable
// by the current user since it holds the session secret.
func WriteUser(cfg User) error {
	cfg.Version = SupportedUserConfigVersion
	path, err := GetUserConfigPath()
	if err != nil {
		return errors.WithContext(err, "expand config path")
	}

	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WithContext(err, "marshal")
	}

	if err := afero.WriteFile(fs, path, yamlBytes, 0600); err != nil {
		return errors.WithContext(err, "write")
	}
	return nil
}

// Session returns the endpoint and session secret that remote calls should
// use. Environment variables take precedence over the user config.
func Session() (endpoint, token string, err error) {
	user, err := ParseUser()
	if err != nil {
		if _, ok := errors.RootCause(err).(errors.FileNotFound); !ok {
			return "", "", errors.WithContext(err, "parse user config")
		}
		user = User{}
	}

	endpoint, token = user.Endpoint, user.Token
	if env := getenv(EndpointEnvKey); env != "" {
		endpoint = env
	}
	if env := getenv(TokenEnvKey); env != "" {
		token = env
	}

	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if token == "" {
		return "", "", ErrNotLoggedIn
	}
	return endpoint, token, nil
}

// GetUserConfigPath returns the path to the user's global fumosync
// configuration. This path is expanded, so it can be directly passed to file
// operations.
func GetUserConfigPath() (string, error) {
	return homedirExpand(UserConfigPath)
}
