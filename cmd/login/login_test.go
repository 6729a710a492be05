package login

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fumosclub/fumosync/pkg/config"
	"github.com/fumosclub/fumosync/pkg/errors"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		endpoint   string
		input      string
		currConfig config.User
		currErr    error
		expConfig  *config.User
		expError   bool
	}{
		{
			name:      "FlagToken",
			token:     "secret",
			currErr:   errors.WithContext(errors.FileNotFound{Path: ".fumosync.yaml"}, "parse"),
			expConfig: &config.User{Token: "secret"},
		},
		{
			name:      "PromptedToken",
			input:     "prompted\n",
			currErr:   errors.WithContext(errors.FileNotFound{Path: ".fumosync.yaml"}, "parse"),
			expConfig: &config.User{Token: "prompted"},
		},
		{
			name:       "KeepsEndpoint",
			token:      "new",
			currConfig: config.User{Endpoint: "https://example.com", Token: "old"},
			expConfig:  &config.User{Endpoint: "https://example.com", Token: "new"},
		},
		{
			name:       "OverridesEndpoint",
			token:      "new",
			endpoint:   "https://other.example.com",
			currConfig: config.User{Endpoint: "https://example.com", Token: "old"},
			expConfig:  &config.User{Endpoint: "https://other.example.com", Token: "new"},
		},
		{
			name:     "EmptyToken",
			input:    "\n",
			expError: true,
		},
		{
			name:     "BrokenConfig",
			token:    "secret",
			currErr:  errors.New("permission denied"),
			expError: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			var written *config.User
			stdin = strings.NewReader(test.input)
			stdout = &bytes.Buffer{}
			parseUserConfig = func() (config.User, error) {
				return test.currConfig, test.currErr
			}
			writeUserConfig = func(cfg config.User) error {
				written = &cfg
				return nil
			}

			err := Main(test.token, test.endpoint)
			assert.Equal(t, test.expError, err != nil)
			assert.Equal(t, test.expConfig, written)
		})
	}
}
