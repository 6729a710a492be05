package client

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEditor(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/scripts/42/editor", r.URL.Path)

		cookie, err := r.Cookie(SessionCookieName)
		require.NoError(t, err)
		assert.Equal(t, "secret", cookie.Value)

		_, err = w.Write([]byte(`{"scriptInfo": {
			"name": "demo",
			"description": "a demo",
			"whitelist": ["alice"],
			"isPublic": true,
			"source": {"main": "print(1)", "modules": {"util": "return 1"}}
		}}`))
		assert.NoError(t, err)
	}))
	defer ts.Close()

	editor, err := New(ts.URL+"/api/", "secret").GetEditor(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, Editor{
		ScriptInfo: ScriptInfo{
			Name:        "demo",
			Description: "a demo",
			Whitelist:   []string{"alice"},
			IsPublic:    true,
			Source: Source{
				Main:    "print(1)",
				Modules: map[string]string{"util": "return 1"},
			},
		},
	}, editor)
}

func TestSetEditor(t *testing.T) {
	var received interface{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/scripts/42/editor", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := ioutil.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
	}))
	defer ts.Close()

	updates := []EditorUpdate{
		Name("demo"),
		Whitelist(nil),
		Publicity(false),
		Description("a demo"),
		MainSource("print(1)"),
		Module("util", "return 1"),
	}
	err := New(ts.URL, "secret").SetEditor(context.Background(), "42", updates)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"updates": []interface{}{
			map[string]interface{}{"type": "name", "value": "demo"},
			map[string]interface{}{"type": "whitelist", "value": []interface{}{}},
			map[string]interface{}{"type": "publicity", "value": false},
			map[string]interface{}{"type": "description", "value": "a demo"},
			map[string]interface{}{"type": "mainSource", "value": "print(1)"},
			map[string]interface{}{"type": "module", "name": "util", "source": "return 1"},
		},
	}, received)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		expErr error
	}{
		{
			name:   "Unauthorized",
			status: http.StatusUnauthorized,
			body:   "bad session",
			expErr: ErrUnauthorized,
		},
		{
			name:   "NotFound",
			status: http.StatusNotFound,
			body:   "no such script\n",
			expErr: HTTPError{StatusCode: http.StatusNotFound, Body: "no such script"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.status)
				_, err := w.Write([]byte(test.body))
				assert.NoError(t, err)
			}))
			defer ts.Close()

			_, err := New(ts.URL, "secret").GetEditor(context.Background(), "42")
			assert.Equal(t, test.expErr, err)
		})
	}
}

func TestMarshalUnknownUpdate(t *testing.T) {
	_, err := json.Marshal(EditorUpdate{Kind: "rename-everything"})
	assert.Error(t, err)
}
