package client

//go:generate mockery -name Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/fumosclub/fumosync/pkg/errors"
	"github.com/fumosclub/fumosync/pkg/version"
)

const (
	// SessionCookieName is the cookie the service reads the session secret
	// from.
	SessionCookieName = "session"

	requestTimeout = 30 * time.Second
)

// ErrUnauthorized is returned when the service rejects the session secret.
var ErrUnauthorized = errors.NewFriendlyError("The session was rejected by the server.\n" +
	"It may have expired. Log in again with `fumosync login`.")

// Client is used for reading and updating remote scripts on behalf of a
// logged in user.
type Client interface {
	GetEditor(ctx context.Context, scriptID string) (Editor, error)
	SetEditor(ctx context.Context, scriptID string, updates []EditorUpdate) error
}

// HTTPError is returned when the service responds with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (err HTTPError) Error() string {
	return fmt.Sprintf("server responded with %d (%s)", err.StatusCode, err.Body)
}

type httpClient struct {
	endpoint string
	token    string
	http     *http.Client
	limiter  *rate.Limiter
}

// New creates a client that talks to the service at `endpoint`, and
// authenticates with the session secret `token`.
func New(endpoint, token string) Client {
	return &httpClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		http:     &http.Client{Timeout: requestTimeout},
		// Pushes in watch mode can fire in quick succession.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
}

func (c *httpClient) GetEditor(ctx context.Context, scriptID string) (Editor, error) {
	respBody, err := c.do(ctx, http.MethodGet, c.editorURL(scriptID), nil)
	if err != nil {
		return Editor{}, err
	}

	var editor Editor
	if err := json.Unmarshal(respBody, &editor); err != nil {
		return Editor{}, errors.WithContext(err, "parse editor")
	}
	return editor, nil
}

func (c *httpClient) SetEditor(ctx context.Context, scriptID string, updates []EditorUpdate) error {
	payload := struct {
		Updates []EditorUpdate `json:"updates"`
	}{updates}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return errors.WithContext(err, "create payload")
	}

	_, err = c.do(ctx, http.MethodPost, c.editorURL(scriptID), payloadBytes)
	return err
}

func (c *httpClient) editorURL(scriptID string) string {
	return fmt.Sprintf("%s/scripts/%s/editor", c.endpoint, url.PathEscape(scriptID))
}

func (c *httpClient) do(ctx context.Context, method, reqURL string, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.WithContext(err, "wait for rate limit")
	}

	req, err := http.NewRequest(method, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithContext(err, "create request")
	}
	req = req.WithContext(ctx)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: c.token})
	req.Header.Set("User-Agent", "fumosync/"+version.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.WithFields(log.Fields{
		"method": method,
		"url":    reqURL,
	}).Debug("Sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WithContext(err, "connect to server")
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithContext(err, "read response")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}
	return respBody, nil
}
