// Package localfetch talks to the local asset export service.
//
// The service exposes one endpoint, GET /api/v1/export: with raw=true it
// answers the JSON export document for an asset path, without it the
// asset's binary payload. [Client] wraps the endpoint with caching and
// retry, [Server] serves a directory of exported assets as a stand-in
// during development, and [Recoverer] plugs both into the importer's
// missing-asset recovery hook.
package localfetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matforge/matforge/pkg/cache"
	"github.com/matforge/matforge/pkg/export"
)

// DefaultBaseURL is where the editor-side export service listens.
const DefaultBaseURL = "http://localhost:1500"

// DefaultTTL bounds how long fetched documents stay cached.
const DefaultTTL = 24 * time.Hour

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound means the service holds no export for the asset path.
	ErrNotFound = errors.New("asset not exported")

	// ErrService covers transport failures and non-OK service responses.
	ErrService = errors.New("export service error")
)

// Client fetches export documents and raw payloads from the service.
// Responses are cached by asset path; a zero TTL keeps entries forever.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	TTL     time.Duration
}

// NewClient creates a client for the service at baseURL. Nil collaborators
// fall back to defaults: no caching, the standard keyer, a silent logger.
func NewClient(baseURL string, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: httpTimeout},
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		TTL:     DefaultTTL,
	}
}

// ExportsData fetches the raw export document for an asset path.
func (c *Client) ExportsData(ctx context.Context, path string) ([]byte, error) {
	key := c.Keyer.ExportKey(c.BaseURL, path)
	if data, ok, _ := c.Cache.Get(ctx, key); ok {
		c.Logger.Debug("export cache hit", "path", path)
		return data, nil
	}

	data, err := c.fetch(ctx, c.endpoint(path, true))
	if err != nil {
		return nil, err
	}
	_ = c.Cache.Set(ctx, key, data, c.TTL)
	return data, nil
}

// Exports fetches and decodes the export records for an asset path.
func (c *Client) Exports(ctx context.Context, path string) ([]export.Record, error) {
	data, err := c.ExportsData(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := export.ParseDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode export for %s: %w", path, err)
	}
	return doc.Records, nil
}

// Raw fetches an asset's binary payload, such as texture bytes.
func (c *Client) Raw(ctx context.Context, path string) ([]byte, error) {
	key := c.Keyer.RawKey(c.BaseURL, path)
	if data, ok, _ := c.Cache.Get(ctx, key); ok {
		c.Logger.Debug("raw cache hit", "path", path)
		return data, nil
	}

	data, err := c.fetch(ctx, c.endpoint(path, false))
	if err != nil {
		return nil, err
	}
	_ = c.Cache.Set(ctx, key, data, c.TTL)
	return data, nil
}

func (c *Client) endpoint(path string, raw bool) string {
	q := url.Values{}
	if raw {
		q.Set("raw", "true")
	}
	q.Set("path", path)
	return c.BaseURL + "/api/v1/export?" + q.Encode()
}

// fetch GETs u with the cache package's backoff policy. Transport failures
// and 5xx responses are marked retryable; anything else fails fast.
func (c *Client) fetch(ctx context.Context, u string) ([]byte, error) {
	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		resp, err := c.HTTP.Do(req)
		if err != nil {
			return cache.Retryable(fmt.Errorf("%w: %v", ErrService, err))
		}
		defer resp.Body.Close()

		if err := checkStatus(resp.StatusCode); err != nil {
			return err
		}
		data, err = io.ReadAll(resp.Body)
		return err
	})
	return data, err
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrService, code))
	default:
		return fmt.Errorf("%w: status %d", ErrService, code)
	}
}
