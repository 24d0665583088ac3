// Package supabase is a client for the managed backend's REST surface: the
// PostgREST row API and the storage bucket API. Authorization uses the
// project's anon key; row-level security on the backend governs access.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/getmingle/mingle/config"
	"github.com/getmingle/mingle/internal"
	"github.com/getmingle/mingle/pkg/models"
)

var log = internal.GetLogger()

const (
	restPath = "/rest/v1/"

	// acceptSingle makes PostgREST return exactly one object, failing with
	// 406 when the filter matches zero or many rows.
	acceptSingle = "application/vnd.pgrst.object+json"

	preferMinimal = "return=minimal"
	preferUpsert  = "resolution=merge-duplicates,return=minimal"
)

var _ models.BackendStore = &Client{}
var _ models.ObjectStorage = &Client{}

type Client struct {
	projectURL string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a backend client from config. Returns an error if the
// project URL or anon key is not set.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.Supabase.URL == "" || cfg.Supabase.AnonKey == "" {
		return nil, errors.New("SUPABASE_URL and SUPABASE_ANON_KEY are not set")
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Supabase.RetryMax
	retryClient.HTTPClient.Timeout = time.Duration(cfg.Supabase.TimeoutSeconds) * time.Second
	retryClient.Logger = internal.NewLeveledLogrus(log)

	return &Client{
		projectURL: strings.TrimRight(cfg.Supabase.URL, "/"),
		apiKey:     cfg.Supabase.AnonKey,
		httpClient: retryClient.StandardClient(),
	}, nil
}

// do performs an authenticated request and returns the response body and
// status. Transport failures are wrapped as storage errors.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	headers map[string]string,
	body io.Reader,
) ([]byte, int, error) {
	u := c.projectURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, 0, models.NewStorageError("building request", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, models.NewStorageError("backend request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, models.NewStorageError("reading response", err)
	}

	return data, resp.StatusCode, nil
}

func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	query url.Values,
	headers map[string]string,
	payload any,
) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, models.NewStorageError("encoding payload", err)
		}
		body = bytes.NewReader(encoded)
		if headers == nil {
			headers = map[string]string{}
		}
		headers["Content-Type"] = "application/json"
	}
	return c.do(ctx, method, path, query, headers, body)
}

// selectRows fetches all rows matching the filter into out.
func (c *Client) selectRows(ctx context.Context, table string, query url.Values, out any) error {
	data, status, err := c.doJSON(ctx, http.MethodGet, restPath+table, query, nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return models.NewStorageError(storageMessage("select", table, status, data), nil)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return models.NewStorageError(fmt.Sprintf("decoding %s rows", table), err)
	}
	return nil
}

// selectSingle fetches exactly one row into out, or returns a NotFoundError
// named after resource.
func (c *Client) selectSingle(ctx context.Context, table string, query url.Values, out any, resource string) error {
	headers := map[string]string{"Accept": acceptSingle}
	data, status, err := c.doJSON(ctx, http.MethodGet, restPath+table, query, headers, nil)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNotAcceptable:
		return models.NewNotFoundError(resource)
	default:
		return models.NewStorageError(storageMessage("select", table, status, data), nil)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return models.NewStorageError(fmt.Sprintf("decoding %s row", table), err)
	}
	return nil
}

func (c *Client) insert(ctx context.Context, table string, query url.Values, prefer string, rows any) error {
	headers := map[string]string{"Prefer": prefer}
	data, status, err := c.doJSON(ctx, http.MethodPost, restPath+table, query, headers, rows)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return models.NewStorageError(storageMessage("insert", table, status, data), nil)
	}
	return nil
}

func (c *Client) update(ctx context.Context, table string, query url.Values, patch any) error {
	headers := map[string]string{"Prefer": preferMinimal}
	data, status, err := c.doJSON(ctx, http.MethodPatch, restPath+table, query, headers, patch)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return models.NewStorageError(storageMessage("update", table, status, data), nil)
	}
	return nil
}

func (c *Client) delete(ctx context.Context, table string, query url.Values) error {
	data, status, err := c.doJSON(ctx, http.MethodDelete, restPath+table, query, nil, nil)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return models.NewStorageError(storageMessage("delete", table, status, data), nil)
	}
	return nil
}

func storageMessage(op, table string, status int, body []byte) string {
	detail := strings.TrimSpace(string(body))
	if len(detail) > 200 {
		detail = detail[:200]
	}
	return fmt.Sprintf("%s %s: status %d: %s", op, table, status, detail)
}
