package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/dmitrijs2005/carbid/internal/logging"
)

const maxBodyBytes = 10 << 20

// HTTPClient talks to the backend REST API. It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPClient returns a client for baseURL (e.g. "http://localhost:4002").
// timeout bounds every request; zero means no client-side limit.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken sets the bearer token sent with every request. An empty token
// stops sending the header.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s: marshalling request body", method, path)
		}
		reader = bytes.NewReader(b)
	}

	r, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s: creating request", method, path)
	}
	c.setDefaultRequestHeader(r)
	return r, nil
}

func (c *HTTPClient) setDefaultRequestHeader(r *http.Request) {
	r.Header.Set("Accept", "application/json")
	r.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// send performs the request and returns the raw body of a 2xx response.
func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "%s %s", method, path)
		}
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, errors.Wrapf(fmt.Errorf("%w: %v", ErrUnavailable, err), "%s %s", method, path)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn(ctx, "closing response body", "path", path, "error", err)
		}
	}()

	respBody, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrapf(fmt.Errorf("%w: %v", ErrUnavailable, err), "%s %s: reading response body", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseError(resp.StatusCode, respBody)
		c.log.Debug(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}
	return respBody, nil
}

// do sends the request and decodes a JSON response into out (when non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	respBody, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "%s %s: decoding response body: %s", method, path, truncate(respBody))
	}
	return nil
}

// getList fetches a collection that the backend returns either as a bare
// array or wrapped as {"data": [...]}.
func getList[T any](ctx context.Context, c *HTTPClient, path string, query url.Values) ([]T, error) {
	respBody, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[T](respBody)
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s: decoding list: %s", path, truncate(respBody))
	}
	return items, nil
}

func decodeList[T any](body []byte) ([]T, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return []T{}, nil
	}
	if body[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var wrapped struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Data == nil {
		return []T{}, nil
	}
	return wrapped.Data, nil
}

func truncate(b []byte) string {
	const max = 256
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

func escape(id string) string {
	return url.PathEscape(id)
}
