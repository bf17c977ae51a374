// Package fakturoid is a client for the Fakturoid v3 REST API. It implements
// the record store the tool catalog runs against.
package fakturoid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// PageSize is the number of records the API returns per page.
const PageSize = 40

// Options configures a Client.
type Options struct {
	BaseURL      string
	Slug         string
	ClientID     string
	ClientSecret string
	UserAgent    string

	Timeout           time.Duration
	RequestsPerMinute int
	// CacheTTL is how long account-level records are served from memory.
	// Zero disables the cache.
	CacheTTL time.Duration
}

// Client talks to one Fakturoid account. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	account string
	limiter *rate.Limiter
	cache   *cache.Cache
	logger  *slog.Logger
}

// New builds a client that authenticates with the OAuth2 client credentials
// flow. Tokens are fetched lazily on the first request and refreshed on expiry.
func New(opts Options, logger *slog.Logger) (*Client, error) {
	if opts.Slug == "" {
		return nil, errors.New("fakturoid: account slug is required")
	}
	if opts.ClientID == "" || opts.ClientSecret == "" {
		return nil, errors.New("fakturoid: client id and client secret are required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	base := strings.TrimRight(opts.BaseURL, "/")
	transport := &userAgentTransport{agent: opts.UserAgent, next: http.DefaultTransport}
	plain := &http.Client{Timeout: opts.Timeout, Transport: transport}

	creds := clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     base + "/oauth/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, plain)
	authed := creds.Client(ctx)
	authed.Timeout = opts.Timeout

	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}

	c := &Client{
		http:    authed,
		account: base + "/accounts/" + url.PathEscape(opts.Slug),
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}
	if opts.CacheTTL > 0 {
		c.cache = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}
	return c, nil
}

type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.agent == "" {
		return t.next.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(req)
}

// do sends one request and decodes a JSON response into out when out is
// non-nil and the body is not empty.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.account + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	c.logger.Debug("fakturoid request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// pages fetches every page of a collection and returns the records as one
// JSON array. It stops at a short page, or at a page that repeats the
// previous one, which is what an endpoint that ignores page sends.
func (c *Client) pages(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	var (
		all      []json.RawMessage
		previous json.RawMessage
	)
	for page := 1; ; page++ {
		query.Set("page", fmt.Sprint(page))
		var raw json.RawMessage
		if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
			return nil, err
		}
		if len(raw) == 0 || (page > 1 && bytes.Equal(raw, previous)) {
			break
		}
		var batch []json.RawMessage
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		all = append(all, batch...)
		if len(batch) < PageSize {
			break
		}
		previous = raw
	}
	if all == nil {
		all = []json.RawMessage{}
	}
	return json.Marshal(all)
}

// whole fetches an unpaginated collection.
func (c *Client) whole(ctx context.Context, path string, query url.Values) ([]byte, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return []byte("[]"), nil
	}
	return raw, nil
}

// cached serves key from the cache or loads and stores it.
func (c *Client) cached(key string, load func() ([]byte, error)) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			return data.([]byte), nil
		}
	}
	data, err := load()
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Set(key, data, cache.DefaultExpiration)
	}
	return data, nil
}
