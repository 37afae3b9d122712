package spotify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

const DefaultBaseURL = "https://api.spotify.com/v1"

// maxErrorBody caps how much of a failed response is drained before closing.
const maxErrorBody = 64 << 10

// Client is an HTTP client for the Spotify Web API.
// It holds no state between calls: every operation fetches and maps afresh.
type Client struct {
	httpClient *http.Client
	baseURL    string
	mapper     mapper
}

// compile-time interface assertion
var _ ports.CatalogProvider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithStrictDecorations makes an empty images, artists or genres list fail
// the whole call instead of leaving that field nil.
func WithStrictDecorations(strict bool) Option {
	return func(c *Client) {
		c.mapper.strict = strict
	}
}

// WithTimeout bounds each catalog request, including reading the body.
// Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// NewClient constructs a Spotify client over httpClient. The client is
// expected to attach credentials itself, e.g. via an oauth2 transport.
func NewClient(httpClient *http.Client, baseURL string, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewUserClient constructs a client that calls the API on behalf of the user
// owning token. token may carry a "Bearer " prefix.
func NewUserClient(ctx context.Context, token, baseURL string, opts ...Option) *Client {
	return NewClient(oauth2.NewClient(ctx, staticToken(token)), baseURL, opts...)
}

// NewAppClient constructs a client authenticated with the client-credentials
// grant. Such a client can only reach endpoints that need no user, like new
// releases.
func NewAppClient(ctx context.Context, clientID, clientSecret, tokenURL, baseURL string, opts ...Option) *Client {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return NewClient(cfg.Client(ctx), baseURL, opts...)
}

// withToken returns an http.Client that sends token on every request, on top
// of c's own transport.
func (c *Client) withToken(token string) *http.Client {
	base := c.httpClient.Transport
	if t, ok := base.(*oauth2.Transport); ok {
		base = t.Base
	}
	return &http.Client{
		Transport: &oauth2.Transport{Source: staticToken(token), Base: base},
		Timeout:   c.httpClient.Timeout,
	}
}

// get issues one GET to path and returns the parsed body. Non-2xx statuses
// fail immediately; nothing is retried.
func (c *Client) get(ctx context.Context, hc *http.Client, path string, query url.Values) (Node, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, &ports.TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	slog.Debug("spotify adapter: response", "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil, &ports.StatusError{StatusCode: resp.StatusCode, Path: path}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ports.TransportError{Path: path, Err: err}
	}

	return Parse(body)
}

func staticToken(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: bearerToken(token),
		TokenType:   "Bearer",
	})
}

// bearerToken strips an optional "Bearer" scheme from an Authorization value.
// A bare scheme yields "".
func bearerToken(authorization string) string {
	token := strings.TrimSpace(authorization)
	switch {
	case strings.EqualFold(token, "bearer"):
		return ""
	case len(token) > 7 && strings.EqualFold(token[:7], "bearer "):
		return strings.TrimSpace(token[7:])
	}
	return token
}
