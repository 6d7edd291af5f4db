// Package linkedin fetches the authenticated feed page and hands it to
// the extraction pipeline as a snapshot. It owns every session concern
// (cookies, headers, caching, retries) so the pipeline itself stays
// pure.
package linkedin

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/sycophant/auth"
	"github.com/codeGROOVE-dev/sycophant/extract"
	"github.com/codeGROOVE-dev/sycophant/httpcache"
	"github.com/codeGROOVE-dev/sycophant/post"
)

// FeedURL is the page the client snapshots.
const FeedURL = "https://www.linkedin.com/feed/"

// Client fetches the feed with authenticated session cookies.
type Client struct {
	httpClient *http.Client
	cache      httpcache.Cacher
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*config)

type config struct {
	cookies        map[string]string
	cache          httpcache.Cacher
	logger         *slog.Logger
	browserCookies bool
}

// WithCookies sets explicit cookie values.
func WithCookies(cookies map[string]string) Option {
	return func(c *config) { c.cookies = cookies }
}

// WithHTTPCache sets the HTTP cache.
func WithHTTPCache(cache httpcache.Cacher) Option {
	return func(c *config) { c.cache = cache }
}

// WithBrowserCookies enables reading cookies from browser stores.
func WithBrowserCookies() Option {
	return func(c *config) { c.browserCookies = true }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a feed client.
// Cookie sources are checked in order: WithCookies > environment > browser.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	var sources []auth.Source
	if len(cfg.cookies) > 0 {
		sources = append(sources, auth.NewStaticSource(cfg.cookies))
	}
	sources = append(sources, auth.EnvSource{})
	if cfg.browserCookies {
		sources = append(sources, auth.NewBrowserSource(cfg.logger))
	}

	cookies, err := auth.ChainSources(ctx, sources...)
	if err != nil {
		return nil, fmt.Errorf("cookie retrieval failed: %w", err)
	}
	if len(cookies) == 0 {
		return nil, fmt.Errorf("%w: set %v or use WithCookies/WithBrowserCookies",
			post.ErrNoCookies, auth.EnvVarNames())
	}

	jar, err := auth.NewCookieJar(cookies)
	if err != nil {
		return nil, fmt.Errorf("cookie jar creation failed: %w", err)
	}

	cfg.logger.InfoContext(ctx, "feed client created", "cookie_count", len(cookies))

	return &Client{
		httpClient: &http.Client{Jar: jar, Timeout: 10 * time.Second},
		cache:      cfg.cache,
		logger:     cfg.logger,
	}, nil
}

// FeedSnapshot fetches the feed page and wraps it as a snapshot for the
// extraction cascade.
func (c *Client) FeedSnapshot(ctx context.Context) (extract.Snapshot, error) {
	c.logger.InfoContext(ctx, "fetching feed page", "url", FeedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, FeedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	setHeaders(req)

	body, err := httpcache.FetchURLWithValidator(ctx, c.cache, c.httpClient, req, c.logger, authenticatedFeed)
	if err != nil {
		return nil, fmt.Errorf("feed fetch failed: %w", err)
	}
	if isLoginPage(body) {
		return nil, fmt.Errorf("%w: feed returned the login page, session cookies expired", post.ErrAuthRequired)
	}

	return extract.NewHTMLSnapshot(string(body)), nil
}

// WarmFeed fetches the feed once so a following FeedSnapshot is served
// from cache. It stands in for the scroll-and-settle step a headless
// browser would perform; a driver that does real scrolling can supply
// its own extract.Snapshot instead.
func (c *Client) WarmFeed(ctx context.Context) error {
	_, err := c.FeedSnapshot(ctx)
	return err
}

func setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", httpcache.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("DNT", "1")
	req.Header.Set("Sec-GPC", "1")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")
	req.Header.Set("Sec-Fetch-User", "?1")
}

// authenticatedFeed reports whether the body looks like a logged-in
// feed page; login redirects and challenge pages must not be cached.
func authenticatedFeed(body []byte) bool {
	return !isLoginPage(body)
}

func isLoginPage(body []byte) bool {
	lower := bytes.ToLower(body)
	for _, marker := range loginMarkers {
		if bytes.Contains(lower, []byte(marker)) {
			return true
		}
	}
	return false
}

// loginMarkers appear on the signed-out login and challenge pages but
// never on an authenticated feed.
var loginMarkers = []string{
	`name="session_key"`,
	"uas/login",
	"checkpoint/challenge",
}

// Match returns true if the URL points at the feed.
func Match(urlStr string) bool {
	lower := strings.ToLower(urlStr)
	return strings.Contains(lower, "linkedin.com/feed")
}
