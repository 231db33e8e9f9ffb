package sefaria

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

const (
	textPrefix  = "/api/texts/"
	linkPrefix  = "/api/links/"
	indexPrefix = "/api/v2/index/"

	defaultBaseURL = "https://www.sefaria.org"
	defaultTimeout = 30 * time.Second
)

// Client talks to the Sefaria text-and-links API. Responses are cached by
// URL for the lifetime of the process: reading flows re-request the same
// section many times (pagination, link-name discovery, translation checks),
// and the texts themselves effectively never change.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host, primarily for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(base, "/")
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient returns a ready-to-use API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cache:      map[string][]byte{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// cleanRef replaces the spaces in a book name or reference with underscores,
// the way the text and link endpoints expect them.
func cleanRef(ref string) string {
	return strings.ReplaceAll(ref, " ", "_")
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	c.mu.Lock()
	body, ok := c.cache[rawURL]
	c.mu.Unlock()
	if !ok {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("sefaria API error: %s (%s)", resp.Status, string(snippet))
		}
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.cache[rawURL] = body
		c.mu.Unlock()
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode sefaria response: %w", err)
	}
	return nil
}

// FetchSection fetches one chapter or amud of a book. translation is a
// versionTitle from a previously fetched section's Versions list; empty
// means the Sefaria default edition.
func (c *Client) FetchSection(ctx context.Context, book, chapter, translation string) (*Section, error) {
	u := fmt.Sprintf("%s%s%s.%s", c.baseURL, textPrefix, cleanRef(book), chapter)
	if translation != "" {
		u += "?ven=" + url.QueryEscape(cleanRef(translation))
	}
	var section Section
	if err := c.getJSON(ctx, u, &section); err != nil {
		return nil, fmt.Errorf("fetch section %s %s: %w", book, chapter, err)
	}
	return &section, nil
}

// FetchLinkNames returns the sorted set of distinct commentary/link labels
// available for a chapter. The link endpoint returns far more than needed
// here, so text bodies are suppressed with with_text=0.
func (c *Client) FetchLinkNames(ctx context.Context, book, chapter string) ([]string, error) {
	u := fmt.Sprintf("%s%s%s.%s?with_text=0", c.baseURL, linkPrefix, cleanRef(book), chapter)
	var links []Link
	if err := c.getJSON(ctx, u, &links); err != nil {
		return nil, fmt.Errorf("fetch link names %s %s: %w", book, chapter, err)
	}
	seen := map[string]bool{}
	names := make([]string, 0, len(links))
	for _, link := range links {
		label := link.Label()
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		names = append(names, label)
	}
	sort.Strings(names)
	return names, nil
}

// FetchLinks fetches the full link entries for a single verse reference,
// grouped by label. Entries within a group keep API order.
func (c *Client) FetchLinks(ctx context.Context, ref string) (map[string][]Link, error) {
	u := fmt.Sprintf("%s%s%s?with_text=1", c.baseURL, linkPrefix, cleanRef(ref))
	var links []Link
	if err := c.getJSON(ctx, u, &links); err != nil {
		return nil, fmt.Errorf("fetch links %s: %w", ref, err)
	}
	grouped := make(map[string][]Link)
	for _, link := range links {
		label := link.Label()
		grouped[label] = append(grouped[label], link)
	}
	return grouped, nil
}

// FetchBookIndex fetches the table-of-contents schema for a book.
func (c *Client) FetchBookIndex(ctx context.Context, bookSlug string) (*BookIndex, error) {
	u := fmt.Sprintf("%s%s%s", c.baseURL, indexPrefix, url.PathEscape(bookSlug))
	var index BookIndex
	if err := c.getJSON(ctx, u, &index); err != nil {
		return nil, fmt.Errorf("fetch index %s: %w", bookSlug, err)
	}
	return &index, nil
}
