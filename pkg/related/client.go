// Package related queries the external word-association API for words
// semantically related to a target word, optionally constrained to
// rhyme with another word.
package related

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultBaseURL is the production endpoint of the word-association
// service.
const DefaultBaseURL = "https://api.datamuse.com/words"

// defaultTimeout bounds every request so a lookup never hangs on a
// stalled service.
const defaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response is read, so a misbehaving
// endpoint cannot exhaust memory.
const maxBodySize = 1 << 20

// ErrEmptyResponse reports a syntactically successful request whose
// body was empty. It is distinct from an empty result list: zero
// candidates decode fine, a zero-byte body means the service misfired
// and the current request must be aborted, not answered with partial
// data.
var ErrEmptyResponse = errors.New("related: empty response body")

// Candidate is one suggestion returned by the service.
type Candidate struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Client issues lookups against the word-association API. The zero
// value is not usable; construct with NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client bound to baseURL (DefaultBaseURL when
// empty) with a bounded request timeout.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Related returns up to max words related to word, best first.
func (c *Client) Related(ctx context.Context, word string, max int) ([]string, error) {
	params := url.Values{}
	params.Set("ml", word)
	return c.query(ctx, params, max)
}

// RhymingRelated returns up to max words related to word that also
// rhyme with rhymeWith, best first. Either constraint may be blank.
func (c *Client) RhymingRelated(ctx context.Context, word, rhymeWith string, max int) ([]string, error) {
	params := url.Values{}
	if word != "" {
		params.Set("ml", word)
	}
	if rhymeWith != "" {
		params.Set("rel_rhy", rhymeWith)
	}
	return c.query(ctx, params, max)
}

// query performs a single GET against the service: one outbound call
// per lookup, blocking on the response, no caching across invocations.
func (c *Client) query(ctx context.Context, params url.Values, max int) ([]string, error) {
	if max > 0 {
		params.Set("max", strconv.Itoa(max))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("related: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("related: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("related: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("related: service returned %s%s", resp.Status, errorPageSummary(body))
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrEmptyResponse
	}

	var candidates []Candidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		return nil, fmt.Errorf("related: decode response%s: %w", errorPageSummary(body), err)
	}

	words := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		w := strings.TrimSpace(cand.Word)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}

// errorPageSummary extracts the <title> of an HTML error page, so a
// gateway outage surfaces as "... (Service Unavailable)" instead of a
// bare JSON decode failure. Non-HTML bodies yield an empty summary.
func errorPageSummary(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if !strings.HasPrefix(trimmed, "<") {
		return ""
	}
	doc, err := html.Parse(strings.NewReader(trimmed))
	if err != nil {
		return ""
	}
	title := strings.TrimSpace(findTitle(doc))
	if title == "" {
		return ""
	}
	return " (" + title + ")"
}

// findTitle walks the parsed document for the first <title> text node.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			return n.FirstChild.Data
		}
		return ""
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if title := findTitle(child); title != "" {
			return title
		}
	}
	return ""
}
