package enrich

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// DefaultSearchURL is the HTML-only DuckDuckGo endpoint.
const DefaultSearchURL = "https://html.duckduckgo.com/html/"

const snippetSelector = ".result__snippet"

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
}

// Searcher returns the result snippets of a web search.
type Searcher interface {
	Snippets(ctx context.Context, query string) ([]string, error)
}

// CollySearcher queries an HTML search page with colly and extracts snippets
// with goquery.
type CollySearcher struct {
	searchURL string
	timeout   time.Duration
	pick      func(n int) int
}

// NewCollySearcher builds a searcher for searchURL. An empty URL uses
// DefaultSearchURL.
func NewCollySearcher(searchURL string, timeout time.Duration) *CollySearcher {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CollySearcher{searchURL: searchURL, timeout: timeout, pick: rand.IntN}
}

// Snippets fetches the search page for query. Transport errors and non-200
// responses are returned as errors.
func (s *CollySearcher) Snippets(ctx context.Context, query string) ([]string, error) {
	target, err := s.queryURL(query)
	if err != nil {
		return nil, err
	}

	c := colly.NewCollector(colly.AllowURLRevisit(), colly.StdlibContext(ctx))
	c.SetRequestTimeout(s.timeout)

	var (
		snippets []string
		fetchErr error
	)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", s.userAgent())
	})
	c.OnResponse(func(r *colly.Response) {
		if r.StatusCode != http.StatusOK {
			fetchErr = fmt.Errorf("search returned status %d", r.StatusCode)
			return
		}
		snippets, fetchErr = ParseSnippets(bytes.NewReader(r.Body))
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- c.Visit(target)
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("search canceled: %w", ctx.Err())
	case err := <-done:
		if ctx.Err() != nil {
			return nil, fmt.Errorf("search canceled: %w", ctx.Err())
		}
		if err != nil {
			return nil, fmt.Errorf("search visit failed: %w", err)
		}
		if fetchErr != nil {
			return nil, fetchErr
		}
		return snippets, nil
	}
}

func (s *CollySearcher) queryURL(query string) (string, error) {
	u, err := url.Parse(s.searchURL)
	if err != nil {
		return "", fmt.Errorf("parse search url: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (s *CollySearcher) userAgent() string {
	return userAgents[s.pick(len(userAgents))]
}

// ParseSnippets returns the text of every result snippet in a search page.
func ParseSnippets(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}
	var out []string
	doc.Find(snippetSelector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out, nil
}
