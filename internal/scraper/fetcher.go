package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jobtrail/jobtrail-backend/internal/config"
)

const (
	// maxContentLen caps extracted text so the downstream prompt stays
	// within a sane token budget.
	maxContentLen = 10000
	// minContentLen is the threshold below which a page is treated as
	// failed (bot wall, empty shell, redirect stub).
	minContentLen = 200

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
)

// boilerplateSelectors are removed wholesale before text extraction.
var boilerplateSelectors = []string{
	"script", "style", "noscript", "iframe",
	"nav", "header", "footer", "aside", "form",
	"[role=navigation]", "[role=banner]", ".advertisement", ".ads",
}

var ErrContentTooShort = errors.New("page content too short to be a job posting")

// Fetcher retrieves the readable text of a remote job posting. Results
// are never cached; every call hits the network.
type Fetcher struct {
	http    *http.Client
	render  bool
	timeout float64 // navigation timeout for the rendered path, ms
}

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		http:    &http.Client{Timeout: cfg.ScraperTimeout},
		render:  cfg.ScraperRender,
		timeout: float64(cfg.ScraperTimeout.Milliseconds()),
	}
}

// Fetch downloads the page and returns cleaned plain text, capped at
// maxContentLen characters. An error means the page could not be
// fetched or yielded too little content; there is no retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var html string
	var err error

	if f.render {
		html, err = f.fetchRendered(url)
	} else {
		html, err = f.fetchStatic(ctx, url)
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	text, err := ExtractText(html)
	if err != nil {
		return "", err
	}
	if len(text) < minContentLen {
		return "", ErrContentTooShort
	}
	if len(text) > maxContentLen {
		text = truncateRunes(text, maxContentLen)
	}
	return text, nil
}

// truncateRunes cuts s to at most n bytes without splitting a
// multi-byte rune at the boundary.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (f *Fetcher) fetchStatic(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("remote returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ExtractText strips boilerplate markup from an HTML document and
// collapses whitespace. Exposed for tests.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	for _, sel := range boilerplateSelectors {
		doc.Find(sel).Remove()
	}

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	return strings.Join(strings.Fields(text), " "), nil
}
