package handlers

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/mendableai/firecrawl-go/v2"
)

const (
	// DefaultScrapeTimeout is the timeout for scraping a single website
	DefaultScrapeTimeout = 30 * time.Second
	// MaxContextLength caps the markdown fed into content generation prompts
	MaxContextLength = 15000
)

// FirecrawlHandler scrapes lead websites to provide context for content
// generation
type FirecrawlHandler struct {
	app     *firecrawl.FirecrawlApp
	timeout time.Duration
}

// NewFirecrawlHandler creates a new FirecrawlHandler instance
// apiKey is required, apiURL can be empty to use the default Firecrawl API
func NewFirecrawlHandler(apiKey string, apiURL string) (*FirecrawlHandler, error) {
	log.Printf("[FirecrawlHandler] Initializing with apiURL: %q", apiURL)
	app, err := firecrawl.NewFirecrawlApp(apiKey, apiURL)
	if err != nil {
		log.Printf("[FirecrawlHandler] Failed to create FirecrawlApp: %v", err)
		return nil, err
	}

	return &FirecrawlHandler{
		app:     app,
		timeout: DefaultScrapeTimeout,
	}, nil
}

// SetTimeout allows customizing the scrape timeout
func (h *FirecrawlHandler) SetTimeout(timeout time.Duration) {
	h.timeout = timeout
}

// ScrapeHomepage scrapes a lead's website and returns its markdown content,
// truncated to a prompt-friendly length
func (h *FirecrawlHandler) ScrapeHomepage(websiteURL string) (string, error) {
	if !strings.HasPrefix(websiteURL, "http") {
		websiteURL = "https://" + websiteURL
	}

	parsed, err := url.Parse(websiteURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("invalid website URL: %s", websiteURL)
	}

	log.Printf("[FirecrawlHandler] Scraping homepage: %s", websiteURL)

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	type scrapeResult struct {
		doc *firecrawl.FirecrawlDocument
		err error
	}
	resultChan := make(chan scrapeResult, 1)

	// The firecrawl client has no context support; run in a goroutine so the
	// timeout still applies
	go func() {
		doc, err := h.app.ScrapeURL(websiteURL, nil)
		resultChan <- scrapeResult{doc: doc, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Printf("[FirecrawlHandler] Timeout exceeded for: %s", websiteURL)
		return "", fmt.Errorf("scrape timeout exceeded for %s", websiteURL)
	case res := <-resultChan:
		if res.err != nil {
			log.Printf("[FirecrawlHandler] Scrape error for %s: %v", websiteURL, res.err)
			return "", fmt.Errorf("scrape failed: %w", res.err)
		}
		if res.doc == nil || res.doc.Markdown == "" {
			return "", fmt.Errorf("no content scraped from %s", websiteURL)
		}

		markdown := res.doc.Markdown
		if len(markdown) > MaxContextLength {
			markdown = markdown[:MaxContextLength] + "\n\n[Content truncated...]"
		}
		log.Printf("[FirecrawlHandler] Scraped %s (markdown length: %d)", websiteURL, len(markdown))
		return markdown, nil
	}
}
