// Package scraper implements the page extraction pipeline: URL
// validation, HTTP retrieval with browser-like headers, lenient markup
// parsing, per-element-type extraction, and aggregation into a single
// ScrapedDocument. The package does no logging and no persistence; both
// belong to the caller.
package scraper

import (
	"bytes"
	"context"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/24108244-ux/Websites-Scraper/internal/models"
)

// Scraper runs the full pipeline for one URL per Scrape call. Safe for
// concurrent use; each invocation builds its own tree and document.
type Scraper struct {
	client *Client
}

func NewScraper() *Scraper {
	return &Scraper{client: NewClient()}
}

// NewScraperWithClient allows injecting a configured fetch client.
func NewScraperWithClient(client *Client) *Scraper {
	return &Scraper{client: client}
}

// Scrape validates the target, fetches it, parses the body, runs the six
// extractors over the tree, and aggregates the result. It returns either
// a complete document or a single typed error; there is no partial
// success and no retry.
func (s *Scraper) Scrape(ctx context.Context, targetURL string) (*models.ScrapedDocument, error) {
	if !IsValidURL(targetURL) {
		return nil, &models.InvalidURLError{URL: targetURL}
	}
	base, err := url.Parse(targetURL)
	if err != nil {
		return nil, &models.InvalidURLError{URL: targetURL}
	}

	resp, err := s.client.Fetch(ctx, targetURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, &models.ParseError{URL: targetURL, Err: err}
	}

	// The extractors share the tree read-only and have no dependency on
	// one another, so they run in parallel.
	var ex extraction
	g := new(errgroup.Group)
	g.Go(func() error {
		ex.title, ex.description, ex.keywords = extractMetadata(doc)
		return nil
	})
	g.Go(func() error { ex.headings = extractHeadings(doc); return nil })
	g.Go(func() error { ex.paragraphs = extractParagraphs(doc); return nil })
	g.Go(func() error { ex.links = extractLinks(doc, base); return nil })
	g.Go(func() error { ex.images = extractImages(doc, base); return nil })
	g.Go(func() error { ex.tables = extractTables(doc); return nil })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return aggregate(targetURL, resp, ex), nil
}

// extraction bundles the six extractor outputs on their way to the
// aggregator.
type extraction struct {
	title       string
	description string
	keywords    string
	headings    map[string][]string
	paragraphs  []string
	links       []models.Link
	images      []models.Image
	tables      []models.Table
}

// aggregate assembles the extractor outputs and transport facts into the
// final document and computes the statistics block by counting. No
// element-level decisions happen here.
func aggregate(sourceURL string, resp *Response, ex extraction) *models.ScrapedDocument {
	totalHeadings := 0
	for _, texts := range ex.headings {
		totalHeadings += len(texts)
	}
	externalLinks := 0
	for _, link := range ex.links {
		if link.IsExternal {
			externalLinks++
		}
	}

	return &models.ScrapedDocument{
		Metadata: models.Metadata{
			URL:           sourceURL,
			Title:         ex.title,
			Description:   ex.description,
			Keywords:      ex.keywords,
			ScrapedAt:     time.Now(),
			StatusCode:    resp.StatusCode,
			ContentType:   resp.ContentType,
			ContentLength: len(resp.Body),
		},
		Headings:   ex.headings,
		Paragraphs: ex.paragraphs,
		Links:      ex.links,
		Images:     ex.images,
		Tables:     ex.tables,
		Statistics: models.Statistics{
			TotalHeadings:   totalHeadings,
			TotalParagraphs: len(ex.paragraphs),
			TotalLinks:      len(ex.links),
			TotalImages:     len(ex.images),
			TotalTables:     len(ex.tables),
			ExternalLinks:   externalLinks,
		},
	}
}
