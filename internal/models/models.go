package models

import "time"

// ScrapeRequest represents the incoming scrape request body
type ScrapeRequest struct {
	URL string `json:"url"`
}

// Metadata contains page-level and transport-level facts about a scrape
type Metadata struct {
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Keywords      string    `json:"keywords"`
	ScrapedAt     time.Time `json:"scrape_timestamp"`
	StatusCode    int       `json:"status_code"`
	ContentType   string    `json:"content_type"`
	ContentLength int       `json:"content_length"`
}

// Link is an anchor discovered on the page, resolved to an absolute URL
type Link struct {
	Text       string `json:"text"`
	URL        string `json:"url"`
	IsExternal bool   `json:"is_external"`
}

// Image is an img element with its source resolved to an absolute URL
type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Title string `json:"title"`
}

// Table holds header cells and data rows extracted from one table element
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Statistics holds derived counts over the extracted document
type Statistics struct {
	TotalHeadings   int `json:"total_headings"`
	TotalParagraphs int `json:"total_paragraphs"`
	TotalLinks      int `json:"total_links"`
	TotalImages     int `json:"total_images"`
	TotalTables     int `json:"total_tables"`
	ExternalLinks   int `json:"external_links"`
}

// ScrapedDocument is the aggregate result of one scrape invocation.
// It is constructed once by the aggregator and never mutated afterwards.
type ScrapedDocument struct {
	Metadata   Metadata            `json:"metadata"`
	Headings   map[string][]string `json:"headings"`
	Paragraphs []string            `json:"paragraphs"`
	Links      []Link              `json:"links"`
	Images     []Image             `json:"images"`
	Tables     []Table             `json:"tables"`
	Statistics Statistics          `json:"statistics"`
}

// ScrapeResponse is the envelope returned by the scrape endpoint
type ScrapeResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Data     *ScrapedDocument `json:"data,omitempty"`
	Filename string           `json:"filename,omitempty"`
}

// ErrorResponse represents error responses
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
