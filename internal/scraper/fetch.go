package scraper

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/24108244-ux/Websites-Scraper/internal/config"
	"github.com/24108244-ux/Websites-Scraper/internal/models"
)

// Response carries the transport-level facts the aggregator needs.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client issues the single outbound GET of the pipeline with browser-like
// headers and a bounded timeout. Exactly one attempt per call; retry and
// backoff are deliberately absent.
type Client struct {
	httpClient *http.Client
	config     config.ScrapeConfig
}

func NewClient() *Client {
	return NewClientWithConfig(config.DefaultScrapeConfig())
}

func NewClientWithConfig(cfg config.ScrapeConfig) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.TimeoutMs) * time.Millisecond,
		},
		config: cfg,
	}
}

// setRequestHeaders sets browser-like headers on the request
func (c *Client) setRequestHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("Connection", "keep-alive")
}

// Fetch retrieves the raw body of targetURL. A non-2xx status yields a
// BadStatusError and the body is discarded; DNS, connection, and timeout
// failures yield a TransportError.
func (c *Client) Fetch(ctx context.Context, targetURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, http.NoBody)
	if err != nil {
		return nil, &models.TransportError{URL: targetURL, Err: err}
	}
	c.setRequestHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &models.TransportError{URL: targetURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &models.BadStatusError{URL: targetURL, StatusCode: resp.StatusCode}
	}

	// Setting Accept-Encoding by hand disables the transport's automatic
	// decompression, so undo the encoding here.
	var reader io.Reader = resp.Body
	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, &models.TransportError{URL: targetURL, Err: err}
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	}

	body, err := io.ReadAll(io.LimitReader(reader, int64(c.config.SizeLimitBytes)))
	if err != nil {
		return nil, &models.TransportError{URL: targetURL, Err: err}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
