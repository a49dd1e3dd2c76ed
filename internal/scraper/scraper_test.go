package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24108244-ux/Websites-Scraper/internal/models"
)

const minimalPage = `<html><head><title>T</title></head>` +
	`<body><h1>Hi</h1><p>Hello world</p><a href="/x">link</a></body></html>`

func TestScrapeMinimalPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(minimalPage))
	}))
	defer srv.Close()

	sc := NewScraperWithClient(testClient())
	doc, err := sc.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, srv.URL, doc.Metadata.URL)
	assert.Equal(t, "T", doc.Metadata.Title)
	assert.Equal(t, http.StatusOK, doc.Metadata.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", doc.Metadata.ContentType)
	assert.Equal(t, len(minimalPage), doc.Metadata.ContentLength)
	assert.False(t, doc.Metadata.ScrapedAt.IsZero())

	assert.Equal(t, []string{"Hi"}, doc.Headings["h1"])
	assert.Equal(t, []string{"Hello world"}, doc.Paragraphs)

	require.Len(t, doc.Links, 1)
	assert.Equal(t, models.Link{Text: "link", URL: srv.URL + "/x", IsExternal: false}, doc.Links[0])

	assert.Equal(t, models.Statistics{
		TotalHeadings:   1,
		TotalParagraphs: 1,
		TotalLinks:      1,
	}, doc.Statistics)
}

func TestScrapeStatisticsCountExternal(t *testing.T) {
	page := `<html><body>
		<a href="https://other.org/a">out</a>
		<a href="/in">in</a>
		<img src="/pic.png" alt="p">
		<table><tr><td>x</td></tr></table>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	doc, err := NewScraperWithClient(testClient()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Statistics.TotalLinks)
	assert.Equal(t, 1, doc.Statistics.ExternalLinks)
	assert.Equal(t, 1, doc.Statistics.TotalImages)
	assert.Equal(t, 1, doc.Statistics.TotalTables)
	assert.Equal(t, "No Title", doc.Metadata.Title)
}

func TestScrapeInvalidURL(t *testing.T) {
	sc := NewScraperWithClient(testClient())

	for _, candidate := range []string{"not a url", "//onlypath", ""} {
		doc, err := sc.Scrape(context.Background(), candidate)
		assert.Nil(t, doc)

		var invalid *models.InvalidURLError
		require.ErrorAs(t, err, &invalid, "candidate %q", candidate)
		assert.Equal(t, candidate, invalid.URL)
	}
}

func TestScrapeBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer srv.Close()

	doc, err := NewScraperWithClient(testClient()).Scrape(context.Background(), srv.URL)
	assert.Nil(t, doc)

	var badStatus *models.BadStatusError
	require.ErrorAs(t, err, &badStatus)
	assert.Equal(t, http.StatusNotFound, badStatus.StatusCode)
}

func TestScrapeMalformedMarkupStillProduces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>unclosed<h1>heading<table><tr><td>cell`))
	}))
	defer srv.Close()

	doc, err := NewScraperWithClient(testClient()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err, "lenient parsing must not fail on partial markup")
	require.NotNil(t, doc)
	assert.Equal(t, []string{"heading"}, doc.Headings["h1"])
}

func TestAggregateIsPureCombination(t *testing.T) {
	resp := &Response{StatusCode: 200, ContentType: "text/html", Body: []byte("abc")}

	ex := extraction{
		title:      "T",
		headings:   map[string][]string{"h1": {"a", "b"}, "h2": {"c"}},
		paragraphs: []string{"p1", "p2"},
		links: []models.Link{
			{Text: "x", URL: "https://other.org/x", IsExternal: true},
			{Text: "y", URL: "https://example.com/y", IsExternal: false},
		},
		images: []models.Image{{Src: "https://example.com/i.png"}},
		tables: []models.Table{{Headers: []string{"h"}, Rows: [][]string{{"v"}}}},
	}

	doc := aggregate("https://example.com", resp, ex)
	assert.Equal(t, 3, doc.Statistics.TotalHeadings)
	assert.Equal(t, 2, doc.Statistics.TotalParagraphs)
	assert.Equal(t, 2, doc.Statistics.TotalLinks)
	assert.Equal(t, 1, doc.Statistics.ExternalLinks)
	assert.Equal(t, 1, doc.Statistics.TotalImages)
	assert.Equal(t, 1, doc.Statistics.TotalTables)
	assert.Equal(t, 3, doc.Metadata.ContentLength)
}
